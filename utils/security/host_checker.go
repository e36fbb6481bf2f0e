// Package security implements the SSRF defenses of the image proxy: URL
// validation and the host safety checker that decides whether a network
// destination may be contacted at all.
package security

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	errs "fieldboard/utils/errors"
)

// blockedIPv4 holds the private, loopback, link-local, carrier-grade NAT and
// documentation ranges that must never be contacted.
var blockedIPv4 = mustCIDRs(
	"0.0.0.0/8",
	"10.0.0.0/8",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"100.64.0.0/10",
	"192.0.2.0/24",
	"198.51.100.0/24",
	"203.0.113.0/24",
)

// blockedIPv6 holds loopback, unspecified, link-local and unique-local
// ranges. IPv4-mapped addresses are classified through the IPv4 tables.
var blockedIPv6 = mustCIDRs(
	"::1/128",
	"::/128",
	"fe80::/10",
	"fc00::/7",
)

// blockedNameSuffixes are hostname patterns rejected without any DNS lookup.
var blockedNameSuffixes = []string{".localhost", ".local"}

const dnsLookupTimeout = 5 * time.Second

// HostChecker decides whether a hostname or literal address may be contacted.
// Literal IPs are classified directly; DNS names are resolved to all their
// addresses and blocked if any resolved address is private, so a multi-answer
// response mixing a public decoy with a private target fails closed.
type HostChecker struct {
	lookupIP func(ctx context.Context, host string) ([]net.IP, error)

	// allowLoopback is the unit-test escape hatch: httptest servers bind
	// loopback. Never enabled in production wiring.
	allowLoopback bool
}

// NewHostChecker creates a HostChecker backed by the default resolver.
func NewHostChecker() *HostChecker {
	return &HostChecker{lookupIP: defaultLookupIP}
}

// SetTestingMode toggles acceptance of loopback targets for tests.
func (c *HostChecker) SetTestingMode(enabled bool) {
	c.allowLoopback = enabled
}

// CheckHost returns nil when host may be contacted and ErrBlockedHost
// otherwise. DNS resolution failure is indistinguishable from an explicit
// private-address match: both fail closed with the same error, and no
// resolution detail leaks to the caller.
func (c *HostChecker) CheckHost(ctx context.Context, host string) error {
	hostname := strings.ToLower(strings.TrimSuffix(host, "."))
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", errs.ErrBlockedHost)
	}

	if ip := net.ParseIP(hostname); ip != nil {
		if c.isBlockedIP(ip) {
			return fmt.Errorf("%w: address not publicly routable", errs.ErrBlockedHost)
		}
		return nil
	}

	ascii, err := idna.Lookup.ToASCII(norm.NFKC.String(hostname))
	if err != nil {
		return fmt.Errorf("%w: unresolvable hostname", errs.ErrBlockedHost)
	}
	hostname = ascii

	if c.isBlockedName(hostname) {
		return fmt.Errorf("%w: local hostname", errs.ErrBlockedHost)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, dnsLookupTimeout)
	defer cancel()

	ips, err := c.lookupIP(lookupCtx, hostname)
	if err != nil || len(ips) == 0 {
		return fmt.Errorf("%w: dns resolution failed", errs.ErrBlockedHost)
	}
	for _, ip := range ips {
		if c.isBlockedIP(ip) {
			return fmt.Errorf("%w: resolved to non-public address", errs.ErrBlockedHost)
		}
	}

	return nil
}

// isBlockedName matches hostnames that are rejected before resolution.
func (c *HostChecker) isBlockedName(hostname string) bool {
	if hostname == "localhost" {
		return !c.allowLoopback
	}
	for _, suffix := range blockedNameSuffixes {
		if strings.HasSuffix(hostname, suffix) {
			return true
		}
	}
	return false
}

// isBlockedIP classifies a single address. Anything that does not classify as
// a recognized public IPv4/IPv6 address is blocked.
func (c *HostChecker) isBlockedIP(ip net.IP) bool {
	if ip == nil {
		return true
	}
	if c.allowLoopback && ip.IsLoopback() {
		return false
	}

	// To4 also unwraps IPv4-mapped IPv6 (::ffff:a.b.c.d), so the embedded
	// IPv4 address goes through the IPv4 tables.
	if v4 := ip.To4(); v4 != nil {
		for _, block := range blockedIPv4 {
			if block.Contains(v4) {
				return true
			}
		}
		return false
	}

	if ip.To16() == nil {
		return true
	}
	for _, block := range blockedIPv6 {
		if block.Contains(ip) {
			return true
		}
	}
	return false
}

func defaultLookupIP(ctx context.Context, host string) ([]net.IP, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	ips := make([]net.IP, len(addrs))
	for i, addr := range addrs {
		ips[i] = addr.IP
	}
	return ips, nil
}

func mustCIDRs(cidrs ...string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(fmt.Sprintf("bad blocked range %q: %v", cidr, err))
		}
		nets = append(nets, network)
	}
	return nets
}
