package security

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "fieldboard/utils/errors"
)

func TestCheckHost_LiteralAddresses(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		blocked bool
	}{
		{name: "loopback IPv4", host: "127.0.0.1", blocked: true},
		{name: "loopback range", host: "127.8.8.8", blocked: true},
		{name: "cloud metadata endpoint", host: "169.254.169.254", blocked: true},
		{name: "rfc1918 10/8", host: "10.0.0.1", blocked: true},
		{name: "rfc1918 172.16/12", host: "172.16.0.1", blocked: true},
		{name: "rfc1918 172.31 upper bound", host: "172.31.255.254", blocked: true},
		{name: "rfc1918 192.168/16", host: "192.168.1.1", blocked: true},
		{name: "this-network 0/8", host: "0.0.0.1", blocked: true},
		{name: "carrier-grade NAT", host: "100.64.0.1", blocked: true},
		{name: "documentation TEST-NET-1", host: "192.0.2.5", blocked: true},
		{name: "documentation TEST-NET-2", host: "198.51.100.9", blocked: true},
		{name: "documentation TEST-NET-3", host: "203.0.113.77", blocked: true},
		{name: "IPv6 loopback", host: "::1", blocked: true},
		{name: "IPv6 unspecified", host: "::", blocked: true},
		{name: "IPv6 link-local", host: "fe80::1", blocked: true},
		{name: "IPv6 unique-local fc", host: "fc00::1", blocked: true},
		{name: "IPv6 unique-local fd", host: "fd12:3456::1", blocked: true},
		{name: "IPv4-mapped private", host: "::ffff:10.0.0.1", blocked: true},
		{name: "IPv4-mapped loopback", host: "::ffff:127.0.0.1", blocked: true},
		{name: "public IPv4", host: "93.184.216.34", blocked: false},
		{name: "public IPv4 just outside 172.16/12", host: "172.32.0.1", blocked: false},
		{name: "public IPv4 just outside CGNAT", host: "100.128.0.1", blocked: false},
		{name: "public IPv6", host: "2606:4700::1", blocked: false},
		{name: "IPv4-mapped public", host: "::ffff:8.8.8.8", blocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewHostChecker()
			lookupCalled := false
			checker.lookupIP = func(ctx context.Context, host string) ([]net.IP, error) {
				lookupCalled = true
				return nil, errors.New("unexpected lookup")
			}

			err := checker.CheckHost(context.Background(), tt.host)

			// Literal addresses classify directly, never through DNS.
			assert.False(t, lookupCalled, "literal address must not trigger DNS resolution")
			if tt.blocked {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrBlockedHost)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckHost_LocalNamesBlockedWithoutDNS(t *testing.T) {
	tests := []string{
		"localhost",
		"LOCALHOST",
		"sub.localhost",
		"printer.local",
		"nas.home.local",
	}

	for _, host := range tests {
		t.Run(host, func(t *testing.T) {
			checker := NewHostChecker()
			lookupCalled := false
			checker.lookupIP = func(ctx context.Context, host string) ([]net.IP, error) {
				lookupCalled = true
				return []net.IP{net.ParseIP("93.184.216.34")}, nil
			}

			err := checker.CheckHost(context.Background(), host)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrBlockedHost)
			assert.False(t, lookupCalled, "blocked local name must not be resolved")
		})
	}
}

func TestCheckHost_ResolvedAddresses(t *testing.T) {
	tests := []struct {
		name    string
		ips     []net.IP
		err     error
		blocked bool
	}{
		{
			name: "all public",
			ips:  []net.IP{net.ParseIP("93.184.216.34"), net.ParseIP("2606:4700::1")},
		},
		{
			name:    "all private",
			ips:     []net.IP{net.ParseIP("10.1.2.3")},
			blocked: true,
		},
		{
			name:    "public decoy plus private target",
			ips:     []net.IP{net.ParseIP("93.184.216.34"), net.ParseIP("192.168.0.10")},
			blocked: true,
		},
		{
			name:    "private first answer",
			ips:     []net.IP{net.ParseIP("169.254.169.254"), net.ParseIP("93.184.216.34")},
			blocked: true,
		},
		{
			name:    "resolution failure fails closed",
			err:     errors.New("no such host"),
			blocked: true,
		},
		{
			name:    "empty answer fails closed",
			ips:     []net.IP{},
			blocked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewHostChecker()
			checker.lookupIP = func(ctx context.Context, host string) ([]net.IP, error) {
				return tt.ips, tt.err
			}

			err := checker.CheckHost(context.Background(), "images.example.com")

			if tt.blocked {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrBlockedHost)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckHost_TestingModeAllowsLoopbackOnly(t *testing.T) {
	checker := NewHostChecker()
	checker.SetTestingMode(true)

	assert.NoError(t, checker.CheckHost(context.Background(), "127.0.0.1"))
	assert.NoError(t, checker.CheckHost(context.Background(), "::1"))

	// Everything else stays blocked even in testing mode.
	assert.ErrorIs(t, checker.CheckHost(context.Background(), "10.0.0.1"), errs.ErrBlockedHost)
	assert.ErrorIs(t, checker.CheckHost(context.Background(), "169.254.169.254"), errs.ErrBlockedHost)
}

func TestCheckHost_TrailingDotAndCase(t *testing.T) {
	checker := NewHostChecker()
	lookups := []string{}
	checker.lookupIP = func(ctx context.Context, host string) ([]net.IP, error) {
		lookups = append(lookups, host)
		return []net.IP{net.ParseIP("93.184.216.34")}, nil
	}

	require.NoError(t, checker.CheckHost(context.Background(), "Images.Example.COM."))
	require.Len(t, lookups, 1)
	assert.Equal(t, "images.example.com", lookups[0])
}
