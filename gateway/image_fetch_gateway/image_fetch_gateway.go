// Package image_fetch_gateway implements the SSRF-guarded remote image
// fetch: URL validation, per-hop host vetting, a manual redirect loop, and a
// size-capped body read. It is the only place in the backend that opens
// connections to client-chosen destinations.
package image_fetch_gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"fieldboard/config"
	"fieldboard/domain"
	errs "fieldboard/utils/errors"
	"fieldboard/utils/security"
)

// ImageFetchGateway implements image_fetch_port.ImageFetchPort. One instance
// is shared by all requests; it holds no per-request state, so concurrent
// fetches need no coordination.
type ImageFetchGateway struct {
	client       *http.Client
	hostChecker  *security.HostChecker
	maxBytes     int64
	maxRedirects int
	timeout      time.Duration
	userAgent    string
}

// NewImageFetchGateway builds the gateway from the proxy configuration.
//
// The HTTP client never follows redirects on its own: a client that
// auto-follows would trust every redirect target without SSRF vetting, which
// is exactly the hole the manual loop in follow() exists to close.
func NewImageFetchGateway(cfg config.ImageProxyConfig) *ImageFetchGateway {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	transport := &http.Transport{
		DialContext: dialer.DialContext,
		// Each fetch is an independent outbound connection; nothing is
		// shared between requests.
		DisableKeepAlives:     true,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     false,
	}

	return &ImageFetchGateway{
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		hostChecker:  security.NewHostChecker(),
		maxBytes:     cfg.MaxBytes,
		maxRedirects: cfg.MaxRedirects,
		timeout:      cfg.FetchTimeout,
		userAgent:    domain.ImageProxyUserAgent,
	}
}

// FetchImage fetches an image from a client-supplied URL. The deadline covers
// the entire multi-hop sequence; whichever operation is in flight when it
// elapses (DNS lookup, connect, header read or body read) is cancelled.
func (g *ImageFetchGateway) FetchImage(ctx context.Context, rawURL string) (*domain.ImageFetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	target, err := security.ParseImageURL(rawURL)
	if err != nil {
		return nil, err
	}

	resp, finalURL, err := g.follow(ctx, target)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return g.readBody(ctx, resp, finalURL)
}

// follow performs the redirect loop. Host safety is re-checked before every
// hop: a redirect can repoint to a different host, so hop N+1 gets exactly
// the same vetting as hop 0. There is no connect-first-validate-after path.
func (g *ImageFetchGateway) follow(ctx context.Context, target *url.URL) (*http.Response, *url.URL, error) {
	redirects := 0
	current := target

	for {
		if err := g.hostChecker.CheckHost(ctx, current.Hostname()); err != nil {
			return nil, nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current.String(), nil)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", errs.ErrInvalidImageURL, err)
		}
		req.Header.Set("User-Agent", g.userAgent)
		req.Header.Set("Accept", "image/*")

		resp, err := g.client.Do(req)
		if err != nil {
			return nil, nil, classifyTransportError(ctx, err)
		}

		if !isRedirectStatus(resp.StatusCode) {
			// Non-2xx statuses are not special-cased here; the content-type
			// and size checks downstream decide what the caller sees.
			return resp, current, nil
		}

		location := resp.Header.Get("Location")
		resp.Body.Close()
		if location == "" {
			return nil, nil, fmt.Errorf("%w: status %d", errs.ErrRedirectLocationMissing, resp.StatusCode)
		}

		next, err := current.Parse(location)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad redirect location %q", errs.ErrInvalidImageURL, location)
		}
		// The redirect target goes through the full URL validator again; an
		// origin can redirect to any scheme it likes.
		vetted, err := security.ParseImageURL(next.String())
		if err != nil {
			return nil, nil, err
		}

		redirects++
		if redirects > g.maxRedirects {
			return nil, nil, fmt.Errorf("%w: more than %d hops", errs.ErrTooManyRedirects, g.maxRedirects)
		}
		current = vetted
	}
}

// readBody validates the terminal response and streams its body under the
// byte ceiling. Content-Length is attacker-controlled and optional, so the
// advance check and the running counter are both required: the pre-check
// avoids reading bodies that declare themselves oversized, the counter
// catches bodies that lie or stream chunked.
func (g *ImageFetchGateway) readBody(ctx context.Context, resp *http.Response, finalURL *url.URL) (*domain.ImageFetchResult, error) {
	contentType := resp.Header.Get("Content-Type")
	if !domain.IsValidImageContentType(contentType) {
		return nil, fmt.Errorf("%w: content type %q", errs.ErrNotAnImage, contentType)
	}

	if resp.ContentLength > g.maxBytes {
		return nil, fmt.Errorf("%w: declared %d bytes, ceiling %d", errs.ErrImageTooLarge, resp.ContentLength, g.maxBytes)
	}

	// +1 so a body that exactly exceeds the ceiling is detectable without
	// ever buffering more than maxBytes+1 bytes.
	data, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBytes+1))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if int64(len(data)) > g.maxBytes {
		return nil, fmt.Errorf("%w: body exceeded %d bytes", errs.ErrImageTooLarge, g.maxBytes)
	}

	return &domain.ImageFetchResult{
		URL:         finalURL.String(),
		ContentType: contentType,
		Data:        data,
		Size:        len(data),
		FetchedAt:   time.Now(),
	}, nil
}

func isRedirectStatus(status int) bool {
	switch status {
	case http.StatusMovedPermanently, // 301
		http.StatusFound,             // 302
		http.StatusSeeOther,          // 303
		http.StatusTemporaryRedirect, // 307
		http.StatusPermanentRedirect: // 308
		return true
	}
	return false
}

// classifyTransportError separates deadline expiry from other transport
// failures. Everything that is not a timeout collapses into the generic
// network failure kind.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", errs.ErrFetchTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", errs.ErrFetchTimeout, err)
	}
	return fmt.Errorf("%w: %v", errs.ErrNetworkFailure, err)
}
