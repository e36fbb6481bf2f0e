package domain

import (
	"strings"
	"time"
)

// Image proxy limits. These are process-wide constants with no lifecycle
// beyond startup; they are copied into the fetch gateway at construction
// and never mutated.
const (
	// ImageProxyMaxBytes is the hard ceiling on response body bytes the proxy
	// will ever buffer or forward (10 MiB).
	ImageProxyMaxBytes int64 = 10 << 20

	// ImageProxyMaxRedirects bounds the number of redirect hops followed for
	// a single request.
	ImageProxyMaxRedirects = 5

	// ImageProxyFetchTimeout covers the whole multi-hop fetch sequence, not
	// each individual hop.
	ImageProxyFetchTimeout = 8 * time.Second

	// ImageProxyUserAgent identifies outbound proxy requests to origin servers.
	ImageProxyUserAgent = "Fieldboard-ImageProxy"
)

// ImageFetchResult is a fully buffered image fetched through the proxy.
type ImageFetchResult struct {
	URL         string
	ContentType string
	Data        []byte
	Size        int
	FetchedAt   time.Time
}

// IsValidImageContentType reports whether a response content type denotes an
// image. Parameters after the media type (e.g. "image/svg+xml; charset=utf-8")
// are accepted.
func IsValidImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
