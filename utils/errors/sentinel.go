package errors

import "errors"

// Sentinel errors for the image proxy pipeline. Every fetch failure is
// terminal; the distinct kinds exist for internal logging and metrics, while
// the REST boundary collapses most of them into one generic client message.
var (
	// ErrInvalidImageURL: input is not an absolute http/https URL.
	ErrInvalidImageURL = errors.New("invalid image url")

	// ErrBlockedHost: the target resolves to a private, loopback, link-local
	// or reserved address, DNS resolution failed, or the hostname matched a
	// blocked local-name pattern. DNS failure deliberately maps here and not
	// to a retryable kind: the checker fails closed.
	ErrBlockedHost = errors.New("blocked host")

	// ErrRedirectLocationMissing: a 3xx response carried no usable Location.
	ErrRedirectLocationMissing = errors.New("redirect without location")

	// ErrTooManyRedirects: the redirect chain exceeded the hop bound.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrNotAnImage: the terminal response content type is not image/*.
	ErrNotAnImage = errors.New("response is not an image")

	// ErrImageTooLarge: declared or actual body size exceeds the byte ceiling.
	ErrImageTooLarge = errors.New("image too large")

	// ErrFetchTimeout: the overall deadline elapsed at some stage of the fetch.
	ErrFetchTimeout = errors.New("image fetch timed out")

	// ErrNetworkFailure: any other transport-level failure (connection
	// refused, TLS failure, reset mid-body, ...).
	ErrNetworkFailure = errors.New("network failure")
)

// Sentinel errors for the workspace API.
var (
	ErrInvalidWorkspace  = errors.New("invalid workspace")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// IsBlockedHost reports whether err represents a blocked-host rejection.
func IsBlockedHost(err error) bool {
	return errors.Is(err, ErrBlockedHost)
}

// IsFetchTimeout reports whether err represents an elapsed fetch deadline.
func IsFetchTimeout(err error) bool {
	return errors.Is(err, ErrFetchTimeout)
}

// IsInvalidWorkspace reports whether err represents a rejected snapshot.
func IsInvalidWorkspace(err error) bool {
	return errors.Is(err, ErrInvalidWorkspace)
}

// ProxyOutcome maps a fetch result to the metrics outcome label. A nil error
// is "success"; unknown errors count as network errors.
func ProxyOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidImageURL):
		return "invalid_url"
	case errors.Is(err, ErrBlockedHost):
		return "blocked_host"
	case errors.Is(err, ErrRedirectLocationMissing):
		return "redirect_error"
	case errors.Is(err, ErrTooManyRedirects):
		return "too_many_redirects"
	case errors.Is(err, ErrNotAnImage):
		return "not_an_image"
	case errors.Is(err, ErrImageTooLarge):
		return "payload_too_large"
	case errors.Is(err, ErrFetchTimeout):
		return "timeout"
	default:
		return "network_error"
	}
}
