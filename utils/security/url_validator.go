package security

import (
	"fmt"
	"net/url"

	errs "fieldboard/utils/errors"
)

// maxImageURLLength bounds the raw URL before parsing; anything longer is
// rejected outright.
const maxImageURLLength = 2048

// ParseImageURL validates a client-supplied image URL and returns its parsed
// form. The URL must be absolute with scheme http or https; anything else
// fails with ErrInvalidImageURL. No network access happens here.
func ParseImageURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty url", errs.ErrInvalidImageURL)
	}
	if len(raw) > maxImageURLLength {
		return nil, fmt.Errorf("%w: url exceeds %d characters", errs.ErrInvalidImageURL, maxImageURLLength)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidImageURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q not allowed", errs.ErrInvalidImageURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", errs.ErrInvalidImageURL)
	}

	return u, nil
}
