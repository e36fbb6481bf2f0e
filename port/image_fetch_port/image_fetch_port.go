package image_fetch_port

import (
	"context"

	"fieldboard/domain"
)

// ImageFetchPort defines the interface for the SSRF-guarded remote image
// fetch. The input is the raw client-supplied URL; validation is part of the
// fetch contract, never the caller's job.
type ImageFetchPort interface {
	FetchImage(ctx context.Context, rawURL string) (*domain.ImageFetchResult, error)
}
