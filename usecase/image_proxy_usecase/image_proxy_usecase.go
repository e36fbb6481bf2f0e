package image_proxy_usecase

import (
	"context"

	"fieldboard/domain"
	"fieldboard/port/image_fetch_port"
	errs "fieldboard/utils/errors"
	"fieldboard/utils/logger"
	"fieldboard/utils/metrics"
)

// ImageProxyUsecase orchestrates a proxy fetch and keeps the distinct error
// kinds observable (logs, outcome counters) before the REST boundary
// collapses them into coarse client messages.
type ImageProxyUsecase struct {
	fetcher image_fetch_port.ImageFetchPort
}

func NewImageProxyUsecase(fetcher image_fetch_port.ImageFetchPort) *ImageProxyUsecase {
	return &ImageProxyUsecase{fetcher: fetcher}
}

// ProxyImage fetches the image behind rawURL. Failures are terminal; nothing
// is retried here.
func (u *ImageProxyUsecase) ProxyImage(ctx context.Context, rawURL string) (*domain.ImageFetchResult, error) {
	result, err := u.fetcher.FetchImage(ctx, rawURL)

	outcome := errs.ProxyOutcome(err)
	metrics.ImageProxyRequests.WithLabelValues(outcome).Inc()

	if err != nil {
		logger.SafeWarnContext(ctx, "image proxy fetch failed",
			"outcome", outcome,
			"url", rawURL,
			"error", err,
		)
		return nil, err
	}

	metrics.ImageProxyBytes.Add(float64(result.Size))
	logger.SafeInfoContext(ctx, "image proxy fetch succeeded",
		"url", rawURL,
		"content_type", result.ContentType,
		"size_bytes", result.Size,
	)
	return result, nil
}
