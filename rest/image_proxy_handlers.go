package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fieldboard/di"
	errs "fieldboard/utils/errors"
)

// registerImageProxyRoutes registers the remote-image import endpoint. It is
// deliberately unauthenticated: the browser puts the proxy URL straight into
// <img src>, where no session header can ride along.
func registerImageProxyRoutes(api *echo.Group, container *di.ApplicationComponents) {
	// Any, not GET: the 405 body is part of the contract, so the method
	// check happens in the handler rather than in the router.
	api.Any("/image-proxy", handleImageProxy(container))
}

func handleImageProxy(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodGet {
			return c.String(http.StatusMethodNotAllowed, "Method not allowed")
		}

		rawURL := c.QueryParam("url")
		if rawURL == "" {
			return c.String(http.StatusBadRequest, "Missing url")
		}

		result, err := container.ImageProxyUsecase.ProxyImage(c.Request().Context(), rawURL)
		if err != nil {
			return respondProxyError(c, err)
		}

		header := c.Response().Header()
		header.Set(echo.HeaderContentLength, strconv.Itoa(result.Size))
		header.Set("Cache-Control", "public, max-age=86400")
		return c.Blob(http.StatusOK, result.ContentType, result.Data)
	}
}

// respondProxyError maps the internal error taxonomy to the fixed client
// responses. Validation, host-blocking, redirect and transport failures all
// collapse into one generic message: telling an SSRF-probing client *why* a
// target was rejected would itself be an information leak.
func respondProxyError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAnImage):
		return c.String(http.StatusBadRequest, "Not an image")
	case errors.Is(err, errs.ErrImageTooLarge):
		return c.String(http.StatusRequestEntityTooLarge, "Image too large")
	case errors.Is(err, errs.ErrFetchTimeout):
		return c.String(http.StatusGatewayTimeout, "Timeout")
	default:
		return c.String(http.StatusBadRequest, "Unable to fetch image")
	}
}
