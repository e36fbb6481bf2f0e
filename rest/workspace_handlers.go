package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fieldboard/di"
	"fieldboard/domain"
	middleware_custom "fieldboard/middleware"
	errs "fieldboard/utils/errors"
)

func registerWorkspaceRoutes(api *echo.Group, container *di.ApplicationComponents) {
	workspace := api.Group("/workspace", middleware_custom.SessionAuthMiddleware(container.AuthPort))
	workspace.GET("", handleGetWorkspace(container))
	workspace.PUT("", handlePutWorkspace(container))
}

func handleGetWorkspace(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userContext, ok := c.Get(middleware_custom.UserContextKey).(*domain.UserContext)
		if !ok {
			return c.String(http.StatusUnauthorized, "Authentication required")
		}

		workspace, err := container.WorkspaceUsecase.GetWorkspace(c.Request().Context(), userContext.UserID)
		if err != nil {
			return c.String(http.StatusInternalServerError, "Failed to load workspace")
		}
		return c.JSON(http.StatusOK, workspace)
	}
}

func handlePutWorkspace(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userContext, ok := c.Get(middleware_custom.UserContextKey).(*domain.UserContext)
		if !ok {
			return c.String(http.StatusUnauthorized, "Authentication required")
		}

		var workspace domain.Workspace
		if err := c.Bind(&workspace); err != nil {
			return c.String(http.StatusBadRequest, "Invalid workspace payload")
		}

		saved, err := container.WorkspaceUsecase.SaveWorkspace(c.Request().Context(), userContext.UserID, &workspace)
		if err != nil {
			if errs.IsInvalidWorkspace(err) {
				return c.String(http.StatusBadRequest, "Invalid workspace payload")
			}
			return c.String(http.StatusInternalServerError, "Failed to save workspace")
		}
		return c.JSON(http.StatusOK, saved)
	}
}
