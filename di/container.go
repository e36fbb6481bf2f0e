package di

import (
	"fieldboard/config"
	"fieldboard/driver/auth"
	"fieldboard/driver/workspace_db"
	"fieldboard/gateway/auth_gateway"
	"fieldboard/gateway/image_fetch_gateway"
	"fieldboard/gateway/workspace_gateway"
	"fieldboard/port/auth_port"
	"fieldboard/usecase/image_proxy_usecase"
	"fieldboard/usecase/workspace_usecase"
	"fieldboard/utils/logger"
)

// ApplicationComponents wires gateways into usecases once at startup.
type ApplicationComponents struct {
	ImageProxyUsecase *image_proxy_usecase.ImageProxyUsecase
	WorkspaceUsecase  *workspace_usecase.WorkspaceUsecase
	AuthPort          auth_port.AuthPort
}

func NewApplicationComponents(cfg *config.Config, pool workspace_db.PgxIface) *ApplicationComponents {
	imageFetchGateway := image_fetch_gateway.NewImageFetchGateway(cfg.ImageProxy)
	workspaceGateway := workspace_gateway.NewWorkspaceGateway(pool)
	authGateway := auth_gateway.NewAuthGateway(auth.NewClient(cfg, logger.Logger))

	return &ApplicationComponents{
		ImageProxyUsecase: image_proxy_usecase.NewImageProxyUsecase(imageFetchGateway),
		WorkspaceUsecase:  workspace_usecase.NewWorkspaceUsecase(workspaceGateway),
		AuthPort:          authGateway,
	}
}
