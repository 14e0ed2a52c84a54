package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "fleet-dispatch/internal/dispatch/delivery/http"
	fleetHTTP "fleet-dispatch/internal/fleet/delivery/http"
	"fleet-dispatch/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, srv.mw)
	srv.l.Infof(ctx, "Chat route registered at POST /chat")

	if srv.fleetHandler != nil {
		fleetHTTP.RegisterRoutes(srv.gin.Group("/api"), srv.fleetHandler)
		srv.l.Infof(ctx, "Fleet listings registered under GET /api")
	} else {
		srv.l.Infof(ctx, "Fleet handler not configured, skipping listing routes")
	}

	return nil
}
