package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"memo-manager/internal/middleware"
	"memo-manager/internal/model"
	"memo-manager/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	srv.gin.NoRoute(response.NotFound)
	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLog())

	ctx := context.Background()
	corsCfg := cors.DefaultConfig()
	if len(srv.allowedOrigins) > 0 {
		corsCfg.AllowOrigins = srv.allowedOrigins
	} else if srv.environment != string(model.EnvironmentProduction) {
		corsCfg.AllowAllOrigins = true
	} else {
		srv.l.Infof(ctx, "CORS mode: production, no origins allowed")
		return
	}
	srv.gin.Use(cors.New(corsCfg))
	srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	return srv.setupMemoDomain(context.Background(), srv.gin.Group(""), mw)
}
