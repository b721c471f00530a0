package router

import (
	"net/http"

	docs "github.com/envelope-zero/savings-goals/api"
	"github.com/envelope-zero/savings-goals/internal/config"
	"github.com/envelope-zero/savings-goals/internal/controllers"
	"github.com/envelope-zero/savings-goals/internal/controllers/root"
	versionController "github.com/envelope-zero/savings-goals/internal/controllers/version"
	"github.com/envelope-zero/savings-goals/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X".
var version = "0.0.0"

// Config creates the gin engine with all middlewares and the
// operational endpoints.
func Config(cfg *config.Config, co controllers.Controller) (*gin.Engine, error) {
	url, err := cfg.URL()
	if err != nil {
		return nil, err
	}

	m, err := newMetrics(co.Store)
	if err != nil {
		return nil, err
	}

	// Report validation errors with the JSON field names
	httputil.UseJSONFieldNames()

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(httputil.URLMiddleware(url))
	r.Use(m.Middleware())
	r.NoMethod(func(c *gin.Context) {
		httputil.New(c, http.StatusMethodNotAllowed, "this HTTP method is not allowed for the endpoint you called")
	})
	r.NoRoute(func(c *gin.Context) {
		httputil.New(c, http.StatusNotFound, "there is no endpoint at this path")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc:  originMatcher(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Savings Goals"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for savings goals. Create goals, track how much you saved and see how much to save every month."

	api := r.Group("/api")
	api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(api, "debug/pprof")
	}

	return r, nil
}

// AttachRoutes attaches the dashboard and the API routes to the router
// group that is passed in.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	co.RegisterDashboardRoutes(group)

	api := group.Group("/api")
	root.RegisterRoutes(api)
	versionController.RegisterRoutes(api.Group("/version"), version)
	co.RegisterHealthzRoutes(api.Group("/healthz"))
	api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterGoalRoutes(api.Group("/goals"))
}
