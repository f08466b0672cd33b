package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"rental/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig holds the transport settings read from the environment.
type RouterConfig struct {
	JWTSecret []byte

	// RateLimitRPS disables throttling when zero.
	RateLimitRPS float64
}

// NewRouter assembles the echo instance serving the REST API, /health and /swagger.
func NewRouter(server *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("jwt secret is required")
	}

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}
	if err = registerDocs(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	if cfg.RateLimitRPS > 0 {
		e.Use(rateLimiter(cfg.RateLimitRPS))
	}

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("", bearerAuth(cfg.JWTSecret), validator)
	api.RegisterHandlers(apiGroup, server)

	return e, nil
}

// openapiDoc serves the embedded document to swagger-ui.
type openapiDoc struct {
	json string
}

func (d openapiDoc) ReadDoc() string {
	return d.json
}

var registerDocsOnce sync.Once

// registerDocs publishes doc under swag's default instance. swag panics on a second
// registration, so only the first router built in the process registers.
func registerDocs(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, openapiDoc{json: string(data)})
	})
	return nil
}
