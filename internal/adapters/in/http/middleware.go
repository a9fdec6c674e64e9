package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"mozdelivery/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestValidator checks every request that matches an operation of doc against its
// parameters and body schema. Paths outside doc (health, swagger) pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(ctx.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

// Register mounts the API and its middleware on e.
func Register(e *echo.Echo, server *Server, logger *slog.Logger) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("failed to load openapi document: %w", err)
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(validator)

	servers.RegisterHandlers(e, server)
	return nil
}
