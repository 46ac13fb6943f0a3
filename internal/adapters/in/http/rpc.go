// Package http exposes the order and kitchen use cases as JSON RPC patterns
// over echo. Every pattern is served by POST /rpc/:pattern and answers with
// {"data": ...} or {"error": {"code", "message", "status"}}.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"restaurant/internal/pkg/errcodes"
	"restaurant/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// UseCase is the shape shared by every command and query handler.
type UseCase[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Pattern serves one RPC message pattern.
type Pattern func(c echo.Context) (any, error)

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error errcodes.Code `json:"error"`
}

// Router dispatches POST /rpc/:pattern to the registered patterns.
type Router struct {
	scheme   errorScheme
	patterns map[string]Pattern
	contract *Contract
	logger   *slog.Logger
}

func newRouter(service string, scheme errorScheme, patterns map[string]Pattern, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		scheme:   scheme,
		patterns: patterns,
		logger:   logger.With("component", "rpc", "service", service),
	}
}

// WithContract checks every request against c before its pattern runs and
// serves c under /swagger/.
func (r *Router) WithContract(c *Contract) *Router {
	r.contract = c
	return r
}

// Register mounts the RPC endpoint and the health check on e.
func (r *Router) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.POST("/rpc/:pattern", r.serve)
	if r.contract != nil {
		e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(r.contract.Name())))
	}
}

// Patterns lists the registered pattern names in order.
func (r *Router) Patterns() []string {
	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Router) serve(c echo.Context) error {
	var name string
	err := runtime.BindStyledParameterWithOptions("simple", "pattern", c.Param("pattern"), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return r.fail(c, r.scheme.validation.WithMessage("invalid pattern: "+err.Error()))
	}

	pattern, ok := r.patterns[name]
	if !ok {
		return r.fail(c, errcodes.UnknownPattern.WithMessage("unknown message pattern "+name))
	}

	if r.contract != nil {
		if err = r.contract.Validate(name, c.Request()); err != nil {
			return r.failWith(c, name, err)
		}
	}

	result, err := pattern(c)
	if err != nil {
		return r.failWith(c, name, err)
	}
	return c.JSON(http.StatusOK, dataResponse{Data: result})
}

func (r *Router) failWith(c echo.Context, pattern string, err error) error {
	code, known := r.scheme.codeFor(err)
	if !known {
		r.logger.ErrorContext(c.Request().Context(), "rpc failed",
			"pattern", pattern,
			"error", err,
		)
	}
	return r.fail(c, code)
}

func (r *Router) fail(c echo.Context, code errcodes.Code) error {
	return c.JSON(code.Status, errorResponse{Error: code})
}

var validate = validator.New()

// bind decodes the request body into T and validates its struct tags. Both
// failures are validation-class.
func bind[T any](c echo.Context) (T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return req, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := validate.Struct(req); err != nil {
		return req, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return req, nil
}
