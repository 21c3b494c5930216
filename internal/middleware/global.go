package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/sqlerr"
)

// GlobalMiddlewares groups the middleware shared by every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORSPolicy lists what a resource advertises to browsers.
type CORSPolicy struct {
	AllowMethods []string
	AllowHeaders []string
}

var (
	BookingsCORS = CORSPolicy{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, UserIDHeader},
	}
	CatalogCORS = CORSPolicy{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}
	UsersCORS = CORSPolicy{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}
)

// AllowOrigin sets Access-Control-Allow-Origin on every response, including
// errors and unknown routes.
func (global *GlobalMiddlewares) AllowOrigin() echo.MiddlewareFunc {
	allowed := global.server.Config.Server.CORSAllowedOrigins
	wildcard := slices.Contains(allowed, "*")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			if wildcard {
				header.Set(echo.HeaderAccessControlAllowOrigin, "*")
			} else if origin := c.Request().Header.Get(echo.HeaderOrigin); slices.Contains(allowed, origin) {
				header.Set(echo.HeaderAccessControlAllowOrigin, origin)
				header.Add(echo.HeaderVary, echo.HeaderOrigin)
			}
			return next(c)
		}
	}
}

// CORS advertises policy on every response of a resource and answers
// preflight requests with an empty 200 before any handler runs.
func (global *GlobalMiddlewares) CORS(policy CORSPolicy) echo.MiddlewareFunc {
	methods := strings.Join(policy.AllowMethods, ", ")
	headers := strings.Join(policy.AllowHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowMethods, methods)
			header.Set(echo.HeaderAccessControlAllowHeaders, headers)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}

// Preflight is the terminal handler of OPTIONS routes. CORS normally answers first.
func Preflight(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// RequestLogger writes one "API" line per request with a level derived
// from the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// The error handler has not written the response yet when a
			// handler returns an error.
			statusCode := v.Status
			if v.Error != nil {
				statusCode = errorStatus(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler converts every error into the JSON error body.
// Unexpected errors are logged with their cause and answered with a
// generic 500.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)
	if httpErr.Status >= http.StatusInternalServerError {
		logger.Error().Stack().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg("request failed")
	} else {
		logger.Debug().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr)
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch echoErr.Code {
		case http.StatusNotFound:
			return errs.NewNotFoundError("Route not found", false, nil)
		case http.StatusMethodNotAllowed:
			return errs.NewMethodNotAllowedError()
		}

		message := http.StatusText(echoErr.Code)
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	// Database errors that escaped the service layer. Only client errors
	// keep their details.
	if errors.As(sqlerr.HandleError(err), &httpErr) && httpErr.Status < http.StatusInternalServerError {
		return httpErr
	}

	return errs.NewInternalServerError()
}

func errorStatus(err error) int {
	return toHTTPError(err).Status
}

// responseStatus is the status the client will see once the error handler ran.
func responseStatus(c echo.Context, err error) int {
	if err != nil && !c.Response().Committed {
		return errorStatus(err)
	}
	return c.Response().Status
}
