package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/attendance"
	"github.com/edutrack/edutrack/core/course"
	"github.com/edutrack/edutrack/core/faculty"
	"github.com/edutrack/edutrack/core/fee"
	"github.com/edutrack/edutrack/core/grade"
	"github.com/edutrack/edutrack/core/session"
	"github.com/edutrack/edutrack/core/student"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// newAppHTTPErrorHandler maps application errors to JSON API responses.
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var res errorResponse
		code := http.StatusInternalServerError

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = origErr.Code
			res.Error = http.StatusText(code)
			if msg, ok := origErr.Message.(string); ok {
				res.Error = msg
			}
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			res.Error = "validation error"
			res.Fields = make(map[string]string, len(origErr))
			for _, fieldErr := range origErr {
				res.Fields[fieldErr.Field()] = fieldErr.Translate(core.Translator)
			}
		case *core.ValidationError:
			code = http.StatusBadRequest
			res.Error = origErr.Error()
			if res.Error == "" {
				res.Error = "validation error"
			}
			if len(origErr.Fields) > 0 {
				res.Fields = make(map[string]string, len(origErr.Fields))
				for _, fieldErr := range origErr.Fields {
					res.Fields[fieldErr.Field] = fieldErr.Error
				}
			}
		default:
			switch {
			case isNotFound(origErr):
				code = http.StatusNotFound
				res.Error = origErr.Error()
			case origErr == session.ErrInvalidCredentials:
				code = http.StatusBadRequest
				res.Error = origErr.Error()
			default:
				res.Error = http.StatusText(code)
				if core.IsShutdown(origErr) {
					logger.Error("Integrity issue; shutting down", err)
					ctx.Logger().Fatal(err)
				} else {
					logger.Error("Internal Server Error", err)
				}
			}
		}

		if err = ctx.JSON(code, res); err != nil {
			ctx.Logger().Error(err)
		}
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		student.ErrNotFound,
		faculty.ErrNotFound,
		course.ErrNotFound,
		attendance.ErrNotFound,
		grade.ErrNotFound,
		fee.ErrNotFound,
	} {
		if err == target {
			return true
		}
	}
	return false
}
