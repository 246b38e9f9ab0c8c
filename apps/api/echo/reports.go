package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/report"
	"github.com/edutrack/edutrack/core/session"
)

type reportAPI struct {
	svc *report.Service
}

func registerReportAPI(g *echo.Group, auth, admin, staff echo.MiddlewareFunc, svc *report.Service) {
	api := &reportAPI{svc: svc}

	rg := g.Group("/reports", auth)
	rg.GET("/dashboard", api.dashboard, staff)
	rg.GET("/fees", api.fees, admin)
	rg.GET("/classes", api.classes, staff)
	rg.GET("/grades", api.grades, staff)
	rg.GET("/students/:id", api.student)
}

func (api *reportAPI) dashboard(ctx echo.Context) error {
	stats, err := api.svc.Dashboard()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *reportAPI) fees(ctx echo.Context) error {
	sum, err := api.svc.Fees()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *reportAPI) classes(ctx echo.Context) error {
	dist, err := api.svc.ClassDistribution()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dist)
}

func (api *reportAPI) grades(ctx echo.Context) error {
	dist, err := api.svc.GradeDistribution(ctx.QueryParam("course"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dist)
}

// student serves staff, and students asking about themselves.
func (api *reportAPI) student(ctx echo.Context) error {
	claims := getContextClaims(ctx)
	if claims == nil {
		return errMissingToken
	}
	id := ctx.Param("id")
	if claims.Role == session.RoleStudent && claims.StudentID != id {
		return errPermissionDenied
	}

	sum, err := api.svc.Student(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sum)
}
