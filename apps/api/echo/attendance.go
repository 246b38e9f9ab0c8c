package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/attendance"
)

type attendanceAPI struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, auth, staff echo.MiddlewareFunc, svc *attendance.Service) {
	api := &attendanceAPI{svc: svc}

	ag := g.Group("/attendance", auth)
	ag.GET("", api.query)
	ag.GET("/export", api.export, staff)
	ag.POST("", api.mark, staff)
	ag.GET("/:id", api.retrieve)
	ag.DELETE("/:id", api.delete, staff)
}

func (api *attendanceAPI) query(ctx echo.Context) error {
	var filter attendance.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	records, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceAPI) mark(ctx echo.Context) error {
	var m attendance.Mark
	if err := ctx.Bind(&m); err != nil {
		return err
	}
	r, err := api.svc.MarkAttendance(m)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *attendanceAPI) retrieve(ctx echo.Context) error {
	r, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *attendanceAPI) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
