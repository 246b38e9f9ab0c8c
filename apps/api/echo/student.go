package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/student"
)

type studentAPI struct {
	svc *student.Service
}

func registerStudentAPI(g *echo.Group, auth, admin echo.MiddlewareFunc, svc *student.Service) {
	api := &studentAPI{svc: svc}

	sg := g.Group("/students", auth)
	sg.GET("", api.query)
	sg.GET("/export", api.export, admin)
	sg.GET("/export/xlsx", api.exportXLSX, admin)
	sg.POST("", api.create, admin)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update, admin)
	sg.DELETE("/:id", api.delete, admin)
}

func (api *studentAPI) query(ctx echo.Context) error {
	var filter student.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	students, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentAPI) create(ctx echo.Context) error {
	var ns student.NewStudent
	if err := ctx.Bind(&ns); err != nil {
		return err
	}
	st, err := api.svc.Create(ns)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *studentAPI) retrieve(ctx echo.Context) error {
	st, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentAPI) update(ctx echo.Context) error {
	var us student.UpdateStudent
	if err := ctx.Bind(&us); err != nil {
		return err
	}
	st, err := api.svc.Update(ctx.Param("id"), us)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentAPI) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
