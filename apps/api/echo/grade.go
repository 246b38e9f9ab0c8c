package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/grade"
)

type gradeAPI struct {
	svc *grade.Service
}

func registerGradeAPI(g *echo.Group, auth, staff echo.MiddlewareFunc, svc *grade.Service) {
	api := &gradeAPI{svc: svc}

	gg := g.Group("/grades", auth)
	gg.GET("", api.query)
	gg.POST("", api.create, staff)
	gg.GET("/:id", api.retrieve)
	gg.PUT("/:id", api.update, staff)
	gg.DELETE("/:id", api.delete, staff)
}

func (api *gradeAPI) query(ctx echo.Context) error {
	var filter grade.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	records, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *gradeAPI) create(ctx echo.Context) error {
	var nr grade.NewRecord
	if err := ctx.Bind(&nr); err != nil {
		return err
	}
	r, err := api.svc.Create(nr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *gradeAPI) retrieve(ctx echo.Context) error {
	r, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *gradeAPI) update(ctx echo.Context) error {
	var ur grade.UpdateRecord
	if err := ctx.Bind(&ur); err != nil {
		return err
	}
	r, err := api.svc.Update(ctx.Param("id"), ur)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *gradeAPI) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
