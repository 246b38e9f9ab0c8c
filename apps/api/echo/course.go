package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/course"
)

type courseAPI struct {
	svc *course.Service
}

func registerCourseAPI(g *echo.Group, auth, admin echo.MiddlewareFunc, svc *course.Service) {
	api := &courseAPI{svc: svc}

	cg := g.Group("/courses", auth)
	cg.GET("", api.query)
	cg.POST("", api.create, admin)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update, admin)
	cg.DELETE("/:id", api.delete, admin)
}

func (api *courseAPI) query(ctx echo.Context) error {
	var filter course.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	courses, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseAPI) create(ctx echo.Context) error {
	var nc course.NewCourse
	if err := ctx.Bind(&nc); err != nil {
		return err
	}
	c, err := api.svc.Create(nc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *courseAPI) retrieve(ctx echo.Context) error {
	c, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *courseAPI) update(ctx echo.Context) error {
	var uc course.UpdateCourse
	if err := ctx.Bind(&uc); err != nil {
		return err
	}
	c, err := api.svc.Update(ctx.Param("id"), uc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *courseAPI) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
