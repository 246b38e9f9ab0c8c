package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/faculty"
)

type facultyAPI struct {
	svc *faculty.Service
}

func registerFacultyAPI(g *echo.Group, auth, admin echo.MiddlewareFunc, svc *faculty.Service) {
	api := &facultyAPI{svc: svc}

	fg := g.Group("/faculty", auth)
	fg.GET("", api.query)
	fg.POST("", api.create, admin)
	fg.GET("/:id", api.retrieve)
	fg.PUT("/:id", api.update, admin)
	fg.DELETE("/:id", api.delete, admin)
}

func (api *facultyAPI) query(ctx echo.Context) error {
	var filter faculty.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	fac, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fac)
}

func (api *facultyAPI) create(ctx echo.Context) error {
	var nf faculty.NewFaculty
	if err := ctx.Bind(&nf); err != nil {
		return err
	}
	f, err := api.svc.Create(nf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, f)
}

func (api *facultyAPI) retrieve(ctx echo.Context) error {
	f, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *facultyAPI) update(ctx echo.Context) error {
	var uf faculty.UpdateFaculty
	if err := ctx.Bind(&uf); err != nil {
		return err
	}
	f, err := api.svc.Update(ctx.Param("id"), uf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *facultyAPI) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
