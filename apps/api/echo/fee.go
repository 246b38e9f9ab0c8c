package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/fee"
)

type feeAPI struct {
	svc *fee.Service
}

func registerFeeAPI(g *echo.Group, auth, admin echo.MiddlewareFunc, svc *fee.Service) {
	api := &feeAPI{svc: svc}

	fg := g.Group("/fees", auth)
	fg.GET("", api.query)
	fg.POST("", api.create, admin)
	fg.GET("/:id", api.retrieve)
	fg.PUT("/:id", api.update, admin)
	fg.POST("/:id/payments", api.recordPayment, admin)
	fg.DELETE("/:id", api.delete, admin)
}

func (api *feeAPI) query(ctx echo.Context) error {
	var filter fee.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	records, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *feeAPI) create(ctx echo.Context) error {
	var nr fee.NewRecord
	if err := ctx.Bind(&nr); err != nil {
		return err
	}
	r, err := api.svc.Create(nr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *feeAPI) retrieve(ctx echo.Context) error {
	r, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *feeAPI) update(ctx echo.Context) error {
	var ur fee.UpdateRecord
	if err := ctx.Bind(&ur); err != nil {
		return err
	}
	r, err := api.svc.Update(ctx.Param("id"), ur)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *feeAPI) recordPayment(ctx echo.Context) error {
	var p fee.Payment
	if err := ctx.Bind(&p); err != nil {
		return err
	}
	r, err := api.svc.RecordPayment(ctx.Param("id"), p)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *feeAPI) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
