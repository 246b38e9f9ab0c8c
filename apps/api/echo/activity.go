package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/activity"
)

type activityAPI struct {
	svc *activity.Service
}

func registerActivityAPI(g *echo.Group, auth, admin echo.MiddlewareFunc, svc *activity.Service) {
	api := &activityAPI{svc: svc}

	g.GET("/activity", api.query, auth, admin)
}

func (api *activityAPI) query(ctx echo.Context) error {
	entries, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entries)
}
