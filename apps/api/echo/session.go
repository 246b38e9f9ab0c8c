package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core/session"
)

type sessionAPI struct {
	svc *session.Service
}

func registerSessionAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *session.Service) {
	api := &sessionAPI{svc: svc}

	g.POST("/login", api.login)
	g.POST("/logout", api.logout, auth)
	g.GET("/session", api.session)
}

type loginResponse struct {
	Token string           `json:"token"`
	User  session.Identity `json:"user"`
}

func (api *sessionAPI) login(ctx echo.Context) error {
	var creds session.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return err
	}

	ident, err := api.svc.Login(creds)
	if err != nil {
		return err
	}
	token, err := GenerateToken(GetIdentityClaims(ident))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loginResponse{Token: token, User: ident})
}

func (api *sessionAPI) logout(ctx echo.Context) error {
	if err := api.svc.Logout(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// session returns the persisted identity, or 204 when nobody is logged in.
func (api *sessionAPI) session(ctx echo.Context) error {
	ident, err := api.svc.Restore()
	if err != nil {
		return err
	}
	if ident.IsZero() {
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusOK, ident)
}
