package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/auth"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	authapimodels "ats-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type authApiController struct {
	controllers.BaseAPIController
	auth auth.Provider
}

func InitAuthApiRouters(app *fiber.App, provider auth.Provider, authRequired fiber.Handler) {
	controller := authApiController{auth: provider}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Get("me", authRequired, controller.me)
	})
}

// @Summary Login
// @Tags Auth
// @Description Issue a token for the configured user
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.auth.Login(payload)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error signing in")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current user
// @Tags Auth
// @Description Current user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 401
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	actor := middleware.GetActor(ctx)
	user := c.auth.User()
	if actor.ID != user.ID {
		user = authapimodels.UserView{ID: actor.ID, Name: actor.Name}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}
