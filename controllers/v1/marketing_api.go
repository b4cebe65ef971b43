package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/marketing"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	marketingapimodels "ats-backend/models/api/marketing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type marketingApiController struct {
	controllers.BaseAPIController
	marketing marketing.Provider
}

// InitPublicMarketingApiRouters serves the landing page and needs no token.
func InitPublicMarketingApiRouters(app *fiber.App, provider marketing.Provider) {
	controller := marketingApiController{marketing: provider}
	app.Get("testimonials", controller.testimonials)
	app.Get("pricing", controller.pricing)
	app.Get("features", controller.features)
	app.Get("integrations", controller.integrations)
	app.Get("faqs", controller.faqs)
	app.Post("demo-request", controller.requestDemo)
	app.Post("newsletter", controller.subscribe)
}

func InitMarketingApiRouters(app *fiber.App, provider marketing.Provider) {
	controller := marketingApiController{marketing: provider}
	app.Route("marketing", func(router fiber.Router) {
		router.Get("demo-requests", controller.demoRequests)
	})
}

// @Summary Testimonials
// @Tags Public
// @Description Featured testimonials in display order
// @Success 200 {object} apimodels.Response{data=[]marketingapimodels.TestimonialView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/testimonials [get]
func (c *marketingApiController) testimonials(ctx *fiber.Ctx) error {
	list, err := c.marketing.Testimonials()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading testimonials")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Pricing plans
// @Tags Public
// @Description Active pricing plans in display order
// @Success 200 {object} apimodels.Response{data=[]marketingapimodels.PricingPlanView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/pricing [get]
func (c *marketingApiController) pricing(ctx *fiber.Ctx) error {
	list, err := c.marketing.PricingPlans()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading pricing plans")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Features
// @Tags Public
// @Description Featured product features in display order
// @Success 200 {object} apimodels.Response{data=[]marketingapimodels.FeatureView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/features [get]
func (c *marketingApiController) features(ctx *fiber.Ctx) error {
	list, err := c.marketing.Features()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading features")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Integrations
// @Tags Public
// @Description Featured integrations in display order
// @Success 200 {object} apimodels.Response{data=[]marketingapimodels.IntegrationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/integrations [get]
func (c *marketingApiController) integrations(ctx *fiber.Ctx) error {
	list, err := c.marketing.Integrations()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading integrations")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary FAQ
// @Tags Public
// @Description Active questions in display order
// @Success 200 {object} apimodels.Response{data=[]marketingapimodels.FaqView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/faqs [get]
func (c *marketingApiController) faqs(ctx *fiber.Ctx) error {
	list, err := c.marketing.Faqs()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading faqs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Request a demo
// @Tags Public
// @Description Request a demo
// @Param	body body	 marketingapimodels.DemoRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/demo-request [post]
func (c *marketingApiController) requestDemo(ctx *fiber.Ctx) error {
	var payload marketingapimodels.DemoRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.marketing.RequestDemo(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error saving demo request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Newsletter subscription
// @Tags Public
// @Description Newsletter subscription
// @Param	body body	 marketingapimodels.NewsletterData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/public/newsletter [post]
func (c *marketingApiController) subscribe(ctx *fiber.Ctx) error {
	var payload marketingapimodels.NewsletterData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := c.marketing.Subscribe(payload)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError("Email already subscribed"))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error saving subscription")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Demo requests
// @Tags Marketing
// @Description Demo requests, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]marketingapimodels.DemoRequestView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/marketing/demo-requests [get]
func (c *marketingApiController) demoRequests(ctx *fiber.Ctx) error {
	list, err := c.marketing.DemoRequests()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading demo requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
