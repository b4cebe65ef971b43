package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/analytics"
	apimodels "ats-backend/models/api"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type analyticsApiController struct {
	controllers.BaseAPIController
	analytics analytics.Provider
}

func InitAnalyticsApiRouters(app *fiber.App, provider analytics.Provider) {
	controller := analyticsApiController{analytics: provider}
	app.Route("analytics", func(router fiber.Router) {
		router.Get("", controller.dashboard)
		router.Get("export", controller.dashboardExport)
	})
}

// @Summary Dashboard
// @Tags Analytics
// @Description Recruiting metrics computed from the current candidate collection
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.DashboardView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics [get]
func (c *analyticsApiController) dashboard(ctx *fiber.Ctx) error {
	data, err := c.analytics.Dashboard(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error computing dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Dashboard. Export to Excel
// @Tags Analytics
// @Description Dashboard. Export to Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/export [get]
func (c *analyticsApiController) dashboardExport(ctx *fiber.Ctx) error {
	data, err := c.analytics.DashboardExportToXls(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exporting dashboard to Excel")
	}
	fileName := fmt.Sprintf("dashboard-%v.xlsx", time.Now().Format("20060102-150405"))
	return c.SendFile(ctx, xlsxContentType, fileName, data.Bytes())
}
