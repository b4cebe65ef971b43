package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/models"
	apimodels "ats-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type dictApiController struct {
	controllers.BaseAPIController
}

type suggestionsView struct {
	Statuses  []statusView `json:"statuses"`
	Locations []string     `json:"locations"`
	Sources   []string     `json:"sources"`
}

type statusView struct {
	Status models.CandidateStatus `json:"status"`
	Name   string                 `json:"name"`
}

func InitDictApiRouters(app *fiber.App) {
	controller := dictApiController{}
	app.Route("dict", func(router fiber.Router) {
		router.Get("suggestions", controller.suggestions)
	})
}

// @Summary Form suggestions
// @Tags Dictionary
// @Description Pipeline stages, locations and sources offered by the candidate form
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=suggestionsView}
// @Failure 401
// @router /api/v1/space/dict/suggestions [get]
func (c *dictApiController) suggestions(ctx *fiber.Ctx) error {
	statuses := make([]statusView, 0, len(models.PipelineStatuses))
	for _, status := range models.PipelineStatuses {
		statuses = append(statuses, statusView{Status: status, Name: status.ToHuman()})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(suggestionsView{
		Statuses:  statuses,
		Locations: models.LocationSuggestions,
		Sources:   models.SourceSuggestions,
	}))
}
