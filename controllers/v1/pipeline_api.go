package apiv1

import (
	"ats-backend/controllers"
	candidatequery "ats-backend/lib/candidate-query"
	apimodels "ats-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type pipelineApiController struct {
	controllers.BaseAPIController
	query candidatequery.Provider
}

func InitPipelineApiRouters(app *fiber.App, query candidatequery.Provider) {
	controller := pipelineApiController{query: query}
	app.Route("pipeline", func(router fiber.Router) {
		router.Get("", controller.board)
	})
}

// @Summary Pipeline board
// @Tags Pipeline
// @Description One column per stage in pipeline order, empty stages included
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.PipelineColumnView}
// @Failure 401
// @router /api/v1/space/pipeline [get]
func (c *pipelineApiController) board(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(c.query.Pipeline(ctx.UserContext())))
}
