package apiv1

import (
	"ats-backend/controllers"
	candidatequery "ats-backend/lib/candidate-query"
	apimodels "ats-backend/models/api"
	candidateapimodels "ats-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type interviewApiController struct {
	controllers.BaseAPIController
	query candidatequery.Provider
}

func InitInterviewApiRouters(app *fiber.App, query candidatequery.Provider) {
	controller := interviewApiController{query: query}
	app.Route("interview", func(router fiber.Router) {
		router.Post("list", controller.list)
	})
}

// @Summary Interview schedule
// @Tags Interview
// @Description Interviews across all candidates split into upcoming and past
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.InterviewFilter	true	"request filter body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.InterviewBoard}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/space/interview/list [post]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.InterviewFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	board, err := c.query.Interviews(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(board))
}
