package apiv1

import (
	"ats-backend/controllers"
	candidatequery "ats-backend/lib/candidate-query"
	csvexport "ats-backend/lib/export/csv"
	xlsexport "ats-backend/lib/export/xls"
	apimodels "ats-backend/models/api"
	candidateapimodels "ats-backend/models/api/candidate"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportApiController struct {
	controllers.BaseAPIController
	query candidatequery.Provider
	csv   csvexport.Provider
	xls   xlsexport.Provider
}

func InitExportApiRouters(app *fiber.App, query candidatequery.Provider, csv csvexport.Provider, xls xlsexport.Provider) {
	controller := exportApiController{
		query: query,
		csv:   csv,
		xls:   xls,
	}
	app.Route("export", func(router fiber.Router) {
		router.Post("csv", controller.exportCsv)
		router.Post("xls", controller.exportXls)
	})
}

// @Summary Export candidates to CSV
// @Tags Export
// @Description Export the candidates matching the list filter. Pagination is ignored
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	candidateapimodels.CandidateFilter	true	"request filter body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/export/csv [post]
func (c *exportApiController) exportCsv(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := c.query.Filtered(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidates")
	}
	data, err := c.csv.ExportCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exporting candidates to CSV")
	}
	return c.SendFile(ctx, "text/csv", csvexport.FileName(time.Now()), data.Bytes())
}

// @Summary Export candidates to Excel
// @Tags Export
// @Description Export the candidates matching the list filter. Pagination is ignored
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	candidateapimodels.CandidateFilter	true	"request filter body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/export/xls [post]
func (c *exportApiController) exportXls(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := c.query.Filtered(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidates")
	}
	data, err := c.xls.ExportCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exporting candidates to Excel")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	return c.SendFile(ctx, xlsxContentType, fileName, data.Bytes())
}
