package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/candidate"
	candidatehistoryhandler "ats-backend/lib/candidate-history"
	candidatequery "ats-backend/lib/candidate-query"
	pdfexport "ats-backend/lib/export/pdf"
	filestorage "ats-backend/lib/file-storage"
	"ats-backend/middleware"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	candidateapimodels "ats-backend/models/api/candidate"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type candidateApiController struct {
	controllers.BaseAPIController
	candidates candidate.Provider
	query      candidatequery.Provider
	history    candidatehistoryhandler.Provider
	files      filestorage.Provider
}

func InitCandidateApiRouters(app *fiber.App, candidates candidate.Provider, query candidatequery.Provider,
	history candidatehistoryhandler.Provider, files filestorage.Provider) {
	controller := candidateApiController{
		candidates: candidates,
		query:      query,
		history:    history,
		files:      files,
	}
	app.Route("candidate", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("status", controller.updateStatus)
			idRouter.Put("rating", controller.setRating)
			idRouter.Put("note", controller.addNote)
			idRouter.Post("document", controller.addDocument)
			idRouter.Post("upload-doc", controller.uploadDoc)
			idRouter.Get("doc/:docID", controller.getDoc)
			idRouter.Post("interview", controller.addInterview)
			idRouter.Put("interview/:interviewID", controller.updateInterview)
			idRouter.Put("interview/:interviewID/feedback", controller.interviewFeedback)
			idRouter.Get("pdf", controller.pdf)
			idRouter.Post("history", controller.historyList)
		})
	})
}

// @Summary List
// @Tags Candidate
// @Description Search and filter candidates. row_count is the number of matches, total the collection size
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.query.List(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(result.Items, result.RowCount, result.Total))
}

// @Summary Create
// @Tags Candidate
// @Description Create a candidate in the applied stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.candidates.CreateCandidate(ctx.UserContext(), middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creating candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.CandidateConvert(rec)))
}

// @Summary Get by ID
// @Tags Candidate
// @Description Get by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.candidates.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.CandidateConvert(rec)))
}

// @Summary Change status
// @Tags Candidate
// @Description Move the candidate to another pipeline stage. The expected version may come in If-Match or in the body
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   If-Match		header		string	false	"expected candidate version"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.StatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	expected, err := expectedVersion(ctx.Get(fiber.HeaderIfMatch), payload.Version)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	rec, err := c.candidates.UpdateStatus(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Status, expected)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error changing candidate status")
	}
	ctx.Set(fiber.HeaderETag, strconv.FormatInt(rec.Version, 10))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.CandidateConvert(rec)))
}

// expectedVersion prefers the If-Match header over the body field.
func expectedVersion(ifMatch string, fromBody *int64) (*int64, error) {
	ifMatch = strings.TrimSpace(ifMatch)
	if ifMatch == "" || ifMatch == "*" {
		return fromBody, nil
	}
	ifMatch = strings.Trim(strings.TrimPrefix(ifMatch, "W/"), `"`)
	version, err := strconv.ParseInt(ifMatch, 10, 64)
	if err != nil {
		return nil, models.NewValidationError("version", "If-Match must hold the candidate version")
	}
	return &version, nil
}

// @Summary Set rating
// @Tags Candidate
// @Description Set rating
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.RatingRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/rating [put]
func (c *candidateApiController) setRating(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.RatingRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.candidates.SetRating(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Rating)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error setting candidate rating")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.CandidateConvert(rec)))
}

// @Summary Add note
// @Tags Candidate
// @Description Add note. The author is the signed in user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.NoteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.NoteView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/note [put]
func (c *candidateApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.NoteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	note, err := c.candidates.AppendNote(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error adding note")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.NoteConvert(note)))
}

// @Summary Attach document
// @Tags Candidate
// @Description Attach a document that is already stored elsewhere
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.DocumentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/document [post]
func (c *candidateApiController) addDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.DocumentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	doc, err := c.candidates.AppendDocument(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error attaching document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.DocumentConvert(doc)))
}

// @Summary Upload document
// @Tags Candidate
// @Description Upload a file to the document storage and attach it to the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param   file		formData	file 	true 	"file to upload"
// @Param   type		formData	string 	false 	"document type, other by default"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/upload-doc [post]
func (c *candidateApiController) uploadDoc(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if _, err = c.candidates.Get(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidate")
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	docType := models.DocumentType(ctx.FormValue("type", string(models.DocumentTypeOther)))
	if !docType.IsValid() {
		return c.SendError(ctx, c.GetLogger(ctx), models.NewValidationError("type", "Unknown document type"), "")
	}
	buffer, err := file.Open()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("error opening uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unable to read uploaded file"))
	}
	defer buffer.Close()

	url, err := c.files.UploadCandidateDoc(ctx.UserContext(), id, file.Filename, file.Header.Get(fiber.HeaderContentType), buffer, file.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error uploading document")
	}
	doc, err := c.candidates.AppendDocument(ctx.UserContext(), middleware.GetActor(ctx), id, candidateapimodels.DocumentData{
		Name: file.Filename,
		Type: docType,
		Url:  url,
		Size: file.Size,
	})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error attaching document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.DocumentConvert(doc)))
}

// @Summary Download document
// @Tags Candidate
// @Description Stream an uploaded document. Documents stored elsewhere are redirected to
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param   docID          		path    string  				    	true         "document ID"
// @Success 200
// @Failure 302
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/doc/{docID} [get]
func (c *candidateApiController) getDoc(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	docID, err := c.GetParam(ctx, "docID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.candidates.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidate")
	}
	for _, doc := range rec.Documents {
		if doc.ID != docID {
			continue
		}
		if _, ok := filestorage.KeyFromURL(doc.Url); !ok {
			return ctx.Redirect(doc.Url, fiber.StatusFound)
		}
		body, err := c.files.GetFile(ctx.UserContext(), doc.Url)
		if err != nil {
			if errors.Is(err, filestorage.ErrFileNotFound) {
				return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
			}
			return c.SendError(ctx, c.GetLogger(ctx), err, "Error downloading document")
		}
		defer body.Close()
		data, err := io.ReadAll(body)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Error downloading document")
		}
		return c.SendFile(ctx, fiber.MIMEOctetStream, doc.Name, data)
	}
	return c.SendError(ctx, c.GetLogger(ctx), &models.NotFoundError{Entity: "document", ID: docID}, "")
}

// @Summary Schedule interview
// @Tags Candidate
// @Description Schedule interview
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/interview [post]
func (c *candidateApiController) addInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.InterviewData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	interview, err := c.candidates.AppendInterview(ctx.UserContext(), middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error scheduling interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.InterviewConvert(interview)))
}

// @Summary Update interview
// @Tags Candidate
// @Description Update interview. Omitted fields stay unchanged
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param   interviewID          		path    string  				    	true         "interview ID"
// @Param	body body	 candidateapimodels.InterviewUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/interview/{interviewID} [put]
func (c *candidateApiController) updateInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	interviewID, err := c.GetParam(ctx, "interviewID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.InterviewUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	interview, err := c.candidates.UpdateInterview(ctx.UserContext(), middleware.GetActor(ctx), id, interviewID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.InterviewConvert(interview)))
}

// @Summary Interview feedback
// @Tags Candidate
// @Description Record the scorecard. The interview becomes completed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param   interviewID          		path    string  				    	true         "interview ID"
// @Param	body body	 candidateapimodels.FeedbackData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/interview/{interviewID}/feedback [put]
func (c *candidateApiController) interviewFeedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	interviewID, err := c.GetParam(ctx, "interviewID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.FeedbackData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	interview, err := c.candidates.SetInterviewFeedback(ctx.UserContext(), middleware.GetActor(ctx), id, interviewID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error saving interview feedback")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.InterviewConvert(interview)))
}

// @Summary Candidate card in PDF
// @Tags Candidate
// @Description Candidate card in PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/pdf [get]
func (c *candidateApiController) pdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.candidates.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidate")
	}
	body, err := pdfexport.GenerateCandidateCard(rec)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generating candidate card")
	}
	return c.SendFile(ctx, "application/pdf", fmt.Sprintf("candidate-%s.pdf", rec.ID), body)
}

// @Summary Change history
// @Tags Candidate
// @Description Change history, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.HistoryFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/history [post]
func (c *candidateApiController) historyList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.HistoryFilter
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := c.history.List(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error loading candidate history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
