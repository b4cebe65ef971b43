package apimodels

import "ats-backend/models"

type Response struct {
	Status  string              `json:"status"`            //fail/success
	Message string              `json:"message,omitempty"` //error message
	Errors  []models.FieldError `json:"errors,omitempty"`  //every invalid field, for forms
	Data    interface{}         `json:"data,omitempty"`
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"`       // records matching the filter
	Total    int64 `json:"total,omitempty"` // records before filtering
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewValidationError(err *models.ValidationError) Response {
	return Response{
		Status:  "fail",
		Message: err.FirstMessage(),
		Errors:  err.Fields,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // records per page, 0 = everything
	Page  int `json:"page"`  // 1,2,3..
}

func (r Pagination) IsSet() bool {
	return r.Limit > 0 || r.Page > 0
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

func NewListResponse(data interface{}, rowCount, total int64) ScrollerResponse {
	resp := NewScrollerResponse(data, rowCount)
	resp.Total = total
	return resp
}
