package authapimodels

import (
	"ats-backend/models"
	"net/mail"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	verr := &models.ValidationError{}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		verr.Add("email", "Valid email is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		verr.Add("password", "Password is required")
	}
	return verr.OrNil()
}
