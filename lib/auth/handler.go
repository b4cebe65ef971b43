package auth

import (
	authutils "ats-backend/lib/utils/auth-utils"
	authapimodels "ats-backend/models/api/auth"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Provider interface {
	Login(request authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	User() authapimodels.UserView
}

// StubUser is the single account the login stub knows about.
type StubUser struct {
	ID       string
	Name     string
	Email    string
	Password string
}

func NewHandler(secret string, ttl time.Duration, user StubUser) Provider {
	return &impl{
		secret: secret,
		ttl:    ttl,
		user:   user,
		now:    time.Now,
	}
}

type impl struct {
	secret string
	ttl    time.Duration
	user   StubUser
	now    func() time.Time
}

func (i impl) Login(request authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	if err := request.Validate(); err != nil {
		return authapimodels.JWTResponse{}, err
	}
	emailOk := strings.EqualFold(strings.TrimSpace(request.Email), i.user.Email)
	passwordOk := subtle.ConstantTimeCompare([]byte(request.Password), []byte(i.user.Password)) == 1
	if !emailOk || !passwordOk {
		log.WithField("email", request.Email).Warn("login rejected")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	token, expiresAt, err := authutils.GetToken(i.secret, authutils.TokenUser{
		ID:    i.user.ID,
		Name:  i.user.Name,
		Email: i.user.Email,
	}, i.now(), i.ttl)
	if err != nil {
		log.WithError(err).Error("error issuing token")
		return authapimodels.JWTResponse{}, errors.New("error issuing token")
	}
	return authapimodels.JWTResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (i impl) User() authapimodels.UserView {
	return authapimodels.UserView{
		ID:    i.user.ID,
		Name:  i.user.Name,
		Email: i.user.Email,
	}
}
