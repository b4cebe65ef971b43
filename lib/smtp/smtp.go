package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SendEMail(to, subject, message string) error
	IsConfigured() bool
}

func NewSender(user, password, host, port, sender string, tlsEnabled bool) Provider {
	if sender == "" {
		sender = user
	}
	return &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		sender:     sender,
		tlsEnabled: tlsEnabled,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	sender     string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to).WithField("subject", subject)
	if !i.IsConfigured() {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMessage(i.sender, to, subject, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.sender, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.sender, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("error sending email")
		return errors.Wrap(err, "error sending email")
	}
	logger.Info("email sent")
	return nil
}

func buildMessage(from, to, subject, message string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		from, to, subject, strings.ReplaceAll(message, "\n", "\r\n"))
}
