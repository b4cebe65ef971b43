package initializers

import (
	"ats-backend/config"
	"ats-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() smtp.Provider {
	sender := smtp.NewSender(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.Sender, *config.Conf.Smtp.TLSEnabled)
	if !sender.IsConfigured() {
		log.Warn("SMTP is not configured, interview reminders are disabled")
	}
	return sender
}
