package initializers

import (
	"ats-backend/config"
	"ats-backend/lib/cache"
	"ats-backend/lib/event"

	log "github.com/sirupsen/logrus"
)

func InitCache() cache.Provider {
	return cache.NewRedis(config.Conf.Redis.URL, config.Conf.Redis.TTL)
}

// InitEvents never fails the start: without a broker events are dropped.
func InitEvents() event.Publisher {
	publisher, err := event.NewPublisher(config.Conf.Rabbit.URI, config.Conf.Rabbit.Exchange)
	if err != nil {
		log.WithError(err).Error("error connecting to RabbitMQ, lifecycle events are disabled")
		return event.NewNoop()
	}
	return publisher
}
