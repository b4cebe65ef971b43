package event

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

type Type string

const (
	TypeCandidateCreated   Type = "candidate.created"
	TypeStatusChanged      Type = "candidate.status_changed"
	TypeNoteAdded          Type = "candidate.note_added"
	TypeDocumentAdded      Type = "candidate.document_added"
	TypeRatingChanged      Type = "candidate.rating_changed"
	TypeInterviewScheduled Type = "interview.scheduled"
	TypeInterviewUpdated   Type = "interview.updated"
	TypeInterviewFeedback  Type = "interview.feedback"
	TypeInterviewReminded  Type = "interview.reminded"
)

const DefaultExchange = "ats.events"

type Event struct {
	Type        Type           `json:"event_type"`
	CandidateID string         `json:"candidate_id"`
	ActorID     string         `json:"actor_id,omitempty"`
	Version     int64          `json:"version"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type impl struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	enabled  bool
}

// NewPublisher connects to the broker and declares a durable topic exchange.
// An empty uri gives a publisher that drops every event.
func NewPublisher(uri, exchange string) (Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if uri == "" {
		log.Warn("rabbit uri is empty, event publishing is disabled")
		return &impl{exchange: exchange}, nil
	}

	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to rabbit")
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open rabbit channel")
	}
	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, errors.Wrap(err, "failed to declare exchange")
	}
	log.WithField("exchange", exchange).Info("event publisher initialized")
	return &impl{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		enabled:  true,
	}, nil
}

func (p *impl) Publish(ctx context.Context, event Event) error {
	if !p.enabled {
		log.WithField("event_type", event.Type).Debug("event publishing disabled, skipping event")
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx,
		p.exchange,         // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
			Headers: amqp.Table{
				"event_type":   string(event.Type),
				"candidate_id": event.CandidateID,
			},
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to publish event")
	}
	return nil
}

func (p *impl) Close() error {
	if !p.enabled {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			log.WithError(err).Warn("error closing rabbit channel")
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NewNoop returns a publisher that accepts and drops everything.
func NewNoop() Publisher {
	return &impl{exchange: DefaultExchange}
}
