package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/matching"
)

// RoutingKeyMatchCompleted is the routing key for finished match requests
const RoutingKeyMatchCompleted = "match.completed"

const maxGapSkills = 5

// Publisher sends domain events
type Publisher interface {
	PublishMatchCompleted(ctx context.Context, event MatchCompleted) error
	Close() error
}

// MatchCompleted is emitted after a successful match request
type MatchCompleted struct {
	EventID      string    `json:"eventId"`
	RequestID    string    `json:"requestId,omitempty"`
	UserEmail    string    `json:"userEmail,omitempty"`
	Source       string    `json:"source"`
	SkillCount   int       `json:"skillCount"`
	JobCount     int       `json:"jobCount"`
	TopJobID     string    `json:"topJobId,omitempty"`
	TopScore     int       `json:"topScore"`
	TopGapSkills []string  `json:"topGapSkills"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewMatchCompleted summarizes a match result as an event
func NewMatchCompleted(requestID, userEmail, source string, result *matching.MatchResult) MatchCompleted {
	event := MatchCompleted{
		EventID:      uuid.NewString(),
		RequestID:    requestID,
		UserEmail:    userEmail,
		Source:       source,
		TopGapSkills: []string{},
		OccurredAt:   time.Now().UTC(),
	}
	if result == nil {
		return event
	}

	event.SkillCount = len(result.UserSkills)
	event.JobCount = len(result.Jobs)
	if len(result.Jobs) > 0 {
		event.TopJobID = result.Jobs[0].ID
		event.TopScore = result.Jobs[0].Analysis.OverallScore
	}
	for i, gap := range result.GapReport.TopMissingSkills {
		if i == maxGapSkills {
			break
		}
		event.TopGapSkills = append(event.TopGapSkills, gap.Skill)
	}
	return event
}

// NewPublisher returns an AMQP publisher, or a no-op publisher when AMQP_URL is unset
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if cfg.AMQPURL == "" {
		log.Printf("[Events] AMQP_URL not set, match events are disabled")
		return NopPublisher{}, nil
	}

	p, err := NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NopPublisher discards events
type NopPublisher struct{}

func (NopPublisher) PublishMatchCompleted(ctx context.Context, event MatchCompleted) error {
	return nil
}

func (NopPublisher) Close() error { return nil }

// AMQPPublisher publishes events to a topic exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string

	mu sync.Mutex
	ch *amqp.Channel
}

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.Printf("[Events] Publishing to exchange %s", exchange)
	return &AMQPPublisher{conn: conn, exchange: exchange, ch: ch}, nil
}

// PublishMatchCompleted publishes the event with routing key match.completed
func (p *AMQPPublisher) PublishMatchCompleted(ctx context.Context, event MatchCompleted) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// amqp channels are not safe for concurrent publishing
	err = p.ch.Publish(p.exchange, RoutingKeyMatchCompleted, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         RoutingKeyMatchCompleted,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", RoutingKeyMatchCompleted, err)
	}
	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		p.ch.Close()
	}
	return p.conn.Close()
}
