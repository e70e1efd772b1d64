package kafka

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const writeTimeout = 2 * time.Second

// Producer writes one Kafka message per game event, keyed by game ID so a
// game's events stay on one partition.
type Producer struct {
	writer *kafka.Writer
}

// ParseBrokers splits a comma separated broker list.
func ParseBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func NewProducer(brokers []string, topic string) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	log.Printf("[KAFKA] Publishing game events to %s on %v", topic, brokers)
	return &Producer{writer: w}
}

func newMessage(message domain.ServerMessage) (kafka.Message, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return kafka.Message{}, errors.Wrap(err, "encode event")
	}
	return kafka.Message{
		Key:   []byte(message.GameID),
		Value: payload,
		Time:  message.Timestamp,
	}, nil
}

// Publish implements game.Publisher.
func (p *Producer) Publish(ctx context.Context, message domain.ServerMessage) error {
	if p == nil || p.writer == nil {
		return nil
	}
	msg, err := newMessage(message)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "write %s event", message.Type)
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
