package kafka

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

type Writer interface {
	WriteJSON(ctx context.Context, v any) error
	Close() error
}

type writer struct {
	w *kgo.Writer
}

// NewWriter creates a Kafka writer for the given brokers and topic.
// Env overrides (optional):
//   - KAFKA_REQUIRED_ACKS: "none" | "one" | "all" (default: "one")
//   - KAFKA_ASYNC: "true" | "false" (default: "false")
func NewWriter(brokers, topic string) Writer {
	acksStr := strings.ToLower(strings.TrimSpace(os.Getenv("KAFKA_REQUIRED_ACKS")))
	var requiredAcks kgo.RequiredAcks
	switch acksStr {
	case "none":
		requiredAcks = kgo.RequireNone
	case "all":
		requiredAcks = kgo.RequireAll
	default:
		requiredAcks = kgo.RequireOne
	}

	w := &kgo.Writer{
		Addr:         kgo.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: requiredAcks,
		Async:        strings.EqualFold(os.Getenv("KAFKA_ASYNC"), "true"),
		BatchTimeout: 50 * time.Millisecond,
	}
	return &writer{w: w}
}

func (wr *writer) WriteJSON(ctx context.Context, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return wr.w.WriteMessages(ctx, kgo.Message{Value: b, Time: time.Now()})
}

func (wr *writer) Close() error { return wr.w.Close() }
