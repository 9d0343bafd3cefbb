package kafka

import (
	"context"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/usgs-quake-query/internal/config"
	"github.com/couchcryptid/usgs-quake-query/internal/domain"
)

// Publisher produces in-memory query results to a Kafka topic.
// It implements query.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured result topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish writes one message carrying the raw response body.
func (p *Publisher) Publish(ctx context.Context, result domain.Result) error {
	if err := p.writer.WriteMessages(ctx, resultToMessage(result)); err != nil {
		return err
	}
	p.logger.Debug("result published", "topic", p.writer.Topic, "bytes", len(result.Body))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// resultToMessage keys the message by request URL. With the hash balancer,
// repeated identical queries land on the same partition.
func resultToMessage(result domain.Result) kafkago.Message {
	return kafkago.Message{
		Key:   []byte(result.URL),
		Value: result.Body,
		Headers: []kafkago.Header{
			{Key: "format", Value: []byte(result.Format)},
			{Key: "fetched_at", Value: []byte(result.FetchedAt.UTC().Format(time.RFC3339))},
		},
	}
}
