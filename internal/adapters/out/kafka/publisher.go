// Package kafka publishes order lifecycle events to a Kafka topic.
// Customer notifications and kitchen display systems consume the topic;
// nothing in the order flows depends on a publish succeeding.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"restaurant/internal/core/ports"

	"github.com/IBM/sarama"
)

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// sarama async producer. Order processing does not depend on broker
// acknowledgement, so delivery reports are drained in the background and
// failures are only logged.
type OrderEventPublisher struct {
	log      *slog.Logger
	topic    string
	producer sarama.AsyncProducer
}

// NewOrderEventPublisher connects an async producer to the given brokers and
// starts draining its success and error channels. The drain goroutine stops
// when ctx is cancelled or the producer is closed.
func NewOrderEventPublisher(
	ctx context.Context,
	log *slog.Logger,
	brokers []string,
	topic string,
) (*OrderEventPublisher, error) {
	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForLocal
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(brokers, producerConfig)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case sendErr, ok := <-producer.Errors():
				if !ok {
					return
				}

				log.Warn("failed to send order event", slog.String("error", sendErr.Error()))
			case success, ok := <-producer.Successes():
				if !ok {
					return
				}

				log.Debug("order event sent", slog.String("topic", success.Topic))
			case <-ctx.Done():
				return
			}
		}
	}()

	return &OrderEventPublisher{
		log:      log,
		topic:    topic,
		producer: producer,
	}, nil
}

// PublishOrderEvent enqueues the event keyed by order ID, so all events of
// one order land in the same partition in order.
func (p *OrderEventPublisher) PublishOrderEvent(_ context.Context, event ports.OrderEvent) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(bytes),
	}

	return nil
}

// Close shuts the producer down, flushing enqueued messages.
func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}
