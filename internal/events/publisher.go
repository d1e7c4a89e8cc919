// internal/events/publisher.go
package events

import (
	"encoding/json"

	"github.com/streadway/amqp"

	"github.com/svpmedia/bulkmail-backend/internal/model"
)

const resultsQueue = "campaign_results"

// Publisher emits one summary event per completed campaign. Failed and
// skipped rows are never re-queued; the event exists so downstream
// consumers can track usage.
type Publisher interface {
	PublishCampaignResult(summary model.CampaignSummary) error
}

// AMQPPublisher publishes campaign summaries to RabbitMQ.
type AMQPPublisher struct {
	URL string
}

// PublishCampaignResult declares the queue and publishes one JSON event.
func (p *AMQPPublisher) PublishCampaignResult(summary model.CampaignSummary) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		resultsQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	body, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return ch.Publish(
		"",
		q.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
