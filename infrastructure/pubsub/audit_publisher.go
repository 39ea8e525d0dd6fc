package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"tagtube/domain/model"
	"tagtube/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

type AuditPublisher struct {
	topic *pubsub.Topic
}

// NewAuditPublisher binds to the topic, creating it when it does not
// exist yet.
func NewAuditPublisher(ctx context.Context, client *pubsub.Client, topicName string) (*AuditPublisher, error) {
	topic := client.Topic(topicName)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check topic %s: %w", topicName, err)
	}
	if !exists {
		logger.GetLogger().WithField("topic", topicName).Info("Topic doesn't exist - creating it")
		if topic, err = client.CreateTopic(ctx, topicName); err != nil {
			return nil, fmt.Errorf("create topic %s: %w", topicName, err)
		}
	}
	return &AuditPublisher{topic: topic}, nil
}

func (p *AuditPublisher) Publish(ctx context.Context, event model.AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}

	serverID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:       payload,
		Attributes: map[string]string{"type": string(event.Type)},
	}).Get(ctx)
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{"server ID": serverID, "type": event.Type}).Debug("Message published")
	return nil
}

// Stop flushes pending messages.
func (p *AuditPublisher) Stop() {
	p.topic.Stop()
}
