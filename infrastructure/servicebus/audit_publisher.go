package servicebus

import (
	"context"
	"encoding/json"
	"fmt"

	"tagtube/domain/model"
	"tagtube/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

type messageSender interface {
	SendMessage(ctx context.Context, message *azservicebus.Message, options *azservicebus.SendMessageOptions) error
	Close(ctx context.Context) error
}

type AuditPublisher struct {
	sender messageSender
}

func NewAuditPublisher(client *azservicebus.Client, queue string) (*AuditPublisher, error) {
	sender, err := client.NewSender(queue, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return nil, err
	}
	return &AuditPublisher{sender: sender}, nil
}

func (p *AuditPublisher) Publish(ctx context.Context, event model.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}

	contentType := "application/json"
	subject := string(event.Type)
	message := &azservicebus.Message{
		Body:        body,
		ContentType: &contentType,
		Subject:     &subject,
	}
	if err := p.sender.SendMessage(ctx, message, nil); err != nil {
		return fmt.Errorf("send %s event: %w", event.Type, err)
	}
	return nil
}

func (p *AuditPublisher) Close(ctx context.Context) {
	if err := p.sender.Close(ctx); err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while closing sender.")
	}
}
