// Package eventbridge publishes menu domain events to an EventBridge bus
// for downstream consumers (the notification Lambdas, audit pipelines).
package eventbridge

import (
	"context"
	"encoding/json"

	"mentra-backend/application/ports"
	"mentra-backend/domain/events"
	pkgerrors "mentra-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

const eventSource = "mentra.menu"

// Publisher implements ports.EventBus on EventBridge
type Publisher struct {
	client  *eventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewPublisher creates a new Publisher
func NewPublisher(client *eventbridge.Client, busName string, logger *zap.Logger) ports.EventBus {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

// Publish sends one domain event to the bus.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to marshal event")
	}

	result, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{{
			EventBusName: aws.String(p.busName),
			Source:       aws.String(eventSource),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(detail)),
		}},
	})
	if err != nil {
		return pkgerrors.NewExternalError("eventbridge", err)
	}
	if result.FailedEntryCount > 0 {
		p.logger.Warn("eventbridge rejected event",
			zap.String("eventType", event.GetEventType()),
			zap.String("tenantID", event.GetTenantID()),
			zap.Int32("failedEntries", result.FailedEntryCount),
		)
	}

	p.logger.Debug("event published",
		zap.String("eventType", event.GetEventType()),
		zap.String("tenantID", event.GetTenantID()),
		zap.String("aggregateID", event.GetAggregateID()),
	)
	return nil
}

// NopPublisher drops every event. Used in development when no bus is
// configured.
type NopPublisher struct{}

// NewNopPublisher creates a publisher that discards events
func NewNopPublisher() ports.EventBus {
	return NopPublisher{}
}

// Publish implements ports.EventBus
func (NopPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return nil
}
