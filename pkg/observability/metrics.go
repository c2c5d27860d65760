package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics publishes operational counters to CloudWatch. Publishing is
// best effort: a failed put is logged and dropped, never propagated.
type Metrics struct {
	client    *cloudwatch.Client
	namespace string
	logger    *zap.Logger
	enabled   bool
}

// NewMetrics creates a metrics publisher. A nil client disables publishing.
func NewMetrics(client *cloudwatch.Client, namespace string, logger *zap.Logger) *Metrics {
	return &Metrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
		enabled:   client != nil,
	}
}

// CountRequest records one request for an operation with its outcome.
func (m *Metrics) CountRequest(ctx context.Context, operation string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.put(ctx, "RequestCount", 1, types.StandardUnitCount, map[string]string{
		"Operation": operation,
		"Outcome":   outcome,
	})
}

// RecordLatency records the duration of an operation.
func (m *Metrics) RecordLatency(ctx context.Context, operation string, elapsed time.Duration) {
	m.put(ctx, "Latency", float64(elapsed.Milliseconds()), types.StandardUnitMilliseconds, map[string]string{
		"Operation": operation,
	})
}

// CountReadRepair records one ordering read-repair persist.
func (m *Metrics) CountReadRepair(ctx context.Context, tenantID string) {
	m.put(ctx, "OrderingReadRepair", 1, types.StandardUnitCount, map[string]string{
		"Tenant": tenantID,
	})
}

func (m *Metrics) put(ctx context.Context, name string, value float64, unit types.StandardUnit, dims map[string]string) {
	if !m.enabled {
		return
	}

	dimensions := make([]types.Dimension, 0, len(dims))
	for k, v := range dims {
		dimensions = append(dimensions, types.Dimension{
			Name:  aws.String(k),
			Value: aws.String(v),
		})
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{{
			MetricName: aws.String(name),
			Value:      aws.Float64(value),
			Unit:       unit,
			Dimensions: dimensions,
			Timestamp:  aws.Time(time.Now()),
		}},
	})
	if err != nil {
		m.logger.Warn("failed to publish metric",
			zap.String("metric", name),
			zap.Error(err),
		)
	}
}
