package observability

import (
	"context"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer wraps X-Ray subsegment bookkeeping for the read and write
// paths. Outside a sampled request (local development, tests) there is
// no parent segment, so every method degrades to a pass-through.
type Tracer struct {
	serviceName string
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string) *Tracer {
	return &Tracer{serviceName: serviceName}
}

// Trace runs fn inside a subsegment named after the operation. The
// segment records fn's error and duration; without an active parent
// segment fn runs untraced.
func (t *Tracer) Trace(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, seg := xray.BeginSubsegment(ctx, t.serviceName+"."+name)
	if seg == nil {
		return fn(ctx)
	}
	err := fn(ctx)
	seg.Close(err)
	return err
}

// AddAnnotation indexes a key/value pair on the active segment so
// traces can be filtered by tenant or operation.
func (t *Tracer) AddAnnotation(ctx context.Context, key, value string) {
	if seg := xray.GetSegment(ctx); seg != nil {
		_ = seg.AddAnnotation(key, value)
	}
}
