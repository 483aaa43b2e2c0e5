package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/EugeneDevastator/TraVis/internal/nav"
)

// TracedCursor decorates a cursor with one span per call.
type TracedCursor struct {
	next   nav.Cursor
	tracer trace.Tracer
}

var _ nav.Cursor = (*TracedCursor)(nil)

// NewTracedCursor wraps next. A nil tracer returns next unchanged.
func NewTracedCursor(next nav.Cursor, tracer trace.Tracer) nav.Cursor {
	if tracer == nil {
		return next
	}
	return &TracedCursor{next: next, tracer: tracer}
}

// Active implements nav.Cursor.
func (c *TracedCursor) Active() nav.ProviderID {
	return c.next.Active()
}

// CurrentView implements nav.Cursor.
func (c *TracedCursor) CurrentView(ctx context.Context) (nav.NodeView, error) {
	ctx, span := c.tracer.Start(ctx, SpanCurrentView, trace.WithAttributes(
		attribute.String(AttrFrom, string(c.next.Active())),
	))
	defer span.End()

	view, err := c.next.CurrentView(ctx)
	finish(span, view, err)
	return view, err
}

// Advance implements nav.Cursor.
func (c *TracedCursor) Advance(ctx context.Context, input string) (nav.NodeView, error) {
	ctx, span := c.tracer.Start(ctx, SpanAdvance, trace.WithAttributes(
		attribute.String(AttrInput, input),
		attribute.String(AttrFrom, string(c.next.Active())),
	))
	defer span.End()

	view, err := c.next.Advance(ctx, input)
	span.SetAttributes(attribute.String(AttrTo, string(c.next.Active())))
	finish(span, view, err)
	return view, err
}

func finish(span trace.Span, view nav.NodeView, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.String(AttrKind, view.Kind.String()),
		attribute.String(AttrProviderType, string(view.ProviderType)),
		attribute.Int(AttrChildren, len(view.Children)),
	)
	span.SetStatus(codes.Ok, "")
}
