package tracing

// Span attribute keys for cursor steps.
const (
	AttrInput        = "nav.input"
	AttrFrom         = "nav.from"
	AttrTo           = "nav.to"
	AttrKind         = "nav.kind"
	AttrProviderType = "nav.provider_type"
	AttrChildren     = "nav.children"
)

// Span names.
const (
	SpanAdvance     = "nav.advance"
	SpanCurrentView = "nav.current_view"
)
