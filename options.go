package snaplist

// Option configures a List at construction.
type Option func(*List)

// WithConfig replaces the default configuration. Invalid configs are
// rejected by New.
func WithConfig(cfg Config) Option {
	return func(l *List) { l.cfg = cfg }
}

// WithTemplate sets the template slots are instantiated from.
func WithTemplate(t Template) Option {
	return func(l *List) { l.pool = NewSlotPool(t) }
}

// WithRenderFunc sets the callback that fills a slot with item content.
func WithRenderFunc(fn RenderFunc) Option {
	return func(l *List) { l.render = fn }
}

// WithValueChanged sets the callback invoked with the normalized position
// whenever the scroll position, viewport or content size changes.
func WithValueChanged(fn func(normalized Vec2)) Option {
	return func(l *List) { l.valueChanged = fn }
}

// WithClock sets the clock auto-scroll animations are timed against.
func WithClock(c Clock) Option {
	return func(l *List) { l.clock = c }
}

// WithScaleCurve sets the proximity scale curve. It only takes effect when
// Config.ScaleByProximity is set.
func WithScaleCurve(c Curve) Option {
	return func(l *List) { l.scaleCurve = c }
}

// WithViewport sets the initial viewport rectangle in host coordinates.
func WithViewport(r Rect) Option {
	return func(l *List) { l.viewport = r }
}
