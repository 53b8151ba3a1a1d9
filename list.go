package snaplist

import "fmt"

// List is a virtualized, optionally looping scroll list. It maps a scroll
// position onto a small pool of recycled slot views and drives the
// position with drag, inertia, elastic bounds and snap-to-item animations.
//
// A List is not safe for concurrent use; call it from the frame loop.
type List struct {
	cfg     Config
	physics Physics

	pool   *SlotPool
	window *Window

	render       RenderFunc
	valueChanged func(Vec2)
	scaleCurve   Curve
	clock        Clock

	viewport    Rect
	state       ScrollState
	contentSize Vec2
	maxVisible  int

	initialized    bool
	rebuildPending bool
	pointerDrag    bool

	prevOffset  Vec2
	prevView    Vec2
	prevContent Vec2
}

// New creates a list. The first rebuild happens on the Tick after both a
// template and a non-empty viewport are known.
func New(opts ...Option) (*List, error) {
	l := &List{
		cfg:        DefaultConfig(),
		clock:      SystemClock{},
		scaleCurve: DefaultScaleCurve(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if err := l.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new list: %w", err)
	}
	if l.pool == nil {
		l.pool = NewSlotPool(nil)
	}
	l.window = NewWindow(l.pool)
	l.physics = PhysicsFromConfig(l.cfg)
	if l.viewport.W > 0 && l.viewport.H > 0 {
		l.rebuildPending = true
	}
	return l, nil
}

// Config returns the active configuration.
func (l *List) Config() Config { return l.cfg }

// SetConfig swaps the configuration and rebuilds on the next Tick.
// Switching orientation resets the scroll state.
func (l *List) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("set config: %w", err)
	}
	if cfg.Orientation != l.cfg.Orientation {
		l.state = ScrollState{}
		l.pointerDrag = false
	}
	l.cfg = cfg
	l.physics = PhysicsFromConfig(cfg)
	l.ResetAndRebuild()
	return nil
}

// SetRenderFunc replaces the render callback.
func (l *List) SetRenderFunc(fn RenderFunc) { l.render = fn }

// SetValueChanged replaces the value-changed callback.
func (l *List) SetValueChanged(fn func(Vec2)) { l.valueChanged = fn }

// Viewport returns the viewport rectangle in host coordinates.
func (l *List) Viewport() Rect { return l.viewport }

// SetViewport moves or resizes the viewport. A size change schedules a
// rebuild once the size is non-empty.
func (l *List) SetViewport(r Rect) {
	resized := r.W != l.viewport.W || r.H != l.viewport.H
	l.viewport = r
	if resized && r.W > 0 && r.H > 0 {
		l.ResetAndRebuild()
	}
}

// itemSize resolves the configured item size against the template.
func (l *List) itemSize() Vec2 {
	size := l.cfg.ItemSize
	if t := l.pool.Template(); t != nil {
		natural := t.NaturalSize()
		if size.X == 0 {
			size.X = natural.X
		}
		if size.Y == 0 {
			size.Y = natural.Y
		}
	}
	return size
}

// Layout returns the geometry the window engine currently works against.
func (l *List) Layout() Layout {
	return Layout{
		Axis:       l.cfg.Axis(),
		FixedCount: l.cfg.FixedCount,
		ItemSize:   l.itemSize(),
		Spacing:    l.cfg.Spacing,
		Margin:     l.cfg.Margin,
		Loop:       l.cfg.Loop,
		ItemCount:  l.cfg.ItemCount,
		MaxVisible: l.maxVisible,
	}
}

func (l *List) extent() Extent {
	a := l.cfg.Axis()
	return Extent{
		View:    l.viewport.Size().On(a),
		Content: l.contentSize.On(a),
		Loop:    l.cfg.Loop,
	}
}

// ItemCount returns the number of logical items.
func (l *List) ItemCount() int { return l.cfg.ItemCount }

// Loop reports whether the list wraps around.
func (l *List) Loop() bool { return l.cfg.Loop }

// MaxVisible returns the window size in slots.
func (l *List) MaxVisible() int { return l.maxVisible }

// TotalLines returns the number of lines the items occupy.
func (l *List) TotalLines() int { return totalLines(l.cfg.ItemCount, l.cfg.FixedCount) }

// ContentSize returns the content extent.
func (l *List) ContentSize() Vec2 { return l.contentSize }

// Initialized reports whether the first rebuild has run.
func (l *List) Initialized() bool { return l.initialized }

// State returns a copy of the scroll state.
func (l *List) State() ScrollState { return l.state }

// Offset returns the scroll position.
func (l *List) Offset() Vec2 { return l.state.Offset }

// Phase returns the scroll machine's current phase.
func (l *List) Phase() Phase { return l.state.Phase }

// Slots returns every slot in the pool. The slice must not be modified.
func (l *List) Slots() []*Slot { return l.pool.Slots() }

// ActiveCount returns the number of slots currently showing an item.
func (l *List) ActiveCount() int { return l.pool.ActiveCount() }

// ContentOrigin returns where content-space (0, 0) lands in host
// coordinates. Hosts draw a slot at ContentOrigin().Add(slot.Position).
func (l *List) ContentOrigin() Vec2 {
	return l.viewport.Min().Sub(l.state.Offset)
}

// CurrentLine returns the line at the leading edge of the viewport.
func (l *List) CurrentLine() int {
	a := l.cfg.Axis()
	return CurrentLine(l.state.Offset.On(a), l.Layout().Cell(a), l.cfg.Loop, l.cfg.Margin.Leading(a))
}

// SetItemCount changes the number of logical items. Before the first
// rebuild the value is only stored.
func (l *List) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	l.cfg.ItemCount = n
	if !l.initialized || l.pool.Template() == nil {
		return
	}
	want := l.maxVisible
	if !l.cfg.Loop {
		want = min(n, l.maxVisible)
	}
	l.grow(want)
	l.refreshBounds()
	l.Refresh()
}

// refreshBounds recomputes the content size from the current layout.
func (l *List) refreshBounds() {
	l.contentSize = l.Layout().ContentSize(l.viewport.Size())
}

// SetLoop switches wrap-around on or off.
func (l *List) SetLoop(loop bool) {
	l.cfg.Loop = loop
	if !l.initialized || l.pool.Template() == nil {
		return
	}
	if loop {
		l.grow(l.maxVisible)
	}
	l.Refresh()
}

// SetTemplate destroys every slot and switches to t. Item size falls back to
// t's natural size on axes the config leaves at zero. The pool is refilled
// on the next Tick.
func (l *List) SetTemplate(t Template) {
	l.pool.SetTemplate(t)
	l.window.Invalidate()
	listLogger.Debug("template replaced", "itemSize", l.itemSize())
	l.ResetAndRebuild()
}

func (l *List) grow(n int) {
	if created := l.pool.EnsureCapacity(n); created > 0 {
		listLogger.Debug("slot pool grown", "created", created, "slots", l.pool.Len())
	}
}

// Refresh re-runs the window and re-renders every mapped slot.
func (l *List) Refresh() {
	if !l.initialized || l.pool.Template() == nil {
		return
	}
	l.window.Update(l.Layout(), l.CurrentLine(), true, l.render)
	l.applyScale()
}

// ResetAndRebuild recomputes the window size and re-windows everything.
// It runs at the start of the next Tick so that a viewport resized in the
// same frame is measured at its final size.
func (l *List) ResetAndRebuild() {
	l.rebuildPending = true
}

func (l *List) rebuild() {
	view := l.viewport.Size()
	if l.pool.Template() == nil || view.X <= 0 || view.Y <= 0 {
		listLogger.Debug("rebuild skipped", "hasTemplate", l.pool.Template() != nil, "view", view)
		return
	}
	lay := l.Layout()
	l.maxVisible = lay.MaxVisibleFor(view)
	l.initialized = true
	l.window.Invalidate()
	listLogger.Debug("rebuild", "maxVisible", l.maxVisible, "items", l.cfg.ItemCount, "loop", l.cfg.Loop, "view", view)
	l.SetItemCount(l.cfg.ItemCount)
}

// ScrollTo animates to the item at index over duration seconds. Nearest
// settles on the line closest to the current position. Looping lists take
// the shortest way around.
func (l *List) ScrollTo(index int, duration float32) {
	if !l.initialized {
		return
	}
	l.state = l.physics.ScrollTo(l.state, l.targetFor(index), duration, l.clock.Now())
}

// ScrollBy animates lines forward (positive) or backward from the nearest
// line using the attach snap duration.
func (l *List) ScrollBy(lines int) {
	if !l.initialized {
		return
	}
	line := l.nearestLine(l.state.Offset.On(l.cfg.Axis())) + lines
	l.ScrollTo(line*l.cfg.FixedCount, l.cfg.Snap.Duration)
}

// BackTop jumps to the first item on the next Tick.
func (l *List) BackTop() {
	l.ScrollTo(0, 0)
}

// StopMovement discards any inertial velocity.
func (l *List) StopMovement() {
	l.state.Velocity = Vec2{}
	l.state.Phase = l.physics.phase(l.state, l.extent())
}

// Velocity returns the scroll velocity in units per second.
func (l *List) Velocity() Vec2 { return l.state.Velocity }

// SetVelocity replaces the scroll velocity, for flings driven by the host.
func (l *List) SetVelocity(v Vec2) {
	a := l.cfg.Axis()
	l.state.Velocity = Vec2{}.With(a, v.On(a))
	l.state.Phase = l.physics.phase(l.state, l.extent())
}

func (l *List) nearestLine(pos float32) int {
	a := l.cfg.Axis()
	cell := l.Layout().Cell(a)
	return CurrentLine(roundf(pos)+cell*0.5, cell, l.cfg.Loop, l.cfg.Margin.Leading(a))
}

// targetFor resolves an item index (or Nearest) to a scroll position.
func (l *List) targetFor(index int) float32 {
	a := l.cfg.Axis()
	lay := l.Layout()
	cell := lay.Cell(a)
	margin := l.cfg.Margin.Leading(a)
	fixed := max(l.cfg.FixedCount, 1)

	var line int
	switch {
	case index == Nearest:
		line = l.nearestLine(l.state.Offset.On(a))
	case l.cfg.Loop:
		target := WrapIndex(index, l.cfg.ItemCount) / fixed
		line = ClosestLine(target, l.CurrentLine(), lay.TotalLines())
	default:
		line = clampInt(index, 0, max(l.cfg.ItemCount-1, 0)) / fixed
	}

	if l.cfg.Loop {
		return linePosition(line, cell, true, margin)
	}
	if line <= 0 {
		return 0
	}
	return clampf(linePosition(line, cell, false, margin), 0, l.extent().MaxScroll())
}

func (l *List) nearestTarget(float32) float32 { return l.targetFor(Nearest) }

// BeginDrag starts a drag at cursor, in viewport-local coordinates.
func (l *List) BeginDrag(cursor Vec2) {
	if !l.initialized {
		return
	}
	l.state = l.physics.BeginDrag(l.state, cursor)
}

// Drag follows the cursor.
func (l *List) Drag(cursor Vec2) {
	if !l.initialized {
		return
	}
	l.state = l.physics.Drag(l.state, cursor, l.extent())
}

// EndDrag releases the content, which continues with its drag velocity.
func (l *List) EndDrag() {
	l.state = l.physics.EndDrag(l.state, l.extent())
}

// NormalizedPosition reports the scroll position per axis as a fraction of
// the scrollable range. Looping lists report the position within one cycle.
// Reading it refreshes the content bounds.
func (l *List) NormalizedPosition() Vec2 {
	if l.initialized {
		l.refreshBounds()
	}
	var n Vec2
	for _, a := range [...]Axis{AxisX, AxisY} {
		n = n.With(a, l.normalized(a))
	}
	return n
}

func (l *List) normalized(a Axis) float32 {
	pos := l.state.Offset.On(a)
	if a == l.cfg.Axis() && l.cfg.Loop {
		cycle := l.cycleLength()
		if cycle <= 0 {
			return 0
		}
		r := pos - cycle*float32(floorToInt(pos/cycle))
		return r / cycle
	}
	hidden := l.contentSize.On(a) - l.viewport.Size().On(a)
	if hidden <= 0 {
		if pos > 0 {
			return 1
		}
		return 0
	}
	return pos / hidden
}

func (l *List) cycleLength() float32 {
	a := l.cfg.Axis()
	return float32(l.TotalLines()) * l.Layout().Cell(a)
}

// SetNormalizedPosition moves the primary axis to the given fraction of the
// scrollable range. Cross-axis values are ignored.
func (l *List) SetNormalizedPosition(n Vec2) {
	if l.initialized {
		l.refreshBounds()
	}
	a := l.cfg.Axis()
	var span float32
	if l.cfg.Loop {
		span = l.cycleLength()
	} else {
		span = maxf(0, l.contentSize.On(a)-l.viewport.Size().On(a))
	}
	pos := n.On(a) * span
	if absf32(pos-l.state.Offset.On(a)) > 0.01 {
		l.state.Offset = l.state.Offset.With(a, pos)
		l.state.Velocity = l.state.Velocity.With(a, 0)
		l.state.Phase = l.physics.phase(l.state, l.extent())
	}
}

// Tick advances the list by dt seconds: deferred rebuilds run first, then
// the scroll machine steps, and when anything moved the window is updated.
func (l *List) Tick(dt float32) {
	if l.rebuildPending {
		l.rebuildPending = false
		l.rebuild()
	}
	if !l.initialized {
		return
	}

	a := l.cfg.Axis()
	ext := l.extent()
	l.state = l.physics.Step(l.state, dt, l.clock.Now(), ext, l.nearestTarget)
	l.state = l.physics.TrackDrag(l.state, l.prevOffset.On(a), dt)

	view := l.viewport.Size()
	if l.state.Offset != l.prevOffset || view != l.prevView || l.contentSize != l.prevContent {
		if l.valueChanged != nil {
			l.valueChanged(l.NormalizedPosition())
		}
		l.prevOffset = l.state.Offset
		l.prevView = view
		l.prevContent = l.contentSize

		l.window.Update(l.Layout(), l.CurrentLine(), false, l.render)
		l.applyScale()
	}
}

// applyScale scales active slots by their distance from the viewport
// center along the primary axis.
func (l *List) applyScale() {
	if !l.cfg.ScaleByProximity || l.scaleCurve == nil {
		return
	}
	a := l.cfg.Axis()
	view := l.viewport.Size().On(a)
	if view <= 0 {
		return
	}
	pos := l.state.Offset.On(a)
	for _, s := range l.pool.Slots() {
		if !s.Active {
			continue
		}
		center := s.Position.On(a) - pos - view*0.5
		s.View.SetScale(l.scaleCurve(absf32(center) / view))
	}
}

// Close destroys every slot. The list can be rebuilt with ResetAndRebuild.
func (l *List) Close() {
	l.pool.ReleaseAll()
	l.window.Invalidate()
	l.initialized = false
	l.rebuildPending = false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
