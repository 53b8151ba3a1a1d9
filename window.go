package snaplist

import "strconv"

// RenderFunc fills a slot view with the content of the item at index.
type RenderFunc func(index int, view SlotView)

// Layout is the geometry a window update works against.
type Layout struct {
	Axis       Axis // primary (scrolling) axis
	FixedCount int  // items per line on the cross axis
	ItemSize   Vec2
	Spacing    Vec2
	Margin     Margin
	Loop       bool
	ItemCount  int
	MaxVisible int
}

// Cell returns item size plus spacing on axis a.
func (l Layout) Cell(a Axis) float32 {
	return l.ItemSize.On(a) + l.Spacing.On(a)
}

// TotalLines returns the number of lines the item count occupies.
func (l Layout) TotalLines() int {
	return totalLines(l.ItemCount, l.FixedCount)
}

// Placement returns the content-space center of the item at (line, col).
func (l Layout) Placement(line, col int) Vec2 {
	cross := l.Axis.Cross()
	var p Vec2
	primary := (float32(line)+0.5)*l.ItemSize.On(l.Axis) + float32(line)*l.Spacing.On(l.Axis)
	if !l.Loop {
		primary += l.Margin.Leading(l.Axis)
	}
	p = p.With(l.Axis, primary)
	p = p.With(cross, (float32(col)+0.5)*l.ItemSize.On(cross)+float32(col)*l.Spacing.On(cross)+l.Margin.Leading(cross))
	return p
}

// ContentSize returns the content extent for a viewport of size view.
// The cross extent never falls below the viewport.
func (l Layout) ContentSize(view Vec2) Vec2 {
	cross := l.Axis.Cross()
	lines := l.TotalLines()
	gaps := max(lines-1, 0)
	primary := l.Margin.Leading(l.Axis) + l.Margin.Trailing(l.Axis) +
		l.ItemSize.On(l.Axis)*float32(lines) + l.Spacing.On(l.Axis)*float32(gaps)
	fixed := max(l.FixedCount, 1)
	crossExtent := l.Margin.Leading(cross) + l.Margin.Trailing(cross) +
		l.ItemSize.On(cross)*float32(fixed) + l.Spacing.On(cross)*float32(fixed-1)
	var size Vec2
	size = size.With(l.Axis, primary)
	size = size.With(cross, maxf(view.On(cross), crossExtent))
	return size
}

// MaxVisibleFor returns how many slots a viewport of size view can show at
// once, counting one extra partially visible line.
func (l Layout) MaxVisibleFor(view Vec2) int {
	cell := l.Cell(l.Axis)
	if cell <= 0 {
		return 0
	}
	return (ceilToInt(view.On(l.Axis)/cell) + 1) * max(l.FixedCount, 1)
}

// Window maps the line at the leading edge of the viewport onto pool slots.
type Window struct {
	pool *SlotPool

	lastLine int
	hasLine  bool

	// Start and End bound the virtual indices of the last update.
	Start, End int
}

// NewWindow creates a window over pool.
func NewWindow(pool *SlotPool) *Window {
	return &Window{pool: pool}
}

// Invalidate forgets the last line so the next update always runs.
func (w *Window) Invalidate() { w.hasLine = false }

// Line returns the line of the last update.
func (w *Window) Line() int { return w.lastLine }

// Update re-assigns slots so that the window starting at line is covered.
// Unless force is set, an update for the line already shown does nothing.
// render is invoked once for every slot whose content changed, or for every
// mapped slot when force is set. It returns true when the window ran.
func (w *Window) Update(l Layout, line int, force bool, render RenderFunc) bool {
	if w.hasLine && line == w.lastLine && !force {
		return false
	}
	w.lastLine = line
	w.hasLine = true

	fixed := max(l.FixedCount, 1)
	start := line * fixed
	end := start + l.MaxVisible
	if !l.Loop && end > l.ItemCount {
		end = l.ItemCount
	}
	if l.ItemCount <= 0 || end < start {
		end = start
	}
	w.Start, w.End = start, end
	if listVerbose() {
		listLogger.Debug("window update", "line", line, "start", start, "end", end, "force", force)
	}

	w.pool.Partition(start, end)

	rows := (end - start + fixed - 1) / fixed
walk:
	for i := 0; i < rows; i++ {
		for j := 0; j < fixed; j++ {
			v := start + i*fixed + j
			if v >= end {
				break walk
			}
			if s, ok := w.pool.Lookup(v); ok {
				if force {
					s.ActualIndex = WrapIndex(v, l.ItemCount)
					s.Position = l.Placement(line+i, j)
					s.View.SetPosition(s.Position)
					s.pendingRender = true
				}
				continue
			}
			s, ok := w.pool.Dequeue()
			if !ok {
				listLogger.Warn("slot pool exhausted", "virtual", v, "slots", w.pool.Len(), "window", end-start)
				break walk
			}
			s.VirtualIndex = v
			s.ActualIndex = WrapIndex(v, l.ItemCount)
			s.Position = l.Placement(line+i, j)
			s.Active = true
			s.pendingRender = true
			s.View.SetPosition(s.Position)
		}
	}

	for _, s := range w.pool.Slots() {
		s.View.SetVisible(s.Active)
	}
	for _, s := range w.pool.Slots() {
		if !s.pendingRender {
			continue
		}
		s.pendingRender = false
		if n, ok := s.View.(Namer); ok {
			n.SetName(strconv.Itoa(s.ActualIndex))
		}
		if render != nil {
			render(s.ActualIndex, s.View)
		}
	}
	return true
}
