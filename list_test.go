package snaplist_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/snaplist"
)

// countingTemplate records how many views it has created.
type countingTemplate struct {
	size    snaplist.Vec2
	created []*snaplist.RectSlot
}

func (c *countingTemplate) Instantiate() snaplist.SlotView {
	v := snaplist.NewRectSlot()
	c.created = append(c.created, v)
	return v
}

func (c *countingTemplate) NaturalSize() snaplist.Vec2 { return c.size }

type fixture struct {
	list     *snaplist.List
	clock    *snaplist.ManualClock
	template *countingTemplate
	rendered map[int]int
}

func newFixture(t *testing.T, cfg snaplist.Config, size snaplist.Vec2, viewport snaplist.Rect) *fixture {
	t.Helper()
	f := &fixture{
		clock:    snaplist.NewManualClock(time.Unix(1000, 0)),
		template: &countingTemplate{size: size},
		rendered: make(map[int]int),
	}
	l, err := snaplist.New(
		snaplist.WithConfig(cfg),
		snaplist.WithTemplate(f.template),
		snaplist.WithViewport(viewport),
		snaplist.WithClock(f.clock),
		snaplist.WithRenderFunc(func(index int, view snaplist.SlotView) {
			f.rendered[index]++
		}),
	)
	require.NoError(t, err)
	f.list = l
	return f
}

func verticalConfig(items int) snaplist.Config {
	cfg := snaplist.DefaultConfig()
	cfg.ItemCount = items
	return cfg
}

// newVertical builds a 100x200 vertical list of 100x50 items.
func newVertical(t *testing.T, items int) *fixture {
	return newFixture(t, verticalConfig(items), snaplist.Vec2{X: 100, Y: 50}, snaplist.Rect{W: 100, H: 200})
}

func (f *fixture) tick(frames int) {
	for i := 0; i < frames; i++ {
		f.clock.Advance(time.Second / 60)
		f.list.Tick(1.0 / 60)
	}
}

func activeIndices(l *snaplist.List) map[int]int {
	m := make(map[int]int)
	for _, s := range l.Slots() {
		if s.Active {
			m[s.VirtualIndex] = s.ActualIndex
		}
	}
	return m
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := snaplist.DefaultConfig()
	cfg.FixedCount = 0
	_, err := snaplist.New(snaplist.WithConfig(cfg))
	require.Error(t, err)
}

func TestFirstTickBuildsWindow(t *testing.T) {
	f := newVertical(t, 20)
	require.False(t, f.list.Initialized())
	require.Empty(t, f.template.created)

	f.tick(1)

	require.True(t, f.list.Initialized())
	require.Equal(t, 5, f.list.MaxVisible())
	require.Len(t, f.template.created, 5)
	require.Equal(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4}, activeIndices(f.list))
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}, f.rendered)
	require.Equal(t, snaplist.Vec2{X: 100, Y: 1000}, f.list.ContentSize())
}

func TestPoolSizing(t *testing.T) {
	for _, view := range []float32{100, 200, 333} {
		for _, cell := range []float32{30, 50, 77} {
			for _, items := range []int{0, 2, 10, 100} {
				for _, loop := range []bool{false, true} {
					cfg := verticalConfig(items)
					cfg.Loop = loop
					f := newFixture(t, cfg, snaplist.Vec2{X: 100, Y: cell}, snaplist.Rect{W: 100, H: view})
					f.tick(1)

					maxVisible := int(math.Ceil(float64(view/cell))) + 1
					want := min(items, maxVisible)
					if loop {
						want = maxVisible
					}
					require.Equal(t, maxVisible, f.list.MaxVisible(), "view %v cell %v", view, cell)
					require.Len(t, f.list.Slots(), want, "view %v cell %v items %d loop %v", view, cell, items, loop)
					bound := min(maxVisible, items)
					if loop && items > 0 {
						bound = maxVisible
					}
					require.LessOrEqual(t, f.list.ActiveCount(), bound)
				}
			}
		}
	}
}

func TestRebuildUsesFinalViewport(t *testing.T) {
	cfg := verticalConfig(50)
	l, err := snaplist.New(
		snaplist.WithConfig(cfg),
		snaplist.WithTemplate(snaplist.RectTemplate(snaplist.Vec2{X: 100, Y: 50})),
	)
	require.NoError(t, err)

	l.Tick(1.0 / 60)
	require.False(t, l.Initialized(), "no viewport yet")

	l.SetViewport(snaplist.Rect{W: 100, H: 200})
	l.SetViewport(snaplist.Rect{W: 100, H: 400})
	require.False(t, l.Initialized())

	l.Tick(1.0 / 60)
	require.True(t, l.Initialized())
	require.Equal(t, 9, l.MaxVisible())
	require.Len(t, l.Slots(), 9)
}

func TestScrollToItem(t *testing.T) {
	f := newVertical(t, 20)
	f.tick(1)

	f.list.ScrollTo(3, 0.2)
	require.Equal(t, snaplist.PhaseAutoScrolling, f.list.Phase())
	f.tick(30)

	require.Equal(t, snaplist.Vec2{Y: 150}, f.list.Offset())
	require.Equal(t, snaplist.PhaseIdle, f.list.Phase())
	require.Equal(t, 3, f.list.CurrentLine())
	require.Equal(t, map[int]int{3: 3, 4: 4, 5: 5, 6: 6, 7: 7}, activeIndices(f.list))
	require.Equal(t, snaplist.Vec2{Y: -150}, f.list.ContentOrigin())
}

func TestScrollToClampsAtEnd(t *testing.T) {
	f := newVertical(t, 10)
	f.tick(1)

	f.list.ScrollTo(9, 0)
	f.tick(1)
	require.Equal(t, float32(300), f.list.Offset().Y)

	f.list.ScrollTo(-4, 0)
	f.tick(1)
	require.Zero(t, f.list.Offset().Y)
}

func TestScrollToLoopTakesShortestWay(t *testing.T) {
	cfg := verticalConfig(10)
	cfg.Loop = true
	f := newFixture(t, cfg, snaplist.Vec2{X: 100, Y: 50}, snaplist.Rect{W: 100, H: 200})
	f.tick(1)

	f.list.ScrollTo(9, 0)
	f.tick(1)
	require.Equal(t, float32(-50), f.list.Offset().Y)
	require.Equal(t, map[int]int{-1: 9, 0: 0, 1: 1, 2: 2, 3: 3}, activeIndices(f.list))
	require.InDelta(t, 0.9, f.list.NormalizedPosition().Y, 1e-5)
}

func TestScrollByAndBackTop(t *testing.T) {
	f := newVertical(t, 20)
	f.tick(1)

	f.list.ScrollBy(2)
	f.tick(30)
	require.Equal(t, float32(100), f.list.Offset().Y)

	f.list.ScrollBy(1)
	f.tick(30)
	require.Equal(t, float32(150), f.list.Offset().Y)

	f.list.BackTop()
	f.tick(1)
	require.Zero(t, f.list.Offset().Y)
}

func TestNearestKeepsLeadingMargin(t *testing.T) {
	cfg := verticalConfig(20)
	cfg.Margin = snaplist.Margin{Top: 12, Bottom: 12}
	f := newFixture(t, cfg, snaplist.Vec2{X: 100, Y: 50}, snaplist.Rect{W: 100, H: 200})
	f.tick(1)

	f.list.ScrollTo(snaplist.Nearest, 0)
	f.tick(1)
	require.Zero(t, f.list.Offset().Y)

	f.list.ScrollTo(2, 0)
	f.tick(1)
	require.Equal(t, float32(112), f.list.Offset().Y)
}

func TestNormalizedPosition(t *testing.T) {
	f := newVertical(t, 10)
	f.tick(1)

	f.list.ScrollTo(3, 0)
	f.tick(1)
	require.Equal(t, snaplist.Vec2{Y: 0.5}, f.list.NormalizedPosition())

	f.list.SetNormalizedPosition(snaplist.Vec2{X: 0.7, Y: 1})
	require.Equal(t, snaplist.Vec2{Y: 300}, f.list.Offset())

	f.list.SetNormalizedPosition(snaplist.Vec2{})
	require.Zero(t, f.list.Offset().Y)
}

func TestNormalizedPositionRefreshesBounds(t *testing.T) {
	f := newVertical(t, 10)
	f.tick(1)
	f.list.ScrollTo(3, 0)
	f.tick(1)
	require.Equal(t, snaplist.Vec2{Y: 0.5}, f.list.NormalizedPosition())

	cfg := f.list.Config()
	cfg.ItemSize = snaplist.Vec2{X: 100, Y: 100}
	require.NoError(t, f.list.SetConfig(cfg))
	require.Equal(t, snaplist.Vec2{Y: 0.1875}, f.list.NormalizedPosition())
	require.Equal(t, float32(1000), f.list.ContentSize().Y)
}

func TestValueChanged(t *testing.T) {
	f := newVertical(t, 10)
	var calls []snaplist.Vec2
	f.list.SetValueChanged(func(n snaplist.Vec2) { calls = append(calls, n) })

	f.tick(1)
	require.Len(t, calls, 1, "first layout reports the position")

	f.tick(3)
	require.Len(t, calls, 1, "idle ticks stay quiet")

	f.list.ScrollTo(9, 0)
	f.tick(1)
	require.Len(t, calls, 2)
	require.Equal(t, snaplist.Vec2{Y: 1}, calls[1])
}

func TestRenderOnlyNewItems(t *testing.T) {
	f := newVertical(t, 20)
	f.tick(1)
	clear(f.rendered)

	f.list.ScrollTo(1, 0)
	f.tick(1)
	require.Equal(t, map[int]int{5: 1}, f.rendered)

	clear(f.rendered)
	f.list.Refresh()
	require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1}, f.rendered)
}

func TestSetItemCountGrowsPool(t *testing.T) {
	f := newVertical(t, 2)
	f.tick(1)
	require.Len(t, f.list.Slots(), 2)

	f.list.SetItemCount(50)
	require.Len(t, f.list.Slots(), 5)
	require.Equal(t, 5, f.list.ActiveCount())
	require.Equal(t, float32(2500), f.list.ContentSize().Y)

	f.list.SetItemCount(1)
	require.Len(t, f.list.Slots(), 5, "pool never shrinks")
	require.Equal(t, 1, f.list.ActiveCount())
}

func TestShrinkLoopedListRemapsIndices(t *testing.T) {
	cfg := verticalConfig(10)
	cfg.Loop = true
	f := newFixture(t, cfg, snaplist.Vec2{X: 100, Y: 50}, snaplist.Rect{W: 100, H: 200})
	f.tick(1)
	f.list.SetNormalizedPosition(snaplist.Vec2{Y: 0.7})
	f.tick(1)
	require.Equal(t, 7, f.list.CurrentLine())
	require.Equal(t, 5, f.list.ActiveCount())

	clear(f.rendered)
	f.list.SetItemCount(4)
	require.NotEmpty(t, f.rendered)
	for index := range f.rendered {
		require.True(t, index >= 0 && index < 4, "rendered index %d out of range", index)
	}
	active := activeIndices(f.list)
	require.NotEmpty(t, active)
	for virtual, actual := range active {
		require.Equal(t, snaplist.WrapIndex(virtual, 4), actual, "slot virtual=%d", virtual)
	}
}

func TestSetLoopGrowsPool(t *testing.T) {
	f := newVertical(t, 3)
	f.tick(1)
	require.Len(t, f.list.Slots(), 3)

	f.list.SetLoop(true)
	require.True(t, f.list.Loop())
	require.Len(t, f.list.Slots(), 5)
}

func TestSetTemplateRebuilds(t *testing.T) {
	f := newVertical(t, 20)
	f.tick(1)
	old := append([]*snaplist.RectSlot(nil), f.template.created...)

	next := &countingTemplate{size: snaplist.Vec2{X: 100, Y: 100}}
	f.list.SetTemplate(next)
	for _, v := range old {
		require.True(t, v.Destroyed)
	}
	require.Empty(t, f.list.Slots())

	f.tick(1)
	require.Equal(t, 3, f.list.MaxVisible())
	require.Len(t, next.created, 3)
}

func TestSetConfig(t *testing.T) {
	f := newVertical(t, 20)
	f.tick(1)
	f.list.ScrollTo(4, 0)
	f.tick(1)

	bad := f.list.Config()
	bad.Elasticity = -1
	require.Error(t, f.list.SetConfig(bad))

	cfg := f.list.Config()
	cfg.Orientation = snaplist.Horizontal
	require.NoError(t, f.list.SetConfig(cfg))
	require.Equal(t, snaplist.Vec2{}, f.list.Offset(), "orientation change resets scrolling")

	f.tick(1)
	// 100 wide viewport over 100 wide items.
	require.Equal(t, 2, f.list.MaxVisible())
}

func TestOrientationSymmetry(t *testing.T) {
	vcfg := verticalConfig(30)
	hcfg := verticalConfig(30)
	hcfg.Orientation = snaplist.Horizontal

	v := newFixture(t, vcfg, snaplist.Vec2{X: 100, Y: 50}, snaplist.Rect{W: 100, H: 200})
	h := newFixture(t, hcfg, snaplist.Vec2{X: 50, Y: 100}, snaplist.Rect{W: 200, H: 100})
	v.tick(1)
	h.tick(1)

	v.list.BeginDrag(snaplist.Vec2{X: 10, Y: 150})
	h.list.BeginDrag(snaplist.Vec2{X: 150, Y: 10})
	for i := 1; i <= 10; i++ {
		v.list.Drag(snaplist.Vec2{X: 10, Y: 150 - float32(i)*12})
		h.list.Drag(snaplist.Vec2{X: 150 - float32(i)*12, Y: 10})
		v.tick(1)
		h.tick(1)
	}
	v.list.EndDrag()
	h.list.EndDrag()

	for i := 0; i < 40; i++ {
		v.tick(1)
		h.tick(1)
		require.Equal(t, v.list.Offset().Y, h.list.Offset().X)
		require.Equal(t, v.list.Phase(), h.list.Phase())
		require.Equal(t, activeIndices(v.list), activeIndices(h.list))
	}
	for i, vs := range v.list.Slots() {
		hs := h.list.Slots()[i]
		require.Equal(t, vs.Position.Y, hs.Position.X)
		require.Equal(t, vs.Position.X, hs.Position.Y)
	}
}

func TestScaleByProximity(t *testing.T) {
	cfg := verticalConfig(20)
	cfg.ScaleByProximity = true
	f := newFixture(t, cfg, snaplist.Vec2{X: 100, Y: 50}, snaplist.Rect{W: 100, H: 200})
	f.tick(1)

	scales := make(map[int]float32)
	for _, s := range f.list.Slots() {
		scales[s.ActualIndex] = s.View.(*snaplist.RectSlot).Scale
	}
	// Item 0 is centered at 25, 75 away from the 100 midpoint.
	require.InDelta(t, 1-0.5*75.0/200, scales[0], 1e-5)
	require.InDelta(t, 1-0.5*25.0/200, scales[1], 1e-5)
	require.InDelta(t, 1-0.5*25.0/200, scales[2], 1e-5)
}

func TestScaleCurveOption(t *testing.T) {
	cfg := verticalConfig(20)
	cfg.ScaleByProximity = true
	l, err := snaplist.New(
		snaplist.WithConfig(cfg),
		snaplist.WithTemplate(snaplist.RectTemplate(snaplist.Vec2{X: 100, Y: 50})),
		snaplist.WithViewport(snaplist.Rect{W: 100, H: 200}),
		snaplist.WithScaleCurve(func(float32) float32 { return 0.25 }),
	)
	require.NoError(t, err)
	l.Tick(1.0 / 60)
	for _, s := range l.Slots() {
		require.Equal(t, float32(0.25), s.View.(*snaplist.RectSlot).Scale)
	}
}

func TestStopMovementAndVelocity(t *testing.T) {
	cfg := verticalConfig(50)
	cfg.Movement = snaplist.Unrestricted
	f := newFixture(t, cfg, snaplist.Vec2{X: 100, Y: 50}, snaplist.Rect{W: 100, H: 200})
	f.tick(1)

	f.list.SetVelocity(snaplist.Vec2{X: 500, Y: 800})
	require.Equal(t, snaplist.Vec2{Y: 800}, f.list.Velocity())
	require.Equal(t, snaplist.PhaseInertial, f.list.Phase())

	f.tick(5)
	require.Greater(t, f.list.Offset().Y, float32(0))

	f.list.StopMovement()
	require.Equal(t, snaplist.Vec2{}, f.list.Velocity())
	require.Equal(t, snaplist.PhaseIdle, f.list.Phase())
}

func TestElasticReleaseReturnsInBounds(t *testing.T) {
	f := newVertical(t, 10)
	f.tick(1)

	f.list.BeginDrag(snaplist.Vec2{Y: 10})
	f.list.Drag(snaplist.Vec2{Y: 120})
	f.tick(1)
	require.Less(t, f.list.Offset().Y, float32(0))
	require.Greater(t, f.list.Offset().Y, float32(-110))
	f.list.EndDrag()

	f.tick(120)
	require.Zero(t, f.list.Offset().Y)
	require.Equal(t, snaplist.PhaseIdle, f.list.Phase())
}

func TestCloseDestroysSlots(t *testing.T) {
	f := newVertical(t, 10)
	f.tick(1)

	f.list.Close()
	require.False(t, f.list.Initialized())
	for _, v := range f.template.created {
		require.True(t, v.Destroyed)
	}

	f.list.ResetAndRebuild()
	f.tick(1)
	require.True(t, f.list.Initialized())
	require.Equal(t, 5, f.list.ActiveCount())
}

func TestOperationsBeforeInitAreIgnored(t *testing.T) {
	f := newVertical(t, 10)
	f.list.ScrollTo(5, 0)
	f.list.BeginDrag(snaplist.Vec2{})
	f.list.SetItemCount(30)
	require.Equal(t, snaplist.PhaseIdle, f.list.Phase())
	require.Equal(t, 30, f.list.ItemCount())

	f.tick(1)
	require.Zero(t, f.list.Offset().Y)
	require.Equal(t, 5, f.list.ActiveCount())
}
