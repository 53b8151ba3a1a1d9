package snaplist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLayout(items, maxVisible int, loop bool) Layout {
	return Layout{
		Axis:       AxisY,
		FixedCount: 1,
		ItemSize:   Vec2{X: 100, Y: 50},
		Loop:       loop,
		ItemCount:  items,
		MaxVisible: maxVisible,
	}
}

// activeByVirtual indexes the active slots and fails on duplicates.
func activeByVirtual(t *testing.T, p *SlotPool) map[int]*Slot {
	t.Helper()
	m := make(map[int]*Slot)
	for _, s := range p.Slots() {
		if !s.Active {
			continue
		}
		_, dup := m[s.VirtualIndex]
		require.False(t, dup, "virtual index %d mapped twice", s.VirtualIndex)
		m[s.VirtualIndex] = s
	}
	return m
}

func TestLayoutPlacement(t *testing.T) {
	l := Layout{
		Axis:       AxisY,
		FixedCount: 3,
		ItemSize:   Vec2{X: 100, Y: 50},
		Spacing:    Vec2{X: 10, Y: 5},
		Margin:     Margin{Left: 3, Top: 7},
	}
	require.Equal(t, Vec2{X: 163, Y: 142}, l.Placement(2, 1))

	l.Loop = true
	require.Equal(t, Vec2{X: 163, Y: 135}, l.Placement(2, 1))

	l.Loop = false
	l.Axis = AxisX
	l.ItemSize = Vec2{X: 50, Y: 100}
	l.Spacing = Vec2{X: 5, Y: 10}
	l.Margin = Margin{Left: 7, Top: 3}
	require.Equal(t, Vec2{X: 142, Y: 163}, l.Placement(2, 1))
}

func TestLayoutContentSize(t *testing.T) {
	l := Layout{
		Axis:       AxisY,
		FixedCount: 3,
		ItemSize:   Vec2{X: 100, Y: 50},
		Spacing:    Vec2{X: 10, Y: 5},
		Margin:     Margin{Left: 3, Right: 4, Top: 7, Bottom: 9},
		ItemCount:  10,
	}
	require.Equal(t, Vec2{X: 327, Y: 231}, l.ContentSize(Vec2{X: 200, Y: 100}))
	require.Equal(t, Vec2{X: 400, Y: 231}, l.ContentSize(Vec2{X: 400, Y: 100}))

	l.ItemCount = 0
	require.Equal(t, float32(16), l.ContentSize(Vec2{X: 200, Y: 100}).Y)
}

func TestLayoutMaxVisibleFor(t *testing.T) {
	l := Layout{
		Axis:       AxisY,
		FixedCount: 3,
		ItemSize:   Vec2{X: 100, Y: 50},
		Spacing:    Vec2{Y: 5},
	}
	require.Equal(t, 15, l.MaxVisibleFor(Vec2{X: 300, Y: 200}))
	require.Equal(t, 6, l.MaxVisibleFor(Vec2{X: 300, Y: 55}))

	l.ItemSize = Vec2{}
	l.Spacing = Vec2{}
	require.Zero(t, l.MaxVisibleFor(Vec2{X: 300, Y: 200}))
}

func TestWindowLoopBeforeFirstItem(t *testing.T) {
	pool := newTestPool(3)
	w := NewWindow(pool)
	lay := testLayout(5, 3, true)

	require.True(t, w.Update(lay, -1, false, nil))

	active := activeByVirtual(t, pool)
	require.Len(t, active, 3)
	require.Equal(t, 4, active[-1].ActualIndex)
	require.Equal(t, 0, active[0].ActualIndex)
	require.Equal(t, 1, active[1].ActualIndex)
	require.Equal(t, float32(-25), active[-1].Position.Y)
	require.Equal(t, float32(75), active[1].Position.Y)
	require.Equal(t, "4", active[-1].View.(*RectSlot).Name)
}

func TestWindowClampsAtEnd(t *testing.T) {
	pool := newTestPool(2)
	w := NewWindow(pool)
	lay := testLayout(2, 4, false)

	w.Update(lay, 0, false, nil)

	require.Equal(t, 0, w.Start)
	require.Equal(t, 2, w.End)
	require.Equal(t, 2, pool.ActiveCount())
	require.Equal(t, 2, pool.Len())
}

func TestWindowRendersChangedSlotsOnce(t *testing.T) {
	pool := newTestPool(3)
	w := NewWindow(pool)
	lay := testLayout(10, 3, true)

	var rendered []int
	render := func(index int, view SlotView) {
		rendered = append(rendered, index)
	}

	w.Update(lay, 0, false, render)
	require.ElementsMatch(t, []int{0, 1, 2}, rendered)

	rendered = nil
	w.Update(lay, 1, false, render)
	require.Equal(t, []int{3}, rendered)

	rendered = nil
	require.False(t, w.Update(lay, 1, false, render))
	require.Empty(t, rendered)

	rendered = nil
	require.True(t, w.Update(lay, 1, true, render))
	require.ElementsMatch(t, []int{1, 2, 3}, rendered)

	rendered = nil
	w.Update(lay, 1, true, render)
	require.ElementsMatch(t, []int{1, 2, 3}, rendered, "refresh must be idempotent")
}

func TestWindowInvalidate(t *testing.T) {
	pool := newTestPool(3)
	w := NewWindow(pool)
	lay := testLayout(10, 3, false)

	w.Update(lay, 2, false, nil)
	require.Equal(t, 2, w.Line())
	require.False(t, w.Update(lay, 2, false, nil))

	w.Invalidate()
	require.True(t, w.Update(lay, 2, false, nil))
}

func TestWindowForcedRefreshRepositions(t *testing.T) {
	pool := newTestPool(3)
	w := NewWindow(pool)
	lay := testLayout(10, 3, false)

	w.Update(lay, 0, false, nil)
	lay.Spacing = Vec2{Y: 10}
	w.Update(lay, 0, true, nil)

	active := activeByVirtual(t, pool)
	require.Equal(t, float32(25+60*2), active[2].Position.Y)
	require.Equal(t, active[2].Position, active[2].View.(*RectSlot).Position)
}

func TestWindowGrid(t *testing.T) {
	pool := newTestPool(6)
	w := NewWindow(pool)
	lay := testLayout(10, 6, false)
	lay.FixedCount = 3

	w.Update(lay, 2, false, nil)
	active := activeByVirtual(t, pool)
	require.Len(t, active, 4)
	require.Equal(t, Vec2{X: 50, Y: 125}, active[6].Position)
	require.Equal(t, Vec2{X: 250, Y: 125}, active[8].Position)
	require.Equal(t, Vec2{X: 50, Y: 175}, active[9].Position)

	w.Update(lay, 3, false, nil)
	require.Equal(t, 1, pool.ActiveCount())
}

func TestWindowPoolUnderflow(t *testing.T) {
	pool := newTestPool(2)
	w := NewWindow(pool)

	require.True(t, w.Update(testLayout(10, 3, false), 0, false, nil))
	require.Equal(t, 2, pool.ActiveCount())
}

func TestWindowEmptyList(t *testing.T) {
	pool := newTestPool(3)
	w := NewWindow(pool)

	w.Update(testLayout(0, 3, true), 0, false, nil)
	require.Zero(t, pool.ActiveCount())
	for _, s := range pool.Slots() {
		require.False(t, s.View.(*RectSlot).Visible)
	}
}

func TestWindowRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, loop := range []bool{false, true} {
		pool := newTestPool(4)
		w := NewWindow(pool)
		lay := testLayout(9, 4, loop)
		lay.FixedCount = 2
		line := 0
		for step := 0; step < 200; step++ {
			line += rng.Intn(7) - 3
			if !loop {
				line = clampInt(line, 0, lay.TotalLines()-1)
			}
			w.Update(lay, line, false, nil)

			active := activeByVirtual(t, pool)
			require.LessOrEqual(t, len(active), lay.MaxVisible)
			for v, s := range active {
				require.GreaterOrEqual(t, v, w.Start)
				require.Less(t, v, w.End)
				require.Equal(t, WrapIndex(v, lay.ItemCount), s.ActualIndex)
				require.True(t, s.View.(*RectSlot).Visible)
			}
			for _, s := range pool.Slots() {
				if !s.Active {
					require.False(t, s.View.(*RectSlot).Visible)
				}
			}
		}
	}
}
