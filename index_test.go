package snaplist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		v, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{12, 5, 2},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{-11, 5, 4},
		{3, 0, 0},
		{-3, -1, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, WrapIndex(c.v, c.n), "WrapIndex(%d, %d)", c.v, c.n)
	}
}

func TestWrapIndexStaysInRange(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for v := -50; v <= 50; v++ {
			w := WrapIndex(v, n)
			require.GreaterOrEqual(t, w, 0)
			require.Less(t, w, n)
			require.Zero(t, (v-w)%n, "WrapIndex(%d, %d) = %d is not congruent", v, n, w)
		}
	}
}

func TestCircularDistance(t *testing.T) {
	require.Equal(t, 1, CircularDistance(1, 0, 10))
	require.Equal(t, -1, CircularDistance(9, 0, 10))
	require.Equal(t, 2, CircularDistance(0, 8, 10))
	require.Equal(t, 5, CircularDistance(5, 0, 10))
	require.Equal(t, 0, CircularDistance(3, 3, 10))

	for n := 1; n <= 9; n++ {
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				d := CircularDistance(a, b, n)
				require.LessOrEqual(t, abs(d), n/2, "distance(%d, %d, %d)", a, b, n)
				require.Equal(t, a, WrapIndex(b+d, n), "b + distance must land on a")
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestClosestLine(t *testing.T) {
	// On a ring of 10 lines, line 9 is one step back from line 0.
	require.Equal(t, -1, ClosestLine(9, 0, 10))
	require.Equal(t, 21, ClosestLine(1, 20, 10))
	require.Equal(t, 19, ClosestLine(9, 20, 10))
	require.Equal(t, -12, ClosestLine(8, -11, 10))
	require.Equal(t, 4, ClosestLine(3, 4, 0))
}

func TestCurrentLine(t *testing.T) {
	t.Run("loop", func(t *testing.T) {
		require.Equal(t, 0, CurrentLine(0, 50, true, 10))
		require.Equal(t, 0, CurrentLine(49, 50, true, 10))
		require.Equal(t, 1, CurrentLine(50, 50, true, 10))
		require.Equal(t, -1, CurrentLine(-1, 50, true, 10))
		require.Equal(t, -2, CurrentLine(-51, 50, true, 10))
	})

	t.Run("bounded", func(t *testing.T) {
		require.Equal(t, 0, CurrentLine(-30, 50, false, 10))
		require.Equal(t, 0, CurrentLine(10, 50, false, 10))
		require.Equal(t, 0, CurrentLine(59, 50, false, 10))
		require.Equal(t, 1, CurrentLine(60, 50, false, 10))
		require.Equal(t, 3, CurrentLine(175, 50, false, 10))
	})

	t.Run("rounds position", func(t *testing.T) {
		require.Equal(t, 1, CurrentLine(49.6, 50, true, 0))
		require.Equal(t, 0, CurrentLine(49.4, 50, true, 0))
	})

	t.Run("degenerate cell", func(t *testing.T) {
		require.Equal(t, 0, CurrentLine(500, 0, false, 0))
		require.Equal(t, 0, CurrentLine(500, -1, true, 0))
	})
}

func TestCurrentLineAxisSymmetry(t *testing.T) {
	margin := Margin{Left: 7, Top: 7}
	for _, pos := range []float32{-20, 0, 7, 33, 57, 58, 1000} {
		for _, loop := range []bool{false, true} {
			h := CurrentLine(Vec2{X: pos}.On(AxisX), 50, loop, margin.Leading(AxisX))
			v := CurrentLine(Vec2{Y: pos}.On(AxisY), 50, loop, margin.Leading(AxisY))
			require.Equal(t, v, h, "pos %v loop %v", pos, loop)
		}
	}
}

func TestLinePositionInvertsCurrentLine(t *testing.T) {
	for _, loop := range []bool{false, true} {
		for line := 0; line < 20; line++ {
			pos := linePosition(line, 36, loop, 12)
			require.Equal(t, line, CurrentLine(pos, 36, loop, 12))
		}
	}
}

func TestTotalLines(t *testing.T) {
	require.Equal(t, 0, totalLines(0, 3))
	require.Equal(t, 1, totalLines(1, 3))
	require.Equal(t, 4, totalLines(10, 3))
	require.Equal(t, 10, totalLines(10, 1))
	require.Equal(t, 0, totalLines(10, 0))
}
