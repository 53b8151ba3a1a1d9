package snaplist

import "sort"

// EaseInOutCubic eases from start to end as t runs over [0, 1].
func EaseInOutCubic(start, end, t float32) float32 {
	t /= 0.5
	end -= start
	if t < 1 {
		return end*0.5*t*t*t + start
	}
	t -= 2
	return end*0.5*(t*t*t+2) + start
}

// Curve maps a normalized distance to a value, used for proximity scaling.
type Curve func(ratio float32) float32

// CurveKey is one control point of a piecewise-linear curve.
type CurveKey struct {
	Time, Value float32
}

// LinearCurve interpolates linearly between keys and holds the end values
// outside them. With no keys the curve is constant 1.
func LinearCurve(keys ...CurveKey) Curve {
	ks := append([]CurveKey(nil), keys...)
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].Time < ks[j].Time })
	return func(r float32) float32 {
		switch {
		case len(ks) == 0:
			return 1
		case r <= ks[0].Time:
			return ks[0].Value
		case r >= ks[len(ks)-1].Time:
			return ks[len(ks)-1].Value
		}
		for i := 1; i < len(ks); i++ {
			a, b := ks[i-1], ks[i]
			if r > b.Time {
				continue
			}
			span := b.Time - a.Time
			if span <= 0 {
				return b.Value
			}
			return a.Value + (b.Value-a.Value)*(r-a.Time)/span
		}
		return ks[len(ks)-1].Value
	}
}

// DefaultScaleCurve shrinks items to half size at one viewport away from
// the center.
func DefaultScaleCurve() Curve {
	return LinearCurve(CurveKey{0, 1}, CurveKey{1, 0.5})
}
