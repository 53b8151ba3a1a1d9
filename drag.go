package snaplist

// HandleInput translates one frame of polled input into drag, wheel and key
// operations. Call it before Tick.
//
// A left press inside the viewport starts a drag; the drag follows the
// pointer while the button is held and ends on release, wherever the
// pointer is by then.
func (l *List) HandleInput(in *InputState) {
	if in == nil || !l.initialized {
		return
	}
	mouse := in.MousePos()
	local := mouse.Sub(l.viewport.Min())

	switch {
	case in.MouseClicked(MouseButtonLeft) && l.viewport.Contains(mouse):
		l.pointerDrag = true
		l.BeginDrag(local)
	case l.pointerDrag && in.MouseDown(MouseButtonLeft):
		l.Drag(local)
	case l.pointerDrag:
		l.pointerDrag = false
		l.EndDrag()
	}

	if l.pointerDrag {
		return
	}

	if wheel := l.wheelDelta(in); wheel != 0 && l.viewport.Contains(mouse) {
		if wheel > 0 {
			l.ScrollBy(-1)
		} else {
			l.ScrollBy(1)
		}
	}

	back, forward := KeyUp, KeyDown
	if l.cfg.Orientation == Horizontal {
		back, forward = KeyLeft, KeyRight
	}
	page := max(l.maxVisible/max(l.cfg.FixedCount, 1)-1, 1)
	switch {
	case in.KeyPressed(back):
		l.ScrollBy(-1)
	case in.KeyPressed(forward):
		l.ScrollBy(1)
	case in.KeyPressed(KeyPageUp):
		l.ScrollBy(-page)
	case in.KeyPressed(KeyPageDown):
		l.ScrollBy(page)
	case in.KeyPressed(KeyHome):
		l.ScrollTo(0, l.cfg.Snap.Duration)
	case in.KeyPressed(KeyEnd):
		l.ScrollTo(max(l.cfg.ItemCount-1, 0), l.cfg.Snap.Duration)
	}
}

// wheelDelta picks the wheel axis matching the orientation; vertical wheels
// also drive horizontal lists.
func (l *List) wheelDelta(in *InputState) float32 {
	if l.cfg.Orientation == Horizontal && in.MouseWheelX != 0 {
		return in.MouseWheelX
	}
	return in.MouseWheelY
}

// Dragging reports whether a pointer drag is in progress.
func (l *List) Dragging() bool { return l.state.Dragging }
