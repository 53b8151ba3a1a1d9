// Package terminal hosts snaplist lists on a tcell screen. Item sizes and
// viewports are measured in cells; mouse drags, the wheel and arrow keys
// drive the lists.
package terminal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/snaplist"
)

// CellSlot is a SlotView drawn as a filled block of cells with a centered
// label.
type CellSlot struct {
	Visible  bool
	Position snaplist.Vec2
	Scale    float32
	Name     string

	Text  string
	Style tcell.Style
}

func (c *CellSlot) SetVisible(v bool)           { c.Visible = v }
func (c *CellSlot) SetPosition(p snaplist.Vec2) { c.Position = p }
func (c *CellSlot) SetScale(s float32)          { c.Scale = s }
func (c *CellSlot) SetName(name string)         { c.Name = name }
func (c *CellSlot) Destroy()                    { c.Visible = false }

// CellTemplate instantiates CellSlots of w x h cells.
func CellTemplate(w, h int) snaplist.Template {
	return snaplist.TemplateFunc{
		New:  func() snaplist.SlotView { return &CellSlot{Scale: 1} },
		Size: snaplist.Vec2{X: float32(w), Y: float32(h)},
	}
}

// Screen runs lists on a tcell screen.
type Screen struct {
	screen tcell.Screen
	input  *snaplist.InputState
	lists  []*snaplist.List

	BorderStyle tcell.Style
	ItemStyles  []tcell.Style
}

// NewScreen wraps an initialized tcell screen and enables mouse reporting.
func NewScreen(s tcell.Screen) *Screen {
	s.EnableMouse()
	return &Screen{
		screen:      s,
		input:       snaplist.NewInputState(),
		BorderStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		ItemStyles: []tcell.Style{
			tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
			tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite),
		},
	}
}

// Add registers a list.
func (s *Screen) Add(l *snaplist.List) {
	s.lists = append(s.lists, l)
}

// Input returns the pending input state.
func (s *Screen) Input() *snaplist.InputState { return s.input }

// HandleEvent folds one tcell event into the input state. It returns true
// when the event asks to quit.
func (s *Screen) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.input.SetMousePos(float32(x), float32(y))
		buttons := ev.Buttons()
		s.input.SetMouseButton(snaplist.MouseButtonLeft, buttons&tcell.Button1 != 0)
		switch {
		case buttons&tcell.WheelUp != 0:
			s.input.SetMouseWheel(0, 1)
		case buttons&tcell.WheelDown != 0:
			s.input.SetMouseWheel(0, -1)
		case buttons&tcell.WheelLeft != 0:
			s.input.SetMouseWheel(1, 0)
		case buttons&tcell.WheelRight != 0:
			s.input.SetMouseWheel(-1, 0)
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				s.input.PressKey(snaplist.KeySpace)
			}
		default:
			s.input.PressKey(mapKey(ev.Key()))
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func mapKey(k tcell.Key) snaplist.Key {
	switch k {
	case tcell.KeyUp:
		return snaplist.KeyUp
	case tcell.KeyDown:
		return snaplist.KeyDown
	case tcell.KeyLeft:
		return snaplist.KeyLeft
	case tcell.KeyRight:
		return snaplist.KeyRight
	case tcell.KeyPgUp:
		return snaplist.KeyPageUp
	case tcell.KeyPgDn:
		return snaplist.KeyPageDown
	case tcell.KeyHome:
		return snaplist.KeyHome
	case tcell.KeyEnd:
		return snaplist.KeyEnd
	}
	return snaplist.KeyNone
}

// Frame feeds pending input to every list, ticks them and redraws.
func (s *Screen) Frame(dt float32) {
	for _, l := range s.lists {
		l.HandleInput(s.input)
		l.Tick(dt)
	}
	s.input.Reset()
	s.Draw()
}

// Draw paints every list and shows the screen.
func (s *Screen) Draw() {
	s.screen.Clear()
	for _, l := range s.lists {
		s.drawList(l)
	}
	s.screen.Show()
}

func (s *Screen) drawList(l *snaplist.List) {
	vp := l.Viewport()
	x0, y0 := int(vp.X), int(vp.Y)
	x1, y1 := x0+int(vp.W), y0+int(vp.H)

	origin := l.ContentOrigin()
	size := l.Layout().ItemSize
	for _, slot := range l.Slots() {
		if !slot.Active {
			continue
		}
		cs, ok := slot.View.(*CellSlot)
		if !ok {
			continue
		}
		scale := cs.Scale
		if scale <= 0 {
			scale = 1
		}
		w, h := size.X*scale, size.Y*scale
		c := origin.Add(slot.Position)
		left := int(math.Round(float64(c.X - w*0.5)))
		top := int(math.Round(float64(c.Y - h*0.5)))
		right, bottom := left+int(math.Round(float64(w))), top+int(math.Round(float64(h)))

		style := cs.Style
		if style == tcell.StyleDefault && len(s.ItemStyles) > 0 {
			style = s.ItemStyles[slot.ActualIndex%len(s.ItemStyles)]
		}
		for y := max(top, y0); y < min(bottom, y1); y++ {
			for x := max(left, x0); x < min(right, x1); x++ {
				s.screen.SetContent(x, y, ' ', nil, style)
			}
		}

		label := cs.Text
		if label == "" {
			label = cs.Name
		}
		label = runewidth.Truncate(label, right-left, "…")
		ly := top + (bottom-top)/2
		if ly < y0 || ly >= y1 {
			continue
		}
		lx := left + (right-left-runewidth.StringWidth(label))/2
		for _, r := range label {
			rw := runewidth.RuneWidth(r)
			if lx >= x0 && lx+rw <= x1 {
				s.screen.SetContent(lx, ly, r, nil, style)
			}
			lx += rw
		}
	}
	s.drawBorder(x0-1, y0-1, x1, y1)
}

// drawBorder frames the viewport one cell outside it.
func (s *Screen) drawBorder(x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		s.screen.SetContent(x, y0, tcell.RuneHLine, nil, s.BorderStyle)
		s.screen.SetContent(x, y1, tcell.RuneHLine, nil, s.BorderStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		s.screen.SetContent(x0, y, tcell.RuneVLine, nil, s.BorderStyle)
		s.screen.SetContent(x1, y, tcell.RuneVLine, nil, s.BorderStyle)
	}
	s.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, s.BorderStyle)
	s.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, s.BorderStyle)
	s.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, s.BorderStyle)
	s.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, s.BorderStyle)
}

// Run pumps events and renders at fps frames per second until ctx ends or
// a quit key is pressed. onFrame, if set, runs before each frame.
func (s *Screen) Run(ctx context.Context, fps int, onFrame func(in *snaplist.InputState)) error {
	if fps <= 0 {
		return fmt.Errorf("run: fps must be positive, got %d", fps)
	}
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go s.pump(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if s.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if onFrame != nil {
				onFrame(s.input)
			}
			s.Frame(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

// pump forwards polled events until the screen is finalized or done closes.
func (s *Screen) pump(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
