package snaplist

import "strconv"

// Renderer draws a finished DrawList. The OpenGL backend implements it.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// DrawStyle controls how Draw paints a list.
type DrawStyle struct {
	Background uint32
	Border     uint32
	// ItemColors cycle by item index for slots that do not carry a color.
	ItemColors []uint32
	Text       uint32
	CharWidth  float32
	CharHeight float32
}

// DefaultDrawStyle is a dark style with alternating item shades.
func DefaultDrawStyle() DrawStyle {
	return DrawStyle{
		Background: RGBA(24, 26, 30, 255),
		Border:     ColorDarkGray,
		ItemColors: []uint32{RGBA(60, 110, 170, 255), RGBA(50, 90, 140, 255)},
		Text:       ColorWhite,
		CharWidth:  8,
		CharHeight: 8,
	}
}

// Draw paints the viewport and every visible slot into dl. Slots whose view
// is a *RectSlot use its label and color; other views get the item index
// and a style color.
func (l *List) Draw(dl *DrawList, style DrawStyle, fontTex uint32) {
	vp := l.viewport
	dl.PushClipRect(vp.X, vp.Y, vp.X+vp.W, vp.Y+vp.H)
	defer dl.PopClipRect()

	dl.AddRect(vp.X, vp.Y, vp.W, vp.H, style.Background)

	origin := l.ContentOrigin()
	size := l.itemSize()
	var labels []labelAt
	for _, s := range l.pool.Slots() {
		if !s.Active {
			continue
		}
		scale := float32(1)
		label := strconv.Itoa(s.ActualIndex)
		color := ColorGray
		if len(style.ItemColors) > 0 {
			color = style.ItemColors[s.ActualIndex%len(style.ItemColors)]
		}
		if rs, ok := s.View.(*RectSlot); ok {
			scale = rs.Scale
			if rs.Label != "" {
				label = rs.Label
			}
			if rs.Color != 0 {
				color = rs.Color
			}
		}
		w, h := size.X*scale, size.Y*scale
		c := origin.Add(s.Position)
		dl.AddRect(c.X-w*0.5, c.Y-h*0.5, w, h, color)
		if style.CharWidth > 0 && style.CharHeight > 0 {
			labels = append(labels, labelAt{c, label})
		}
	}

	if fontTex != 0 && len(labels) > 0 {
		dl.SetTexture(fontTex)
		for _, lb := range labels {
			tw := float32(len(lb.text)) * style.CharWidth
			dl.AddText(lb.at.X-tw*0.5, lb.at.Y-style.CharHeight*0.5, lb.text, style.Text, style.CharWidth, style.CharHeight)
		}
		dl.SetTexture(0)
	}

	dl.AddRectOutline(vp.X, vp.Y, vp.W, vp.H, style.Border, 1)
}

type labelAt struct {
	at   Vec2
	text string
}

// Host runs the frame loop for a set of lists: input, tick, draw, render.
type Host struct {
	renderer Renderer
	style    DrawStyle
	lists    []*List
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithDrawStyle sets the style lists are drawn with.
func WithDrawStyle(style DrawStyle) HostOption {
	return func(h *Host) { h.style = style }
}

// NewHost creates a host that renders through r.
func NewHost(r Renderer, opts ...HostOption) *Host {
	h := &Host{
		renderer: r,
		style:    DefaultDrawStyle(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add registers a list with the host.
func (h *Host) Add(l *List) {
	h.lists = append(h.lists, l)
}

// Lists returns the registered lists.
func (h *Host) Lists() []*List { return h.lists }

// Frame runs one frame. in may be nil when no input was collected.
func (h *Host) Frame(in *InputState, dt float32) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	for _, l := range h.lists {
		l.HandleInput(in)
		l.Tick(dt)
		l.Draw(dl, h.style, h.renderer.FontTextureID())
	}
	return h.renderer.Render(dl)
}

// Resize notifies the renderer of a display size change.
func (h *Host) Resize(width, height int) {
	h.renderer.Resize(width, height)
}
