package snaplist

// RectSlot is a plain SlotView that records what the list tells it. Hosts
// that draw through a DrawList use it directly; render callbacks set Label
// and Color.
type RectSlot struct {
	Visible  bool
	Position Vec2
	Scale    float32
	Name     string

	Label string
	Color uint32

	Destroyed bool
}

// NewRectSlot creates a hidden slot at unit scale.
func NewRectSlot() *RectSlot {
	return &RectSlot{Scale: 1}
}

func (r *RectSlot) SetVisible(v bool)   { r.Visible = v }
func (r *RectSlot) SetPosition(p Vec2)  { r.Position = p }
func (r *RectSlot) SetScale(s float32)  { r.Scale = s }
func (r *RectSlot) SetName(name string) { r.Name = name }

func (r *RectSlot) Destroy() {
	r.Destroyed = true
	r.Visible = false
}

// RectTemplate instantiates RectSlots of the given natural size.
func RectTemplate(size Vec2) Template {
	return TemplateFunc{
		New:  func() SlotView { return NewRectSlot() },
		Size: size,
	}
}
