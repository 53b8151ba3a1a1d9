package snaplist

// SlotView is the host-side visual for one slot. The list moves, shows,
// hides and scales it; the render callback fills in its content.
type SlotView interface {
	SetVisible(visible bool)
	// SetPosition places the center of the item in content space.
	SetPosition(pos Vec2)
	SetScale(scale float32)
	Destroy()
}

// Namer is implemented by views that want to be labelled with the item
// index they currently display.
type Namer interface {
	SetName(name string)
}

// Template creates slot views. NaturalSize reports the size of a freshly
// created view and is used when the item size is not configured.
type Template interface {
	Instantiate() SlotView
	NaturalSize() Vec2
}

// TemplateFunc adapts a constructor and a fixed natural size to a Template.
type TemplateFunc struct {
	New  func() SlotView
	Size Vec2
}

func (t TemplateFunc) Instantiate() SlotView { return t.New() }
func (t TemplateFunc) NaturalSize() Vec2     { return t.Size }

// Slot is one recyclable display slot.
type Slot struct {
	View SlotView

	// VirtualIndex is the signed, unwrapped position this slot represents,
	// or Unassigned.
	VirtualIndex int
	// ActualIndex is VirtualIndex wrapped into [0, itemCount).
	ActualIndex int
	Active      bool
	// Position is the last placement given to View.
	Position Vec2

	pendingRender bool
}

func (s *Slot) unassign() {
	s.VirtualIndex = Unassigned
	s.ActualIndex = Unassigned
	s.Active = false
	s.pendingRender = false
}
