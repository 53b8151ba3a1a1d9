package snaplist

// SlotPool owns every slot a list has created. Slots live in an arena and
// are referred to by their arena position; the free queue and the in-range
// map both hold positions, never copies.
type SlotPool struct {
	template Template
	slots    []*Slot

	free     []int
	freeHead int
	inRange  map[int]int // virtual index -> arena position
}

// NewSlotPool creates an empty pool that instantiates from t.
func NewSlotPool(t Template) *SlotPool {
	return &SlotPool{
		template: t,
		inRange:  make(map[int]int),
	}
}

// Len returns the number of slots created so far.
func (p *SlotPool) Len() int { return len(p.slots) }

// Slot returns the slot at arena position i.
func (p *SlotPool) Slot(i int) *Slot { return p.slots[i] }

// Slots returns the arena. The slice must not be modified.
func (p *SlotPool) Slots() []*Slot { return p.slots }

// Template returns the template new slots are created from.
func (p *SlotPool) Template() Template { return p.template }

// EnsureCapacity instantiates slots until the pool holds at least n.
// It never shrinks and returns the number of slots created.
func (p *SlotPool) EnsureCapacity(n int) int {
	if p.template == nil {
		return 0
	}
	created := 0
	for len(p.slots) < n {
		s := &Slot{View: p.template.Instantiate()}
		s.unassign()
		s.View.SetVisible(false)
		p.slots = append(p.slots, s)
		created++
	}
	return created
}

// ReleaseAll destroys every view and empties the pool.
func (p *SlotPool) ReleaseAll() {
	for _, s := range p.slots {
		s.View.Destroy()
	}
	p.slots = p.slots[:0]
	p.free = p.free[:0]
	p.freeHead = 0
	clear(p.inRange)
}

// SetTemplate releases all slots and switches to t.
func (p *SlotPool) SetTemplate(t Template) {
	p.ReleaseAll()
	p.template = t
}

// Partition splits the pool for the virtual range [start, end).
// Slots already inside the range are kept and indexed by virtual index;
// every other slot is unassigned and queued as free. Pending flags are
// cleared on all slots.
func (p *SlotPool) Partition(start, end int) {
	p.free = p.free[:0]
	p.freeHead = 0
	clear(p.inRange)
	for i, s := range p.slots {
		s.pendingRender = false
		if s.VirtualIndex != Unassigned && s.VirtualIndex >= start && s.VirtualIndex < end {
			if _, dup := p.inRange[s.VirtualIndex]; !dup {
				p.inRange[s.VirtualIndex] = i
				s.Active = true
				continue
			}
		}
		s.unassign()
		p.free = append(p.free, i)
	}
}

// Lookup returns the slot holding virtual index v after the last Partition.
func (p *SlotPool) Lookup(v int) (*Slot, bool) {
	i, ok := p.inRange[v]
	if !ok {
		return nil, false
	}
	return p.slots[i], true
}

// Dequeue pops a free slot. ok is false when the queue is empty.
func (p *SlotPool) Dequeue() (s *Slot, ok bool) {
	if p.freeHead >= len(p.free) {
		return nil, false
	}
	i := p.free[p.freeHead]
	p.freeHead++
	return p.slots[i], true
}

// FreeCount returns the number of slots still waiting in the free queue.
func (p *SlotPool) FreeCount() int { return len(p.free) - p.freeHead }

// ActiveCount returns the number of slots currently mapped.
func (p *SlotPool) ActiveCount() int {
	n := 0
	for _, s := range p.slots {
		if s.Active {
			n++
		}
	}
	return n
}
