package debris

import (
	"math/rand"

	"github.com/vovakirdan/debris-shooter/internal/core"
)

// BulletPool is a fixed set of bullet slots written through a round-robin cursor.
// A slot is active while its Y is non-negative; inactive slots are parked at
// (-w, -h) so every empty slot looks the same.
type BulletPool struct {
	slots  []core.Rect
	cursor int
	w, h   int
}

// NewBulletPool creates a pool with every slot parked.
func NewBulletPool(capacity, w, h int) *BulletPool {
	p := &BulletPool{
		slots: make([]core.Rect, capacity),
		w:     w,
		h:     h,
	}
	for i := range p.slots {
		p.Park(i)
	}
	return p
}

// Len returns the pool capacity.
func (p *BulletPool) Len() int {
	return len(p.slots)
}

// At returns the bounding box of slot i.
func (p *BulletPool) At(i int) core.Rect {
	return p.slots[i]
}

// Active reports whether slot i holds a bullet in flight.
func (p *BulletPool) Active(i int) bool {
	return p.slots[i].Y >= 0
}

// ActiveCount returns the number of bullets in flight.
func (p *BulletPool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.Active(i) {
			n++
		}
	}
	return n
}

// Cursor returns the slot the next Spawn writes to.
func (p *BulletPool) Cursor() int {
	return p.cursor
}

// Spawn places a bullet at (x, y) in the cursor slot, overwriting whatever was
// there, and advances the cursor. A bullet spawned above the playfield is parked
// right away. Returns the slot index used.
func (p *BulletPool) Spawn(x, y int) int {
	i := p.cursor
	p.slots[i] = core.NewRect(x, y, p.w, p.h)
	if y < 0 {
		p.Park(i)
	}
	p.cursor = (p.cursor + 1) % len(p.slots)
	return i
}

// Park marks slot i as empty.
func (p *BulletPool) Park(i int) {
	p.slots[i] = core.NewRect(-p.w, -p.h, p.w, p.h)
}

// Advance moves every active bullet up by speed and parks those that left the top edge.
func (p *BulletPool) Advance(speed int) {
	for i := range p.slots {
		if !p.Active(i) {
			continue
		}
		p.slots[i].Y -= speed
		if p.slots[i].Y < 0 {
			p.Park(i)
		}
	}
}

// Rects returns a copy of every slot, parked ones included.
func (p *BulletPool) Rects() []core.Rect {
	return append([]core.Rect(nil), p.slots...)
}

// DebrisPool is a fixed set of always-active debris slots.
// Slots are recycled in place by Respawn and never freed.
type DebrisPool struct {
	slots   []core.Rect
	minSize int // Inclusive
	maxSize int // Exclusive
	fieldW  int
	fieldH  int
	rng     *rand.Rand
}

// NewDebrisPool creates a pool and scatters every slot above the playfield.
func NewDebrisPool(capacity, minSize, maxSize, fieldW, fieldH int, rng *rand.Rand) *DebrisPool {
	p := &DebrisPool{
		slots:   make([]core.Rect, capacity),
		minSize: minSize,
		maxSize: maxSize,
		fieldW:  fieldW,
		fieldH:  fieldH,
		rng:     rng,
	}
	for i := range p.slots {
		p.Respawn(i)
	}
	return p
}

// Len returns the pool capacity.
func (p *DebrisPool) Len() int {
	return len(p.slots)
}

// At returns the bounding box of slot i.
func (p *DebrisPool) At(i int) core.Rect {
	return p.slots[i]
}

// Respawn gives slot i a new square size, a random column that keeps it inside
// the playfield, and a start row in [-fieldH, -1].
func (p *DebrisPool) Respawn(i int) {
	size := p.minSize + p.rng.Intn(p.maxSize-p.minSize)
	x := p.rng.Intn(p.fieldW - size)
	y := -(1 + p.rng.Intn(p.fieldH))
	p.slots[i] = core.NewRect(x, y, size, size)
}

// Fall moves slot i down by speed.
func (p *DebrisPool) Fall(i, speed int) {
	p.slots[i].Y += speed
}

// Rects returns a copy of every slot.
func (p *DebrisPool) Rects() []core.Rect {
	return append([]core.Rect(nil), p.slots...)
}
