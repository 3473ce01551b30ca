package glkit

// MaxTextureUnits is the number of texture units a pipeline rotates over.
// GL ES 2.0 guarantees eight fragment texture units.
const MaxTextureUnits = 8

// unitAllocator hands out texture units round-robin. Units bound with
// persistence stay locked until the pipeline ends; the others are reused
// once the cursor wraps around.
type unitAllocator struct {
	cursor uint8
	locked uint8
}

// next returns the first unlocked unit at or after the cursor.
func (a *unitAllocator) next() (unit uint8, ok bool) {
	for i := range uint8(MaxTextureUnits) {
		id := (a.cursor + i) % MaxTextureUnits
		if a.locked&(1<<id) == 0 {
			return id, true
		}
	}
	return 0, false
}

// take marks unit as used and moves the cursor past it.
func (a *unitAllocator) take(unit uint8, persistent bool) {
	a.cursor = (unit + 1) % MaxTextureUnits
	if persistent {
		a.locked |= 1 << unit
	}
}

// lockedCount returns the number of locked units.
func (a *unitAllocator) lockedCount() int {
	n := 0
	for i := range uint8(MaxTextureUnits) {
		if a.locked&(1<<i) != 0 {
			n++
		}
	}
	return n
}
