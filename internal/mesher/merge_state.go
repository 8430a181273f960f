package mesher

// mergePhase is the state of a pending rectangle at one cell.
type mergePhase uint8

const (
	phaseIdle    mergePhase = iota // nothing pending
	phaseForward                   // rows above were merged into this cell
	phaseRight                     // cells to the left in this row were merged into this cell
)

func (p mergePhase) String() string {
	switch p {
	case phaseForward:
		return "forward"
	case phaseRight:
		return "right"
	default:
		return "idle"
	}
}

// mergeState carries pending rectangle extents across a sweep.
//
// forward counts rows merged into a cell's rectangle so far. The layer sweep
// indexes it by bit; the forward sweep by inner*Size+bit. right counts cells
// merged along the row in the forward sweep, indexed by bit. Both counters
// return to zero when the rectangle is emitted, so the state is idle again at
// the end of every direction.
type mergeState struct {
	forward [faceWords]uint8
	right   [n]uint8
}

// phase reports the state of the cell using forward slot fi and right slot ri.
func (m *mergeState) phase(fi, ri int) mergePhase {
	switch {
	case m.right[ri] > 0:
		return phaseRight
	case m.forward[fi] > 0:
		return phaseForward
	default:
		return phaseIdle
	}
}

// extendForward merges the cell into the same cell of the next row.
func (m *mergeState) extendForward(fi int) {
	m.forward[fi]++
}

// extendRight merges the cell at forward slot fi into the next cell along
// the row, which inherits the accumulated width.
func (m *mergeState) extendRight(fi, ri int) {
	m.forward[fi] = 0
	m.right[ri]++
}

// absorb clears a cell swallowed by a rectangle growing along its bits.
func (m *mergeState) absorb(fi int) {
	m.forward[fi] = 0
}

// take returns and resets the pending extents for an emitted rectangle.
func (m *mergeState) take(fi, ri int) (fwd, right int) {
	fwd, right = int(m.forward[fi]), int(m.right[ri])
	m.forward[fi], m.right[ri] = 0, 0
	return fwd, right
}

// idle reports whether no rectangle is pending anywhere.
func (m *mergeState) idle() bool {
	for _, v := range m.forward {
		if v != 0 {
			return false
		}
	}
	for _, v := range m.right {
		if v != 0 {
			return false
		}
	}
	return true
}
