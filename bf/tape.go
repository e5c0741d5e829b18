package bf

// Tape is a row of byte cells that grows by one zero cell whenever the
// cursor steps off either end. It starts as a single zero cell.
//
// Cells are kept in two halves around a fixed origin: right holds offsets
// 0, 1, 2, ... and left holds -1, -2, ... so growth at either end is an
// append.
type Tape struct {
	left   []byte
	right  []byte
	offset int
}

// NewTape returns a tape holding one zero cell with the cursor on it.
func NewTape() *Tape {
	return &Tape{right: []byte{0}}
}

// Len reports the number of cells.
func (t *Tape) Len() int {
	return len(t.left) + len(t.right)
}

// Cursor reports the index of the current cell, counting from the leftmost
// cell.
func (t *Tape) Cursor() int {
	return len(t.left) + t.offset
}

func (t *Tape) cell() *byte {
	if t.offset >= 0 {
		return &t.right[t.offset]
	}
	return &t.left[-t.offset-1]
}

// Get returns the current cell.
func (t *Tape) Get() byte {
	return *t.cell()
}

// Set overwrites the current cell.
func (t *Tape) Set(v byte) {
	*t.cell() = v
}

// Inc adds one to the current cell, wrapping 255 to 0.
func (t *Tape) Inc() {
	*t.cell()++
}

// Dec subtracts one from the current cell, wrapping 0 to 255.
func (t *Tape) Dec() {
	*t.cell()--
}

// Left moves the cursor one cell left. At the leftmost cell a new zero cell
// is added in front and the cursor stays at index 0, now on the new cell.
func (t *Tape) Left() {
	if t.Cursor() == 0 {
		t.left = append(t.left, 0)
	}
	t.offset--
}

// Right moves the cursor one cell right, appending a zero cell when it steps
// past the end.
func (t *Tape) Right() {
	t.offset++
	if t.offset >= len(t.right) {
		t.right = append(t.right, 0)
	}
}

// Cells returns a copy of the tape from left to right.
func (t *Tape) Cells() []byte {
	out := make([]byte, 0, t.Len())
	for i := len(t.left) - 1; i >= 0; i-- {
		out = append(out, t.left[i])
	}
	return append(out, t.right...)
}
