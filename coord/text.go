package coord

import (
	"bytes"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/arloliu/geoprint/errs"
)

// Text is decimal text that either borrows the caller's buffer or owns a new one.
//
// A borrowed Text aliases memory the caller still controls: it is only valid
// while that buffer is left unmodified.
type Text struct {
	b     []byte
	owned bool
}

// Borrow wraps b without copying it.
func Borrow(b []byte) Text {
	return Text{b: b}
}

// Own wraps b as a buffer the Text owns.
func Own(b []byte) Text {
	return Text{b: b, owned: true}
}

// Bytes returns the text. The slice must not be modified when the Text is borrowed.
func (t Text) Bytes() []byte {
	return t.b
}

// IsOwned reports whether the text lives in its own buffer, i.e. whether the
// producer had to transform its input.
func (t Text) IsOwned() bool {
	return t.owned
}

// Len returns the length of the text in bytes.
func (t Text) Len() int {
	return len(t.b)
}

func (t Text) String() string {
	return string(t.b)
}

// Canonicalize rewrites decimal text into its canonical rendering at precision.
//
// If src already is canonical the result borrows src and nothing is
// allocated. Otherwise the result owns a new buffer.
//
// Parameters:
//   - src: Decimal text accepted by strconv.ParseFloat
//   - precision: Maximum fractional digits, as in Format
//
// Returns:
//   - Text: Borrowed src or an owned canonical rendering
//   - error: errs.ErrInvalidNumber if src is empty, malformed or out of range
func Canonicalize(src []byte, precision uint) (Text, error) {
	if len(src) == 0 {
		return Text{}, fmt.Errorf("%w: empty input", errs.ErrInvalidNumber)
	}

	// ParseFloat does not retain its argument, so the unsafe view is enough.
	v, err := strconv.ParseFloat(unsafe.String(unsafe.SliceData(src), len(src)), 64)
	if err != nil {
		return Text{}, fmt.Errorf("%w: %q", errs.ErrInvalidNumber, src)
	}

	var scratch [32]byte
	out := Append(scratch[:0], v, precision)
	if bytes.Equal(out, src) {
		return Borrow(src), nil
	}

	return Own(bytes.Clone(out)), nil
}
