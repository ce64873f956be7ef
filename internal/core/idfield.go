package core

import (
	"errors"
	"strings"
)

// IDLength is the exact number of digits a student ID must have.
const IDLength = 8

// ErrInvalidID is returned when a submitted ID is not exactly IDLength digits.
var ErrInvalidID = errors.New("student ID must be exactly 8 digits")

// IDField is a single-line numeric text field with a cursor.
// Both frontends drive it from their own key events.
type IDField struct {
	digits []rune
	cursor int
}

// NewIDField creates an empty field.
func NewIDField() *IDField {
	return &IDField{digits: make([]rune, 0, IDLength)}
}

// Insert puts a digit at the cursor. Non-digits and input past IDLength are ignored.
func (f *IDField) Insert(r rune) bool {
	if r < '0' || r > '9' || len(f.digits) >= IDLength {
		return false
	}
	f.digits = append(f.digits, 0)
	copy(f.digits[f.cursor+1:], f.digits[f.cursor:])
	f.digits[f.cursor] = r
	f.cursor++
	return true
}

// Backspace deletes the digit before the cursor.
func (f *IDField) Backspace() bool {
	if f.cursor == 0 {
		return false
	}
	f.digits = append(f.digits[:f.cursor-1], f.digits[f.cursor:]...)
	f.cursor--
	return true
}

// Left moves the cursor one position left.
func (f *IDField) Left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// Right moves the cursor one position right, up to the end of the input.
func (f *IDField) Right() {
	if f.cursor < len(f.digits) {
		f.cursor++
	}
}

// Submit returns the ID if it is complete.
// An incomplete ID clears the field and returns ErrInvalidID.
func (f *IDField) Submit() (string, error) {
	if len(f.digits) != IDLength {
		f.Reset()
		return "", ErrInvalidID
	}
	return string(f.digits), nil
}

// Reset empties the field.
func (f *IDField) Reset() {
	f.digits = f.digits[:0]
	f.cursor = 0
}

// Value returns the current text.
func (f *IDField) Value() string {
	return string(f.digits)
}

// Cursor returns the cursor position in runes.
func (f *IDField) Cursor() int {
	return f.cursor
}

// ValidateID checks an ID given on the command line.
func ValidateID(id string) error {
	if len(id) != IDLength || strings.Trim(id, "0123456789") != "" {
		return ErrInvalidID
	}
	return nil
}
