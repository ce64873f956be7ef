package classic

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func typed(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, key(r))
	}
	return keys
}

func TestPromptIDRetriesAfterInvalid(t *testing.T) {
	var calls []string
	term := newFakeTerminal(&calls)
	term.waits = append(term.waits, typed("123")...)
	term.waits = append(term.waits, Key{Code: KeyEnter})
	term.waits = append(term.waits, typed("87654321")...)
	term.waits = append(term.waits, Key{Code: KeyEnter})

	id, err := PromptID(context.Background(), term, 80, 5)
	if err != nil {
		t.Fatalf("PromptID() failed: %v", err)
	}
	if id != "87654321" {
		t.Errorf("PromptID() = %q, expected 87654321", id)
	}

	// Frame after the first Enter shows the error and an empty field
	errFrame := term.frames[4]
	if !strings.Contains(errFrame, "Student ID must be exactly 8 digits") {
		t.Error("invalid submit should show the error")
	}
	if !strings.Contains(errFrame, promptText+"________") {
		t.Error("invalid submit should clear the field")
	}
}

func TestPromptIDEditing(t *testing.T) {
	var calls []string
	term := newFakeTerminal(&calls)
	term.waits = append(term.waits, typed("1234568")...)
	term.waits = append(term.waits, Key{Code: KeyLeft}, key('7'), Key{Code: KeyRight}, Key{Code: KeyBackspace}, key('8'), Key{Code: KeyEnter})

	id, err := PromptID(context.Background(), term, 80, 5)
	if err != nil {
		t.Fatalf("PromptID() failed: %v", err)
	}
	if id != "12345678" {
		t.Errorf("PromptID() = %q, expected 12345678", id)
	}
}

func TestPromptIDEscape(t *testing.T) {
	var calls []string
	term := newFakeTerminal(&calls)
	term.waits = []Key{key('1'), {Code: KeyEscape}}

	_, err := PromptID(context.Background(), term, 80, 5)
	if !errors.Is(err, ErrInterrupted) {
		t.Errorf("PromptID() error = %v, expected ErrInterrupted", err)
	}
}
