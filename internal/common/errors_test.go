package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesWrappedCodes(t *testing.T) {
	base := NewError(CodeNotFound, "student not found", nil)
	wrapped := fmt.Errorf("submit failed: %w", base)

	if !Is(wrapped, CodeNotFound) {
		t.Fatal("expected wrapped not_found to match")
	}
	if Is(wrapped, CodeConflict) {
		t.Fatal("not_found must not match conflict")
	}
	if Is(nil, CodeNotFound) {
		t.Fatal("nil must not match any code")
	}
	if Is(errors.New("plain"), CodeInternal) {
		t.Fatal("plain errors carry no code")
	}
}

func TestIsWalksCauseChain(t *testing.T) {
	cause := NewError(CodeConflict, "already applied", nil)
	outer := NewError(CodeInternal, "failed to create application", cause)

	if !Is(outer, CodeInternal) {
		t.Fatal("expected outer code to match")
	}
	if !Is(outer, CodeConflict) {
		t.Fatal("expected inner code to match through the chain")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(NewError(CodeForbidden, "nope", nil)); got != CodeForbidden {
		t.Fatalf("CodeOf = %s, want %s", got, CodeForbidden)
	}
	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Fatalf("CodeOf(plain) = %s, want %s", got, CodeInternal)
	}
}
