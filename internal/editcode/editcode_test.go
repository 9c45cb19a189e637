package editcode

import "testing"

func TestHashIsDeterministic(t *testing.T) {
	a := Hash("secret123")
	b := Hash("secret123")
	if a != b {
		t.Errorf("same input hashed differently: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(a))
	}
}

func TestMatch(t *testing.T) {
	stored := Hash("secret123")
	if !Match("secret123", stored) {
		t.Error("correct code should match")
	}
	if Match("secret124", stored) {
		t.Error("wrong code should not match")
	}
}
