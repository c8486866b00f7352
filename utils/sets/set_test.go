package sets

import "testing"

func TestSetFromSlice(t *testing.T) {
	s := FromSlice([]string{"law", "move", "law"})

	if len(s) != 2 {
		t.Errorf("Expected '2' elements but got '%d'", len(s))
	}
	if !s.Has("law") || !s.Has("move") {
		t.Error("Expected both elements to be present")
	}
	if s.Has("vote") {
		t.Error("Expected 'vote' to be absent")
	}

	s.Append("vote")
	if !s.Has("vote") {
		t.Error("Expected 'vote' after append")
	}
}
