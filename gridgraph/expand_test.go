// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestMinBreach_Connected: connected cells need no breach.
func TestMinBreach_Connected(t *testing.T) {
	gg := fromRows(t, "...")
	path, cost, err := gg.MinBreach(Position{0, 0}, Position{2, 0})
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	want := []Position{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestMinBreach_Wall: a full-height wall must be crossed once.
//
//	. # .
//	. # .
//	. # .
func TestMinBreach_Wall(t *testing.T) {
	gg := fromRows(t,
		".#.",
		".#.",
		".#.",
	)
	path, cost, err := gg.MinBreach(Position{0, 1}, Position{2, 1})
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if path[0] != (Position{0, 1}) || path[len(path)-1] != (Position{2, 1}) {
		t.Errorf("path endpoints = %v..%v", path[0], path[len(path)-1])
	}
}

// TestMinBreach_PrefersDetour: a free detour beats a breach.
//
//	. # .
//	. . .
func TestMinBreach_PrefersDetour(t *testing.T) {
	gg := fromRows(t,
		".#.",
		"...",
	)
	path, cost, err := gg.MinBreach(Position{0, 0}, Position{2, 0})
	if err != nil {
		t.Fatalf("MinBreach error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestMinBreach_OutOfBounds ensures invalid positions yield ErrOutOfBounds.
func TestMinBreach_OutOfBounds(t *testing.T) {
	gg := fromRows(t, "..")
	if _, _, err := gg.MinBreach(Position{-1, 0}, Position{1, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("from=-1: got %v; want ErrOutOfBounds", err)
	}
	if _, _, err := gg.MinBreach(Position{0, 0}, Position{2, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("to=2: got %v; want ErrOutOfBounds", err)
	}
}
