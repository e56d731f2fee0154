package sldsphere

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestProfileSharpShells(t *testing.T) {
	s := Stack{
		{SLD: 5, Thickness: 10},
		{SLD: 2, Thickness: 5},
	}
	want := []ProfilePoint{
		{0, 5}, {10, 5},
		{10, 2}, {15, 2},
		{15, 1}, {18, 1},
	}
	if diff := cmp.Diff(want, s.Profile(1, 35), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileLinearInterface(t *testing.T) {
	s := Stack{{SLD: 4, Thickness: 10, Interface: 4, Shape: ShapeRPow, Nu: 1}}
	want := []ProfilePoint{
		{0, 4}, {10, 4},
		{11, 3}, {12, 2}, {13, 1}, {14, 0},
		{14 * ProfileOvershoot, 0},
	}
	got := s.Profile(0, 4)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileEmpty(t *testing.T) {
	if p := (Stack{}).Profile(1, 10); p != nil {
		t.Fatalf("want nil, got %v", p)
	}
}
