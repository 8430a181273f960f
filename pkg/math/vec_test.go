package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	if got := (Vec3{2, 3, 6}).Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Axis(t *testing.T) {
	v := Vec3{1, 2, 3}
	for i, want := range []float32{1, 2, 3} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %v, want %v", i, got, want)
		}
	}
	if got := v.WithAxis(1, 9); got != (Vec3{1, 9, 3}) {
		t.Errorf("WithAxis(1, 9) = %v", got)
	}
	if v.Y != 2 {
		t.Error("WithAxis mutated the receiver")
	}
}

func TestBounds(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Error("zero Bounds should be empty")
	}
	b.Extend(Vec3{1, 5, -2})
	b.Extend(Vec3{-3, 2, 4})
	b.Extend(Vec3{0, 0, 0})

	if b.Min != (Vec3{-3, 0, -2}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (Vec3{1, 5, 4}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Size() != (Vec3{4, 5, 6}) {
		t.Errorf("Size = %v", b.Size())
	}
}
