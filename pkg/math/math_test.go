package math

import "testing"

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
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

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{0, 1, 0}
	b := Vec3{0, 1, 0.9}
	got := a.Distance(b)
	if got < 0.899 || got > 0.901 {
		t.Errorf("Vec3.Distance() = %v, want 0.9", got)
	}
}

func TestIdentityTransform(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
	}
}

func TestTranslateTransform(t *testing.T) {
	m := Translate(10, 0, -5)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{11, 1, -4}
	if got != want {
		t.Errorf("Translate.TransformPoint() = %v, want %v", got, want)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then scale: scale applies to the point, translation after.
	m := Translate(1, 0, 0).Mul(Scale(2, 2, 2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{3, 0, 0}
	if got != want {
		t.Errorf("Mul order: got %v, want %v", got, want)
	}
}

func TestLookAtEye(t *testing.T) {
	// The eye position must map to the view-space origin.
	eye := Vec3{0, 10, 20}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	got := m.TransformPoint(eye)
	const eps = 1e-4
	if got.Length() > eps {
		t.Errorf("LookAt eye maps to %v, want origin", got)
	}
}
