package core

import "testing"

func TestVectorAlgebra(t *testing.T) {
	a := V(123, 456)
	b := V(518, -297)

	tests := []struct {
		name     string
		got      Vector2
		expected Vector2
	}{
		{"add", a.Add(b), V(641, 159)},
		{"sub", a.Sub(b), V(-395, 753)},
		{"sub reversed", b.Sub(a), V(395, -753)},
		{"scale", a.Scale(3), V(369, 1368)},
		{"neg", a.Neg(), V(-123, -456)},
		{"transpose", a.Transpose(), V(456, 123)},
		{"reflect x", a.ReflectX(), V(-123, 456)},
		{"reflect y", a.ReflectY(), V(123, -456)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestVectorEquality(t *testing.T) {
	a := V(123, 456)

	if a != V(123, 456) {
		t.Error("Equal vectors should compare equal")
	}
	if a == V(124, 456) {
		t.Error("Different vectors should not compare equal")
	}

	// Usable as a map key
	seen := map[Vector2]bool{a: true}
	if !seen[V(123, 456)] {
		t.Error("Equal vectors should hash to the same map key")
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: Opposite twice should return the same direction", d)
		}
		if d.Opposite() == d {
			t.Errorf("%v: Opposite should differ", d)
		}
		if d.Unit().Add(d.Opposite().Unit()) != (Vector2{}) {
			t.Errorf("%v: unit vectors of opposites should cancel", d)
		}
	}
}

func TestDirectionUnit(t *testing.T) {
	expected := map[Direction]Vector2{
		Left:  V(-1, 0),
		Right: V(1, 0),
		Up:    V(0, 1),
		Down:  V(0, -1),
	}
	for d, v := range expected {
		if d.Unit() != v {
			t.Errorf("%v.Unit() = %v, expected %v", d, d.Unit(), v)
		}
	}

	if Direction(9).Valid() {
		t.Error("Direction(9) should not be valid")
	}
	if !Left.Horizontal() || Up.Horizontal() {
		t.Error("Horizontal() should hold for Left/Right only")
	}
}
