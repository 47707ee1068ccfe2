package geom

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	if got := a.Add(b); got != V2(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != V2(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := a.Mul(0.5); got != V2(1.5, 2) {
		t.Errorf("Mul = %v, want (1.5, 2)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := V2(0, 0).Distance(a); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestLerp(t *testing.T) {
	a := V2(0, 10)
	b := V2(20, -10)
	tests := []struct {
		t    float64
		want Vec2
	}{
		{0, a},
		{1, b},
		{0.5, V2(10, 0)},
		{2, V2(40, -30)},
	}
	for _, tt := range tests {
		if got := Lerp(a, b, tt.t); !got.Approx(tt.want, 1e-12) {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v    Vec2
		want bool
	}{
		{V2(1, 2), true},
		{V2(math.NaN(), 0), false},
		{V2(0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestWinding(t *testing.T) {
	a := V2(0, 0)
	b := V2(10, 0)
	above := V2(5, -3)
	below := V2(5, 3)

	if Winding(above, a, b)*Winding(below, a, b) >= 0 {
		t.Error("points on opposite sides should have opposite winding signs")
	}
	if got := Winding(V2(7, 0), a, b); got != 0 {
		t.Errorf("collinear winding = %v, want 0", got)
	}
	if got, want := Winding(above, b, a), -Winding(above, a, b); got != want {
		t.Errorf("reversed edge winding = %v, want %v", got, want)
	}
}

func TestIntersectionParam(t *testing.T) {
	got := IntersectionParam(V2(0, 0), V2(10, 0), V2(4, -5), V2(4, 5))
	if math.Abs(got-0.4) > 1e-12 {
		t.Errorf("IntersectionParam = %v, want 0.4", got)
	}

	par := IntersectionParam(V2(0, 0), V2(10, 0), V2(0, 1), V2(10, 1))
	if !math.IsInf(par, 0) && !math.IsNaN(par) {
		t.Errorf("parallel IntersectionParam = %v, want Inf or NaN", par)
	}
}

func TestProjectOntoNormalAtHead(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 Vec2
		want   Vec2
	}{
		{"vertical", V2(3, 5), V2(0, -10), V2(3, -10)},
		{"horizontal", V2(3, 5), V2(4, 0), V2(4, 5)},
		{"diagonal head", V2(1, 1), V2(1, 1), V2(1, 1)},
		{"diagonal", V2(0, 0), V2(2, 2), V2(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectOntoNormalAtHead(tt.v1, tt.v2)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("got = %v, want %v", got, tt.want)
			}
			// The projection must lie on the normal line through the head.
			if d := got.Sub(tt.v2).Dot(tt.v2); math.Abs(d) > 1e-9 {
				t.Errorf("projection off the normal line, dot = %v", d)
			}
		})
	}
}
