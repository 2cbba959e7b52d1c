package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func near(a, b Vec3) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestVec3Ops(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{-1, 0.5, 2}

	if got := v.Add(w); got != (Vec3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", got)
	}
	if got := v.Sub(w); got != (Vec3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", got)
	}
	if got := v.Mul(w); got != (Vec3{-1, 1, 6}) {
		t.Fatalf("Mul mismatch: %+v", got)
	}
	if got := v.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Fatalf("Scale mismatch: %+v", got)
	}
	if got := v.Div(2); got != (Vec3{0.5, 1, 1.5}) {
		t.Fatalf("Div mismatch: %+v", got)
	}
	if got := v.Dot(w); got != 6 {
		t.Fatalf("Dot mismatch: %v", got)
	}
	if got := Splat(4); got != (Vec3{4, 4, 4}) {
		t.Fatalf("Splat mismatch: %+v", got)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if !near(n, Vec3{0.6, 0, 0.8}) {
		t.Fatalf("Normalize mismatch: %+v", n)
	}
	if math32.Abs(n.Len()-1) > eps {
		t.Fatalf("Normalize not unit: %v", n.Len())
	}

	z := Vec3{}.Normalize()
	if !z.IsZero() {
		t.Fatalf("zero vector should normalize to zero, got %+v", z)
	}
	for i := 0; i < 3; i++ {
		if math32.IsNaN(z[i]) {
			t.Fatalf("NaN in normalized zero vector: %+v", z)
		}
	}
}

func TestRotations(t *testing.T) {
	half := math32.Pi / 2
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"x keeps x", Vec3{1, 0, 0}.RotateX(half), Vec3{1, 0, 0}},
		{"x takes y to z", Vec3{0, 1, 0}.RotateX(half), Vec3{0, 0, 1}},
		{"x takes z to -y", Vec3{0, 0, 1}.RotateX(half), Vec3{0, -1, 0}},
		{"y keeps y", Vec3{0, 1, 0}.RotateY(half), Vec3{0, 1, 0}},
		{"y takes z to x", Vec3{0, 0, 1}.RotateY(half), Vec3{1, 0, 0}},
		{"y takes x to -z", Vec3{1, 0, 0}.RotateY(half), Vec3{0, 0, -1}},
		{"zero angle", Vec3{1, 2, 3}.RotateY(0).RotateX(0), Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !near(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestRotationKeepsLength(t *testing.T) {
	v := Vec3{1, -2, 0.5}
	r := v.RotateX(0.7).RotateY(-1.3)
	if math32.Abs(r.Len()-v.Len()) > eps {
		t.Fatalf("rotation changed length: %v -> %v", v.Len(), r.Len())
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); math32.Abs(got-math32.Pi) > eps {
		t.Fatalf("Deg2Rad(180) = %v", got)
	}
	if got := Rad2Deg(math32.Pi / 4); math32.Abs(got-45) > 1e-4 {
		t.Fatalf("Rad2Deg(pi/4) = %v", got)
	}
}
