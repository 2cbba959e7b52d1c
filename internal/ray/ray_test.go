package ray

import (
	"testing"

	"github.com/chewxy/math32"

	"voxcast/internal/mathutil"
)

func TestNewZeroComponentsUseSentinel(t *testing.T) {
	dirs := []mathutil.Vec3{
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, -1},
		mathutil.Vec3{1, 1, 0}.Normalize(),
		{0, 0, 0},
	}
	for _, d := range dirs {
		r := New(mathutil.Vec3{}, d)
		for i := 0; i < 3; i++ {
			inv := r.InvDir[i]
			if math32.IsNaN(inv) || math32.IsInf(inv, 0) {
				t.Fatalf("dir %v: InvDir[%d] = %v", d, i, inv)
			}
			if d[i] == 0 && inv != Huge {
				t.Fatalf("dir %v: InvDir[%d] = %v, want sentinel", d, i, inv)
			}
		}
	}
}

func TestSignBits(t *testing.T) {
	r := New(mathutil.Vec3{}, mathutil.Vec3{-1, 2, 0}.Normalize())
	if r.Sign != [3]int{1, 0, 0} {
		t.Fatalf("Sign = %v", r.Sign)
	}
	if r.InvSign != [3]int{0, 1, 1} {
		t.Fatalf("InvSign = %v", r.InvSign)
	}
	if math32.Abs(r.InvDir[0]*r.Direction[0]-1) > 1e-5 {
		t.Fatalf("InvDir[0] = %v is not the reciprocal of %v", r.InvDir[0], r.Direction[0])
	}
}

func TestAt(t *testing.T) {
	r := New(mathutil.Vec3{1, 2, 3}, mathutil.Vec3{0, 0, -1})
	if got := r.At(2.5); got != (mathutil.Vec3{1, 2, 0.5}) {
		t.Fatalf("At(2.5) = %v", got)
	}
	if got := r.At(0); got != r.Origin {
		t.Fatalf("At(0) = %v, want origin", got)
	}
}
