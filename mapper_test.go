package fractal

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestPixelToPlane_Formula(t *testing.T) {
	v, err := NewView(100)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		coord int
		want  float64
	}{
		{0, -2},
		{50, 0},
		{25, -1},
		{75, 1},
	}
	for _, tt := range tests {
		got, err := PixelToPlane(tt.coord, v, 0)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-tt.want) > eps {
			t.Errorf("PixelToPlane(%d) = %v, want %v", tt.coord, got, tt.want)
		}
	}
}

func TestPixelToPlane_ZoomAndOrigin(t *testing.T) {
	v, _ := NewView(100)
	v = v.Pan(Complex{R: -0.5, I: 0.25})
	v.Magnification = 4

	got, err := v.PixelToPoint(0, 100)
	if err != nil {
		t.Fatal(err)
	}
	want := Complex{R: -2.0/4 - 0.5, I: 2.0/4 + 0.25}
	if !near(got, want, eps) {
		t.Errorf("PixelToPoint(0,100) = %v, want %v", got, want)
	}
}

func TestPixelToPlane_RoundTrip(t *testing.T) {
	views := []View{}
	for _, size := range []int{1, 7, 64, 333} {
		v, err := NewView(size)
		if err != nil {
			t.Fatal(err)
		}
		views = append(views, v, v.Pan(Complex{R: -0.75, I: 0.1}).Zoom(9))
	}

	for _, v := range views {
		for y := 0; y < v.Size; y++ {
			for x := 0; x < v.Size; x++ {
				p, err := v.PixelToPoint(x, y)
				if err != nil {
					t.Fatal(err)
				}
				gx, gy, err := v.PointToPixel(p)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(gx-float64(x)) > 1e-6 || math.Abs(gy-float64(y)) > 1e-6 {
					t.Fatalf("size %d: (%d,%d) -> %v -> (%v,%v)", v.Size, x, y, p, gx, gy)
				}
			}
		}
	}
}

func TestPixelToPlane_InvalidConfiguration(t *testing.T) {
	v, _ := NewView(10)

	zero := v
	zero.Size = 0
	if _, err := PixelToPlane(0, zero, 0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("size 0: err = %v, want ErrInvalidConfiguration", err)
	}
	if _, _, err := zero.PointToPixel(Complex{}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("PointToPixel size 0: err = %v, want ErrInvalidConfiguration", err)
	}

	flat := v
	flat.Magnification = 0
	if _, err := PlaneAxis(flat, 0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("magnification 0: err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestPlaneAxis_MatchesPixelToPlane(t *testing.T) {
	v, _ := NewView(37)
	v = v.Pan(Complex{R: 0.3, I: -1.1}).Zoom(3)

	axis, err := PlaneAxis(v, v.OriginY)
	if err != nil {
		t.Fatal(err)
	}
	if len(axis) != v.Size {
		t.Fatalf("len(axis) = %d, want %d", len(axis), v.Size)
	}
	for i, got := range axis {
		want, _ := PixelToPlane(i, v, v.OriginY)
		if got != want {
			t.Errorf("axis[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestPixelFromGlobal(t *testing.T) {
	got := PixelFromGlobal(image.Pt(530, 40), image.Pt(500, 0))
	if got != image.Pt(30, 40) {
		t.Errorf("PixelFromGlobal = %v, want (30,40)", got)
	}
}
