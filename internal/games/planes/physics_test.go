package planes

import (
	"math"
	"testing"
)

func TestNewBodyTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name   string
		tx, ty float64
		wantX  int
		wantY  int
	}{
		{"positive fractions", 10.9, 3.7, 10, 3},
		{"negative fractions", -10.9, -3.7, -10, -3},
		{"just below one", 0.999, -0.999, 0, 0},
		{"whole numbers", 5.0, -8.0, 5, -8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(tc.tx, tc.ty)
			if b.X != tc.wantX || b.Y != tc.wantY {
				t.Errorf("display = (%d, %d), expected (%d, %d)", b.X, b.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestBodyAccelerate(t *testing.T) {
	b := NewBody(0, 0)

	b.Accelerate(0.5, 0)
	if b.VelX != 0.5 || b.VelY != 0 {
		t.Errorf("after thrust east: vel = (%v, %v), expected (0.5, 0)", b.VelX, b.VelY)
	}

	b.Accelerate(0.5, math.Pi/2)
	if math.Abs(b.VelY-0.5) > 1e-12 {
		t.Errorf("after thrust north: VelY = %v, expected 0.5", b.VelY)
	}
	// The eastward component is untouched
	if math.Abs(b.VelX-0.5) > 1e-12 {
		t.Errorf("thrust north should not change VelX, got %v", b.VelX)
	}
}

func TestBodyDrag(t *testing.T) {
	b := NewBody(0, 0)
	b.VelX = 10
	b.VelY = -4

	b.Drag(0.97)
	if b.VelX != 9.7 || b.VelY != -3.88 {
		t.Errorf("after drag: vel = (%v, %v), expected (9.7, -3.88)", b.VelX, b.VelY)
	}
}

func TestBodyDragConverges(t *testing.T) {
	b := NewBody(0, 0)
	b.VelX = 100
	b.VelY = 100

	for i := 0; i < 1000; i++ {
		b.Drag(0.95)
	}

	if b.Speed() > 1e-10 {
		t.Errorf("speed should decay to ~0 under repeated drag, got %v", b.Speed())
	}
}

func TestBodyMoveNormalizesFrameLength(t *testing.T) {
	// Velocity is in units per 1/60s frame: a full-rate tick displaces by
	// exactly the velocity, a half-rate tick by twice it.
	b := NewBody(0, 0)
	b.VelX = 3

	b.Move(1.0 / 60)
	if math.Abs(b.TrueX-3) > 1e-12 {
		t.Errorf("full-rate tick: TrueX = %v, expected 3", b.TrueX)
	}

	b.Move(1.0 / 30)
	if math.Abs(b.TrueX-9) > 1e-12 {
		t.Errorf("half-rate tick: TrueX = %v, expected 9", b.TrueX)
	}
}

func TestBodyMoveInvertsY(t *testing.T) {
	// Positive VelY means up, which is a decreasing screen y.
	b := NewBody(0, 100)
	b.VelY = 2

	b.Move(1.0 / 60)

	if math.Abs(b.TrueY-98) > 1e-12 {
		t.Errorf("TrueY = %v, expected 98", b.TrueY)
	}
	if b.Y != 98 {
		t.Errorf("display Y = %d, expected 98", b.Y)
	}
}

func TestBodyGravityPullsDown(t *testing.T) {
	b := NewBody(0, 0)

	b.Gravity(0.15)
	if b.VelY != -0.15 {
		t.Errorf("VelY = %v, expected -0.15", b.VelY)
	}

	// Downward velocity grows screen y
	b.Move(1.0 / 60)
	if b.TrueY <= 0 {
		t.Errorf("gravity should move the body down the screen, TrueY = %v", b.TrueY)
	}
}

func TestBodySpeed(t *testing.T) {
	b := NewBody(0, 0)
	b.VelX = 3
	b.VelY = 4

	if b.Speed() != 5 {
		t.Errorf("Speed() = %v, expected 5", b.Speed())
	}
}

func TestBodyMoveSyncsDisplay(t *testing.T) {
	b := NewBody(0.5, 0.5)
	b.VelX = 1

	// 0.5 + 1 = 1.5 truncates to 1
	b.Move(1.0 / 60)
	if b.X != 1 {
		t.Errorf("display X = %d, expected 1", b.X)
	}

	// Negative direction truncates toward zero, not down
	b.VelX = -2
	b.Move(1.0 / 60) // TrueX = -0.5
	if b.X != 0 {
		t.Errorf("display X = %d, expected 0", b.X)
	}
}
