package planes

import "math"

// frameRateBase is the reference frame rate the velocity units are expressed
// in: a velocity of 1 means 1 world unit per 1/60-second frame. Move scales
// displacement by dt*frameRateBase so real frame length never changes speed
// in world units per second.
const frameRateBase = 60.0

// minFrameSeconds is the minimum tick interval the platform paces to.
const minFrameSeconds = 1.0 / frameRateBase

// Body is the kinematic state shared by every entity. It keeps a float
// "true" position for physics and an integer display position derived by
// truncation toward zero; collision boxes and rendering consume only the
// display position. Each entity owns its Body exclusively.
type Body struct {
	TrueX, TrueY float64
	X, Y         int // Display position, always the truncation of the true position
	VelX, VelY   float64
}

// NewBody creates a body at the given true position with zero velocity.
func NewBody(x, y float64) Body {
	b := Body{TrueX: x, TrueY: y}
	b.syncDisplay()
	return b
}

// Accelerate adds a velocity impulse of the given magnitude along angle.
// Velocity is unbounded; drag is the only counterbalance.
func (b *Body) Accelerate(magnitude, angle float64) {
	b.VelX += magnitude * math.Cos(angle)
	b.VelY += magnitude * math.Sin(angle)
}

// Drag scales both velocity components by the coefficient (0, 1].
// Lower coefficients mean more drag.
func (b *Body) Drag(coefficient float64) {
	b.VelX *= coefficient
	b.VelY *= coefficient
}

// Gravity accelerates the body downward. Only the player receives gravity.
func (b *Body) Gravity(accel float64) {
	b.VelY -= accel
}

// Move integrates one tick of motion. Displacement is velocity scaled by the
// elapsed frame length normalized to the 60fps baseline.
func (b *Body) Move(frameLength float64) {
	b.shift(b.VelX*frameLength*frameRateBase, b.VelY*frameLength*frameRateBase)
}

// shift displaces the true position on a y-up coordinate plane: positive dy
// moves the body up, which is a decreasing screen y.
func (b *Body) shift(dx, dy float64) {
	b.TrueX += dx
	b.TrueY -= dy
	b.syncDisplay()
}

// syncDisplay truncates the true position toward zero per axis.
func (b *Body) syncDisplay() {
	b.X = int(b.TrueX)
	b.Y = int(b.TrueY)
}

// Speed returns the current velocity magnitude.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VelX, b.VelY)
}
