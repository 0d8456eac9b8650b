// Package camera provides the two view modes of the game.
package camera

import "github.com/hollybyte/skydrop/pkg/math"

// Camera produces an eye position and view matrix for a followed target.
type Camera interface {
	Eye(target math.Vec3) math.Vec3
	ViewMatrix(target math.Vec3) math.Mat4
}

// Chase follows the target from behind and above, looking at it.
type Chase struct {
	Lift float32 // height above the target
	Back float32 // distance behind the target along +Z
}

// NewChase returns a chase camera with the standard follow offset.
func NewChase() *Chase {
	return &Chase{Lift: 10, Back: 20}
}

// Eye returns the camera position for the given target.
func (c *Chase) Eye(target math.Vec3) math.Vec3 {
	return target.Add(math.Vec3{Y: c.Lift, Z: c.Back})
}

// ViewMatrix returns the view matrix looking at the target.
func (c *Chase) ViewMatrix(target math.Vec3) math.Mat4 {
	eye := c.Eye(target)
	return math.LookAt(eye, target, math.Vec3{Y: 1})
}

// Bombsight hangs below the target and looks straight down, with -Z as
// screen-up so world forward stays up on screen while aiming.
type Bombsight struct {
	Drop float32 // distance below the target
}

// NewBombsight returns a bombsight camera with the standard drop.
func NewBombsight() *Bombsight {
	return &Bombsight{Drop: 6}
}

// Eye returns the camera position for the given target.
func (b *Bombsight) Eye(target math.Vec3) math.Vec3 {
	return target.Sub(math.Vec3{Y: b.Drop})
}

// ViewMatrix returns the straight-down view matrix.
func (b *Bombsight) ViewMatrix(target math.Vec3) math.Mat4 {
	eye := b.Eye(target)
	down := eye.Add(math.Vec3{Y: -1})
	return math.LookAt(eye, down, math.Vec3{Z: -1})
}
