package sim

import (
	"testing"

	"github.com/hollybyte/skydrop/internal/engine/terrain"
	"github.com/hollybyte/skydrop/pkg/math"
)

type flatGround uint8

func (f flatGround) Dimensions() (int, int)   { return 4, 4 }
func (f flatGround) Intensity(x, y int) uint8 { return uint8(f) }

// ground returns a heightfield with uniform elevation.
func ground(elevation255 uint8) *terrain.Heightfield {
	return &terrain.Heightfield{
		Source:          flatGround(elevation255),
		HorizontalScale: 2,
		VerticalScale:   10,
	}
}

func TestStepIntegratesGravity(t *testing.T) {
	w := &World{Ground: ground(0)}
	w.Release(NewParcel(math.Vec3{X: 0, Y: 100, Z: 0}, nil))

	w.Step(1.0)

	p := w.Parcels[0]
	if p.Position.Y != 100-9.8 {
		t.Errorf("y after 1s = %v, want %v", p.Position.Y, 100-9.8)
	}
	if !p.Active {
		t.Error("parcel deactivated mid-air")
	}

	y1 := p.Position.Y
	w.Step(1.0)
	if got := w.Parcels[0].Position.Y; got != y1-9.8 {
		t.Errorf("y after 2s = %v, want %v", got, y1-9.8)
	}
}

func TestStepTerrainImpact(t *testing.T) {
	// Uniform elevation 10; parcel crosses it during the tick.
	w := &World{Ground: ground(255)}
	w.Release(NewParcel(math.Vec3{X: 0, Y: 15, Z: 0}, nil))

	w.Step(1.0) // y: 15 -> 5.2, below elevation 10

	if w.Parcels[0].Active {
		t.Error("parcel still active below terrain")
	}
	if w.Score != 0 {
		t.Errorf("terrain impact scored: %d", w.Score)
	}
}

func TestStepOutsideTerrainSquareFallsToZero(t *testing.T) {
	// Outside the 200-unit square the ground is flat at 0, regardless of
	// the elevation image.
	w := &World{Ground: ground(255)}
	w.Release(NewParcel(math.Vec3{X: 500, Y: 5, Z: 0}, nil))

	w.Step(0.1)
	if !w.Parcels[0].Active {
		t.Error("parcel deactivated above flat fallback ground")
	}
}

func TestStepHit(t *testing.T) {
	w := &World{Ground: ground(0)}
	w.Targets = append(w.Targets, NewTarget(math.Vec3{X: 0, Y: 1, Z: 0.9}, nil, nil))

	p := NewParcel(math.Vec3{X: 0, Y: 1, Z: 0}, nil)
	p.Velocity = math.Vec3{} // hold position, distance 0.9 < 0.5+2.5
	w.Release(p)

	hits := w.Step(1.0)

	if hits != 1 {
		t.Errorf("Step() = %d hits, want 1", hits)
	}
	if w.Score != 1 {
		t.Errorf("score = %d, want 1", w.Score)
	}
	if w.Parcels[0].Active {
		t.Error("parcel still active after hit")
	}
	if w.Targets[0].Active {
		t.Error("target still active after hit")
	}
}

func TestStepMissAtExactRadiusSum(t *testing.T) {
	w := &World{Ground: ground(0)}
	w.Targets = append(w.Targets, NewTarget(math.Vec3{X: 0, Y: 1, Z: 3.0}, nil, nil))

	p := NewParcel(math.Vec3{X: 0, Y: 1, Z: 0}, nil)
	p.Velocity = math.Vec3{}
	w.Release(p)

	if hits := w.Step(1.0); hits != 0 {
		t.Errorf("touching at exactly the radius sum scored %d hits", hits)
	}
	if !w.Parcels[0].Active || !w.Targets[0].Active {
		t.Error("miss deactivated parcel or target")
	}
	if w.Score != 0 {
		t.Errorf("score = %d, want 0", w.Score)
	}
}

func TestStepTerrainImpactBeatsTargetOverlap(t *testing.T) {
	// Post-integration the parcel is both below the terrain and within
	// collision range of a target. Impact must win and nothing may score.
	w := &World{Ground: ground(255)} // elevation 10 everywhere inside
	w.Targets = append(w.Targets, NewTarget(math.Vec3{X: 0, Y: 6, Z: 0}, nil, nil))
	w.Release(NewParcel(math.Vec3{X: 0, Y: 15, Z: 0}, nil))

	hits := w.Step(1.0) // y -> 5.2: below 10, and 0.8 from the target

	if hits != 0 || w.Score != 0 {
		t.Errorf("scored through terrain: hits=%d score=%d", hits, w.Score)
	}
	if w.Parcels[0].Active {
		t.Error("parcel survived terrain impact")
	}
	if !w.Targets[0].Active {
		t.Error("target deactivated by terrain impact")
	}
}

func TestStepAtMostOneTargetPerParcel(t *testing.T) {
	w := &World{Ground: ground(0)}
	// Two overlapping targets both in range.
	w.Targets = append(w.Targets,
		NewTarget(math.Vec3{X: 0, Y: 1, Z: 0.5}, nil, nil),
		NewTarget(math.Vec3{X: 0, Y: 1, Z: -0.5}, nil, nil),
	)
	p := NewParcel(math.Vec3{X: 0, Y: 1, Z: 0}, nil)
	p.Velocity = math.Vec3{}
	w.Release(p)

	if hits := w.Step(1.0); hits != 1 {
		t.Errorf("one parcel credited %d targets", hits)
	}
	if w.Score != 1 {
		t.Errorf("score = %d, want 1", w.Score)
	}
	active := 0
	for _, tgt := range w.Targets {
		if tgt.Active {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d targets still active, want 1", active)
	}
}

func TestStepInactiveParcelIsInert(t *testing.T) {
	w := &World{Ground: ground(0)}
	w.Targets = append(w.Targets, NewTarget(math.Vec3{X: 0, Y: 1, Z: 0}, nil, nil))

	p := NewParcel(math.Vec3{X: 0, Y: 1, Z: 0}, nil)
	p.Velocity = math.Vec3{}
	w.Release(p)

	w.Step(1.0)
	if w.Score != 1 {
		t.Fatalf("setup hit failed: score %d", w.Score)
	}

	// Re-activate the target: the spent parcel must never score again,
	// and its position must stop integrating.
	w.Targets[0].Active = true
	pos := w.Parcels[0].Position
	for i := 0; i < 5; i++ {
		w.Step(1.0)
	}
	if w.Score != 1 {
		t.Errorf("inactive parcel re-scored: %d", w.Score)
	}
	if w.Parcels[0].Position != pos {
		t.Error("inactive parcel kept moving")
	}
}

func TestReleaseDefaults(t *testing.T) {
	p := NewParcel(math.Vec3{X: 1, Y: 2, Z: 3}, nil)
	if p.Velocity != Gravity {
		t.Errorf("velocity = %v, want %v", p.Velocity, Gravity)
	}
	if p.Radius != ParcelRadius {
		t.Errorf("radius = %v, want %v", p.Radius, float32(ParcelRadius))
	}
	if !p.Active {
		t.Error("new parcel not active")
	}
}

func TestPlaceTargetGroundsOnTerrain(t *testing.T) {
	g := ground(255) // uniform elevation 10
	tgt := PlaceTarget(g, 15, -10, nil, nil)

	if want := g.HeightAt(15, -10) + GroundClearance; tgt.Position.Y != want {
		t.Errorf("placed y = %v, want %v", tgt.Position.Y, want)
	}
	if tgt.Position.X != 15 || tgt.Position.Z != -10 {
		t.Errorf("placed at (%v, %v), want (15, -10)", tgt.Position.X, tgt.Position.Z)
	}
	if tgt.Radius != TargetRadius {
		t.Errorf("radius = %v, want %v", tgt.Radius, float32(TargetRadius))
	}
	if !tgt.Active {
		t.Error("placed target not active")
	}
}

func TestDecorationsResolve(t *testing.T) {
	d := Decorations{}
	d.Add("tree", nil, math.Vec3{X: 0, Y: 14, Z: 0})
	d.Add("tree", nil, math.Vec3{X: 3.5, Y: 5, Z: 4.6})

	placed := d.Resolve("tree", math.Vec3{X: 20, Y: 1, Z: 20})
	if len(placed) != 2 {
		t.Fatalf("Resolve() = %d placements, want 2", len(placed))
	}
	if placed[0].Position != (math.Vec3{X: 20, Y: 15, Z: 20}) {
		t.Errorf("star position = %v", placed[0].Position)
	}
	if placed[1].Position != (math.Vec3{X: 23.5, Y: 6, Z: 24.6}) {
		t.Errorf("ball position = %v", placed[1].Position)
	}

	if got := d.Resolve("nothing", math.Vec3{}); got != nil {
		t.Errorf("unknown anchor resolved to %v", got)
	}
}
