package sim

import "github.com/hollybyte/skydrop/internal/engine/terrain"

// World owns the mutable per-tick simulation state. A single Step pass is
// the only writer of parcel/target flags and the score, so the world
// needs no locking in a single-threaded host.
type World struct {
	Parcels []Parcel
	Targets []Target
	Ground  *terrain.Heightfield
	Score   int
}

// Release adds a new active parcel to the world.
func (w *World) Release(p Parcel) {
	w.Parcels = append(w.Parcels, p)
}

// Step advances every active parcel by dt seconds and resolves impacts.
// Returns the number of targets hit this tick.
//
// Per parcel: integrate position, then check terrain impact, then scan
// targets. Terrain impact wins over a simultaneous target overlap, and a
// parcel credits at most one target. Both lifecycle transitions are
// one-way; the score only ever grows.
func (w *World) Step(dt float32) int {
	hits := 0

	for i := range w.Parcels {
		p := &w.Parcels[i]
		if !p.Active {
			continue
		}

		p.Position = p.Position.Add(p.Velocity.Scale(dt))

		if p.Position.Y <= w.Ground.HeightAt(p.Position.X, p.Position.Z) {
			p.Active = false
			continue
		}

		for j := range w.Targets {
			t := &w.Targets[j]
			if !t.Active {
				continue
			}
			// Sphere overlap, strict: touching exactly at the radius sum
			// is a miss.
			if p.Position.Distance(t.Position) < p.Radius+t.Radius {
				t.Active = false
				p.Active = false
				w.Score++
				hits++
				break
			}
		}
	}

	return hits
}
