package sim

import (
	"github.com/Bamcane/teeworlds-teewar/internal/tower"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// spatialIndex answers proximity queries with linear scans. The arena holds a
// few dozen bodies at most, so there is no bucketing.
type spatialIndex struct {
	players  *Registry
	towers   func() []*tower.Tower
	physSize float64
}

var _ world.SpatialIndex = (*spatialIndex)(nil)

// FindActors returns live players whose body overlaps the circle.
func (idx *spatialIndex) FindActors(center state.Vec2, radius float64) []world.Actor {
	var found []world.Actor
	for _, actor := range idx.players.Actors() {
		if state.Distance(center, actor.Position()) < radius+idx.physSize {
			found = append(found, actor)
		}
	}
	return found
}

func (idx *spatialIndex) IntersectActor(p0, p1 state.Vec2, radius float64, exclude world.Actor) (world.Actor, state.Vec2) {
	var (
		hit     world.Actor
		hitAt   state.Vec2
		closest = -1.0
	)
	for _, actor := range idx.players.Actors() {
		if exclude != nil && actor.ID() == exclude.ID() {
			continue
		}
		at, ok := world.SegmentHitsCircle(p0, p1, actor.Position(), radius+idx.physSize)
		if !ok {
			continue
		}
		if d := state.Distance(p0, at); closest < 0 || d < closest {
			hit, hitAt, closest = actor, at, d
		}
	}
	if hit == nil {
		return nil, state.Vec2{}
	}
	return hit, hitAt
}

// IntersectStructure skips towers of excludeTeam and towers that are already
// down.
func (idx *spatialIndex) IntersectStructure(p0, p1 state.Vec2, radius float64, excludeTeam state.Team) (world.Structure, state.Vec2) {
	var (
		hit     *tower.Tower
		hitAt   state.Vec2
		closest = -1.0
	)
	for _, t := range idx.towers() {
		if t.Team() == excludeTeam || !t.Alive() {
			continue
		}
		at, ok := world.SegmentHitsCircle(p0, p1, t.Position(), radius+t.Radius())
		if !ok {
			continue
		}
		if d := state.Distance(p0, at); closest < 0 || d < closest {
			hit, hitAt, closest = t, at, d
		}
	}
	if hit == nil {
		return nil, state.Vec2{}
	}
	return hit, hitAt
}

// towersInRange lists towers whose body overlaps the circle, any team.
func (idx *spatialIndex) towersInRange(center state.Vec2, radius float64) []*tower.Tower {
	var found []*tower.Tower
	for _, t := range idx.towers() {
		if state.Distance(center, t.Position()) < radius+t.Radius() {
			found = append(found, t)
		}
	}
	return found
}
