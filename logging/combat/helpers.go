package combat

import (
	"context"

	"github.com/Bamcane/teeworlds-teewar/logging"
)

const (
	// EventProjectileImpact is emitted when a projectile is destroyed by a hit.
	EventProjectileImpact logging.EventType = "combat.projectile_impact"
	// EventProjectileBounce is emitted when a shielded tower reflects a projectile.
	EventProjectileBounce logging.EventType = "combat.projectile_bounce"
	// EventProjectileExpired is emitted when a projectile runs out of lifespan
	// or leaves the playable region.
	EventProjectileExpired logging.EventType = "combat.projectile_expired"
)

// ProjectileImpactPayload describes what a projectile struck.
type ProjectileImpactPayload struct {
	Weapon    string  `json:"weapon"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Damage    int     `json:"damage"`
	Explosive bool    `json:"explosive,omitempty"`
	Geometry  bool    `json:"geometry,omitempty"`
}

// ProjectileBouncePayload captures the reflected trajectory.
type ProjectileBouncePayload struct {
	Weapon    string  `json:"weapon"`
	VelocityX float64 `json:"velocityX"`
	VelocityY float64 `json:"velocityY"`
	LifeSpan  int     `json:"lifeSpan"`
	Team      string  `json:"team"`
}

// ProjectileExpiredPayload records where a projectile ended without a hit.
type ProjectileExpiredPayload struct {
	Weapon    string  `json:"weapon"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Clipped   bool    `json:"clipped,omitempty"`
	Explosive bool    `json:"explosive,omitempty"`
}

// ProjectileImpact publishes an impact event.
func ProjectileImpact(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, targets []logging.EntityRef, payload ProjectileImpactPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventProjectileImpact,
		Tick:     tick,
		Actor:    actor,
		Targets:  targets,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}

// ProjectileBounce publishes a bounce event.
func ProjectileBounce(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, tower logging.EntityRef, payload ProjectileBouncePayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventProjectileBounce,
		Tick:     tick,
		Actor:    actor,
		Targets:  []logging.EntityRef{tower},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}

// ProjectileExpired publishes an expiry event.
func ProjectileExpired(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ProjectileExpiredPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventProjectileExpired,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}
