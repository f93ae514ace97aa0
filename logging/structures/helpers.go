package structures

import (
	"context"

	"github.com/Bamcane/teeworlds-teewar/logging"
)

const (
	EventTowerDamaged     logging.EventType = "structures.tower_damaged"
	EventTowerDestroyed   logging.EventType = "structures.tower_destroyed"
	EventTowerRepaired    logging.EventType = "structures.tower_repaired"
	EventTowerLowHealth   logging.EventType = "structures.tower_low_health"
	EventTowerReset       logging.EventType = "structures.tower_reset"
	EventLaserArmorChange logging.EventType = "structures.laser_armor_changed"
)

// HealthPayload reports a health change.
type HealthPayload struct {
	Amount    int `json:"amount"`
	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`
}

// LaserArmorPayload reports a laser armor change and its cause.
type LaserArmorPayload struct {
	Reason     string `json:"reason"`
	LaserArmor int    `json:"laserArmor"`
	GiveArmor  int    `json:"giveArmor"`
}

func publish(ctx context.Context, pub logging.Publisher, event logging.Event) {
	if pub == nil {
		return
	}
	event.Category = logging.CategoryStructures
	pub.Publish(ctx, event)
}

// TowerDamaged publishes a damage event; actor is the attacker.
func TowerDamaged(ctx context.Context, pub logging.Publisher, tick uint64, actor, tower logging.EntityRef, payload HealthPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventTowerDamaged,
		Tick:     tick,
		Actor:    actor,
		Targets:  []logging.EntityRef{tower},
		Severity: logging.SeverityDebug,
		Payload:  payload,
	})
}

// TowerDestroyed publishes the transition into the destruction sequence.
func TowerDestroyed(ctx context.Context, pub logging.Publisher, tick uint64, actor, tower logging.EntityRef) {
	publish(ctx, pub, logging.Event{
		Type:     EventTowerDestroyed,
		Tick:     tick,
		Actor:    actor,
		Targets:  []logging.EntityRef{tower},
		Severity: logging.SeverityInfo,
	})
}

// TowerRepaired publishes a fix event; actor is the repairing player.
func TowerRepaired(ctx context.Context, pub logging.Publisher, tick uint64, actor, tower logging.EntityRef, payload HealthPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventTowerRepaired,
		Tick:     tick,
		Actor:    actor,
		Targets:  []logging.EntityRef{tower},
		Severity: logging.SeverityDebug,
		Payload:  payload,
	})
}

// TowerLowHealth publishes the rate limited low health warning.
func TowerLowHealth(ctx context.Context, pub logging.Publisher, tick uint64, tower logging.EntityRef, payload HealthPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventTowerLowHealth,
		Tick:     tick,
		Actor:    tower,
		Severity: logging.SeverityWarn,
		Payload:  payload,
	})
}

// TowerReset publishes a round reset.
func TowerReset(ctx context.Context, pub logging.Publisher, tick uint64, tower logging.EntityRef) {
	publish(ctx, pub, logging.Event{
		Type:     EventTowerReset,
		Tick:     tick,
		Actor:    tower,
		Severity: logging.SeverityInfo,
	})
}

// LaserArmorChanged publishes a shield charge change.
func LaserArmorChanged(ctx context.Context, pub logging.Publisher, tick uint64, actor, tower logging.EntityRef, payload LaserArmorPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventLaserArmorChange,
		Tick:     tick,
		Actor:    actor,
		Targets:  []logging.EntityRef{tower},
		Severity: logging.SeverityInfo,
		Payload:  payload,
	})
}
