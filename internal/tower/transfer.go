package tower

import (
	"context"

	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
)

type transferKind int

const (
	transferRepair transferKind = iota
	transferFeed
	transferAttack
)

func (k transferKind) String() string {
	switch k {
	case transferRepair:
		return "repair"
	case transferFeed:
		return "feed"
	case transferAttack:
		return "attack"
	default:
		return "unknown"
	}
}

type relation int

const (
	relationFriend relation = iota
	relationEnemy
)

// transferRule matches a firing actor by relation and held weapon. Rules are
// evaluated in slice order and the first match wins; the actor's role only
// scales the amount and cooldown.
type transferRule struct {
	kind     transferKind
	relation relation
	weapon   func(world.TowerConfig) state.Weapon
	applies  func(t *Tower, actor world.Actor) bool
	apply    func(t *Tower, ctx context.Context, env *world.Env, actor world.Actor)
}

var transferRules = []transferRule{
	{
		kind:     transferRepair,
		relation: relationFriend,
		weapon:   world.TowerConfig.RepairWeaponKind,
		applies: func(t *Tower, _ world.Actor) bool {
			return t.health < t.env.Config.Tower.MaxHealth
		},
		apply: (*Tower).repair,
	},
	{
		kind:     transferFeed,
		relation: relationFriend,
		weapon:   world.TowerConfig.FeedWeaponKind,
		applies: func(_ *Tower, actor world.Actor) bool {
			return actor.Armor() > 0
		},
		apply: (*Tower).feed,
	},
	{
		kind:     transferAttack,
		relation: relationEnemy,
		weapon:   world.TowerConfig.FeedWeaponKind,
		apply:    (*Tower).attack,
	},
}

func (r transferRule) matches(t *Tower, cfg world.TowerConfig, actor world.Actor, rel relation) bool {
	if r.relation != rel || actor.Weapon() != r.weapon(cfg) {
		return false
	}
	return r.applies == nil || r.applies(t, actor)
}

// serviceActors applies at most one transfer per firing actor in reach whose
// cooldown has elapsed.
func (t *Tower) serviceActors(ctx context.Context, env *world.Env) {
	if env.Index == nil {
		return
	}
	cfg := env.Config.Tower
	tick := env.Tick()
	reach := t.radius + cfg.InteractMargin
	for _, actor := range env.Index.FindActors(t.pos, reach) {
		if t.health <= 0 {
			return
		}
		if actor == nil || !actor.Input().Fire {
			continue
		}
		if actor.LastFixTick()+t.fixInterval(env, actor) > tick {
			continue
		}
		rel := relationEnemy
		if actor.Team() == t.team {
			rel = relationFriend
		}
		for _, rule := range transferRules {
			if !rule.matches(t, cfg, actor, rel) {
				continue
			}
			rule.apply(t, ctx, env, actor)
			actor.SetLastFixTick(tick)
			break
		}
	}
}

// fixInterval is the cooldown between two transfers of actor. Engineers
// holding the repair weapon work twice as fast.
func (t *Tower) fixInterval(env *world.Env, actor world.Actor) int64 {
	cfg := env.Config.Tower
	interval := env.Ticks(cfg.FixInterval)
	if actor.Role() == state.RoleEngineer && actor.Weapon() == cfg.RepairWeaponKind() {
		interval /= 2
	}
	return interval
}

func (t *Tower) repair(_ context.Context, env *world.Env, actor world.Actor) {
	amount := env.Config.Tower.HammerFixHealth
	if actor.Role() == state.RoleEngineer {
		amount *= 2
	}
	t.TakeFix(amount, actor.ID())
}

func (t *Tower) feed(ctx context.Context, env *world.Env, actor world.Actor) {
	cfg := env.Config.Tower
	effects := env.Sink()
	actor.SetArmor(actor.Armor() - 1)
	t.giveArmor++
	effects.Sound(t.pos, state.SoundPickupArmor)
	if t.giveArmor < cfg.FeedThreshold {
		return
	}
	t.laserArmor += cfg.FeedReward
	t.giveArmor = 0
	effects.Sound(t.pos, state.SoundRifleFire)
	msg := laserArmorMessage(t.laserArmor)
	effects.Chat(actor.ID(), msg)
	t.broadcastEngineers(env, msg)
	t.logLaserArmor(ctx, logging.PlayerRef(int(actor.ID())), transferFeed.String())
}

func (t *Tower) attack(ctx context.Context, env *world.Env, actor world.Actor) {
	cfg := env.Config.Tower
	if !t.Shielded() {
		t.TakeDamage(cfg.AttackDamage, actor.ID())
		return
	}
	t.giveArmor--
	if t.giveArmor > cfg.AttackThreshold {
		return
	}
	t.laserArmor--
	t.giveArmor = 0
	msg := laserArmorMessage(t.laserArmor)
	effects := env.Sink()
	effects.Chat(actor.ID(), msg)
	t.broadcastEngineers(env, msg)
	t.logLaserArmor(ctx, logging.PlayerRef(int(actor.ID())), transferAttack.String())
}

// broadcastEngineers tells every engineer on the tower's team about a charge
// change.
func (t *Tower) broadcastEngineers(env *world.Env, msg world.Message) {
	if env.Actors == nil {
		return
	}
	effects := env.Sink()
	for _, actor := range env.Actors.Actors() {
		if actor.Team() == t.team && actor.Role() == state.RoleEngineer {
			effects.Broadcast(actor.ID(), msg)
		}
	}
}

func laserArmorMessage(charges int) world.Message {
	return world.Message{
		Template: "Laser Armor: {int:Num}",
		Args:     map[string]any{"Num": charges},
	}
}

func lowHealthMessage(team state.Team) world.Message {
	return world.Message{
		Template: "The {str:Team} tower is under heavy fire!",
		Args:     map[string]any{"Team": team.String()},
	}
}
