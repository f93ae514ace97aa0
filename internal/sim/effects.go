package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

const effectsMetricKey = "sim_effects_total"

// EffectKind tags a recorded side effect.
type EffectKind string

const (
	EffectSound       EffectKind = "sound"
	EffectGlobalSound EffectKind = "globalSound"
	EffectDamageSound EffectKind = "damageSound"
	EffectExplosion   EffectKind = "explosion"
	EffectEmoticon    EffectKind = "emoticon"
	EffectChat        EffectKind = "chat"
	EffectBroadcast   EffectKind = "broadcast"
	EffectSpawnMarker EffectKind = "spawnMarker"
)

// Effect is one fire-and-forget event forwarded to viewers with the next
// frame.
type Effect struct {
	Kind     EffectKind    `json:"kind"`
	X        float64       `json:"x,omitempty"`
	Y        float64       `json:"y,omitempty"`
	Sound    state.SoundID `json:"sound,omitempty"`
	Target   state.ActorID `json:"target"`
	Emoticon int           `json:"emoticon,omitempty"`
	Text     string        `json:"text,omitempty"`
}

// effectRecorder buffers effects for the current step and resolves explosion
// damage on the spot.
type effectRecorder struct {
	env     *world.Env
	index   *spatialIndex
	metrics telemetry.Metrics
	pending []Effect
}

var _ world.EffectSink = (*effectRecorder)(nil)

func (r *effectRecorder) record(effect Effect) {
	r.pending = append(r.pending, effect)
	if r.metrics != nil {
		r.metrics.Add(effectsMetricKey, 1)
	}
}

func (r *effectRecorder) Sound(pos state.Vec2, sound state.SoundID) {
	r.record(Effect{Kind: EffectSound, X: pos.X(), Y: pos.Y(), Sound: sound, Target: state.NoActor})
}

func (r *effectRecorder) GlobalSound(sound state.SoundID) {
	r.record(Effect{Kind: EffectGlobalSound, Sound: sound, Target: state.NoActor})
}

func (r *effectRecorder) DamageSound(to state.ActorID) {
	r.record(Effect{Kind: EffectDamageSound, Sound: state.SoundHit, Target: to})
}

func (r *effectRecorder) Emoticon(actor state.ActorID, emoticon state.Emoticon) {
	r.record(Effect{Kind: EffectEmoticon, Target: actor, Emoticon: int(emoticon)})
}

func (r *effectRecorder) Chat(target state.ActorID, msg world.Message) {
	r.record(Effect{Kind: EffectChat, Target: target, Text: FormatMessage(msg)})
}

func (r *effectRecorder) Broadcast(target state.ActorID, msg world.Message) {
	r.record(Effect{Kind: EffectBroadcast, Target: target, Text: FormatMessage(msg)})
}

func (r *effectRecorder) SpawnMarker(pos state.Vec2) {
	r.record(Effect{Kind: EffectSpawnMarker, X: pos.X(), Y: pos.Y(), Target: state.NoActor})
}

// Explosion records the blast and, unless it is cosmetic, deals falloff
// damage to every character and tower it reaches.
func (r *effectRecorder) Explosion(req world.ExplosionRequest) {
	r.record(Effect{Kind: EffectExplosion, X: req.Pos.X(), Y: req.Pos.Y(), Target: req.Attacker})
	if req.NoDamage || r.index == nil {
		return
	}
	cfg := r.env.Config.Explosion
	for _, actor := range r.index.FindActors(req.Pos, cfg.Radius) {
		diff := actor.Position().Sub(req.Pos)
		dir := state.Vec2{0, 1}
		if l := diff.Len(); l > 0 {
			dir = diff.Mul(1 / l)
		}
		damage := cfg.MaxDamage * falloff(cfg, diff.Len())
		if int(damage) > 0 {
			actor.TakeDamage(dir.Mul(damage*2), int(damage), req.Attacker, req.Weapon)
		}
	}
	for _, t := range r.index.towersInRange(req.Pos, cfg.Radius) {
		edge := math.Max(state.Distance(req.Pos, t.Position())-t.Radius(), 0)
		damage := cfg.MaxDamage * falloff(cfg, edge)
		if int(damage) > 0 {
			t.TakeDamage(int(damage), req.Attacker)
		}
	}
}

func falloff(cfg world.ExplosionConfig, distance float64) float64 {
	span := cfg.Radius - cfg.InnerRadius
	if span <= 0 {
		return 1
	}
	return 1 - world.Clamp((distance-cfg.InnerRadius)/span, 0, 1)
}

// drain hands over the effects recorded since the previous call.
func (r *effectRecorder) drain() []Effect {
	out := r.pending
	r.pending = nil
	return out
}

// FormatMessage expands {int:Name} and {str:Name} placeholders.
func FormatMessage(msg world.Message) string {
	text := msg.Template
	for name, value := range msg.Args {
		rendered := fmt.Sprint(value)
		text = strings.ReplaceAll(text, "{int:"+name+"}", rendered)
		text = strings.ReplaceAll(text, "{str:"+name+"}", rendered)
	}
	return text
}
