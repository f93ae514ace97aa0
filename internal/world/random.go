package world

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sync"

	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// DeterministicSeedValue derives a stable non-zero seed for label under rootSeed.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewDeterministicRNG returns a private random stream so that replaying the
// same seed reproduces every cosmetic roll of one entity.
func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	seedValue := DeterministicSeedValue(rootSeed, label)
	return rand.New(rand.NewSource(seedValue))
}

// fallback serves callers without a private stream.
var fallback = struct {
	sync.Mutex
	rng *rand.Rand
}{rng: NewDeterministicRNG(DefaultSeed, "world")}

// RandomFloat draws from rng, or from the shared world stream when rng is nil.
func RandomFloat(rng *rand.Rand) float64 {
	if rng == nil {
		fallback.Lock()
		defer fallback.Unlock()
		return fallback.rng.Float64()
	}
	return rng.Float64()
}

func RandomAngle(rng *rand.Rand) float64 {
	return RandomFloat(rng) * 2 * math.Pi
}

// RandomProb rolls a chance in [0, 1].
func RandomProb(rng *rand.Rand, chance float64) bool {
	if chance <= 0 {
		return false
	}
	return RandomFloat(rng) < chance
}

// RandomPointInDisc samples a uniform radius and a uniform angle around
// center. Points are denser near the center.
func RandomPointInDisc(rng *rand.Rand, center state.Vec2, radius float64) state.Vec2 {
	if radius < 0 {
		radius = 0
	}
	r := RandomFloat(rng) * radius
	angle := RandomAngle(rng)
	return center.Add(state.Vec2{r * math.Cos(angle), r * math.Sin(angle)})
}
