package tower

import (
	"testing"

	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

func TestTransferRulePrecedence(t *testing.T) {
	want := []transferKind{transferRepair, transferFeed, transferAttack}
	if len(transferRules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(transferRules))
	}
	for i, kind := range want {
		if transferRules[i].kind != kind {
			t.Fatalf("rule %d: expected %s, got %s", i, kind, transferRules[i].kind)
		}
	}
}

func TestTransferRulesFollowConfiguredWeapons(t *testing.T) {
	cfg := world.DefaultConfig().Tower
	cfg.RepairWeapon = "shotgun"
	cfg.FeedWeapon = "gun"

	if got := transferRules[0].weapon(cfg); got != state.WeaponShotgun {
		t.Fatalf("expected repair weapon shotgun, got %s", got)
	}
	if got := transferRules[1].weapon(cfg); got != state.WeaponGun {
		t.Fatalf("expected feed weapon gun, got %s", got)
	}
	if got := transferRules[2].weapon(cfg); got != state.WeaponGun {
		t.Fatalf("expected attack weapon gun, got %s", got)
	}
}
