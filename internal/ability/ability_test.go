package ability

import (
	"testing"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/economy"
	"go-siege-defense/internal/entity"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/types"
)

type fixture struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	ledger *economy.Ledger
	sys    *System
	casts  []event.SpellCastData
}

func newFixture(t *testing.T, mana, lives int) *fixture {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		ecs:    entity.NewECS(),
		events: event.NewDispatcher(),
		ledger: economy.NewLedger(0, mana, lives),
	}
	f.sys = NewSystem(f.ecs, f.events, f.ledger, catalog, 640, 500)
	f.events.Subscribe(event.ListenerFunc(func(e event.Event) {
		f.casts = append(f.casts, e.Data.(event.SpellCastData))
	}), event.SpellCast)
	return f
}

func (f *fixture) addTower() types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{}
	f.ecs.Towers[id] = &component.Tower{Damage: 10, DamageMultiplier: 1}
	return id
}

func (f *fixture) addUnit(hp int) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{}
	f.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	f.ecs.Units[id] = &component.Unit{SpeedMultiplier: 1}
	return id
}

// Нехватка маны: отказ, баланс не тронут, кулдаун не запущен.
func TestCastUnaffordableLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, 100, 20)

	if got := f.sys.Cast("NUKE"); got != CastUnaffordable {
		t.Fatalf("Expected CastUnaffordable, got %v", got)
	}
	if f.ledger.Balance(economy.Mana) != 100 {
		t.Errorf("Expected mana 100, got %d", f.ledger.Balance(economy.Mana))
	}
	if p := f.sys.CooldownProgress("NUKE"); p != 1 {
		t.Errorf("cooldown must not start on a failed cast, progress=%v", p)
	}
	if len(f.casts) != 1 || f.casts[0].Success {
		t.Errorf("Expected one failed SpellCast notification, got %v", f.casts)
	}
}

func TestCastChecksCooldownBeforeMana(t *testing.T) {
	f := newFixture(t, 200, 10)

	if got := f.sys.Cast("REPAIR"); got != CastOK {
		t.Fatalf("Expected CastOK, got %v", got)
	}
	if f.ledger.Lives() != 15 || f.ledger.Balance(economy.Mana) != 150 {
		t.Errorf("Expected 15 lives and 150 mana, got %d/%d", f.ledger.Lives(), f.ledger.Balance(economy.Mana))
	}

	f.ecs.GameTime = 1
	if got := f.sys.Cast("REPAIR"); got != CastOnCooldown {
		t.Errorf("Expected CastOnCooldown, got %v", got)
	}
	if f.ledger.Balance(economy.Mana) != 150 {
		t.Error("a cast on cooldown must not spend mana")
	}

	f.ecs.GameTime = 2.5
	if p := f.sys.CooldownProgress("REPAIR"); p != 0.5 {
		t.Errorf("Expected progress 0.5, got %v", p)
	}
	f.ecs.GameTime = 5
	if !f.sys.Ready("REPAIR") {
		t.Error("Expected REPAIR to be ready after 5s")
	}
	if got := f.sys.Cast("REPAIR"); got != CastOK {
		t.Errorf("Expected second cast to succeed, got %v", got)
	}
}

func TestCastUnknownSpell(t *testing.T) {
	f := newFixture(t, 1000, 10)
	if got := f.sys.Cast("FIREBALL"); got != CastUnknown {
		t.Errorf("Expected CastUnknown, got %v", got)
	}
	if f.sys.CooldownProgress("FIREBALL") != 0 {
		t.Error("unknown spell has no cooldown progress")
	}
}

func TestOverchargeBuffsTowersAndReverts(t *testing.T) {
	f := newFixture(t, 100, 10)
	buffed := f.addTower()
	sold := f.addTower()

	if got := f.sys.Cast("OVERCHARGE"); got != CastOK {
		t.Fatalf("Expected CastOK, got %v", got)
	}
	late := f.addTower()
	if f.ecs.Towers[buffed].DamageMultiplier != 1.5 {
		t.Errorf("Expected multiplier 1.5, got %v", f.ecs.Towers[buffed].DamageMultiplier)
	}
	if f.ecs.Towers[late].DamageMultiplier != 1 {
		t.Error("towers built after the cast are not buffed")
	}
	f.ecs.RemoveEntity(sold)

	f.ecs.GameTime = 14.9
	f.sys.Update()
	if f.ecs.Towers[buffed].DamageMultiplier != 1.5 {
		t.Error("buff reverted too early")
	}
	f.ecs.GameTime = 15
	f.sys.Update()
	if f.ecs.Towers[buffed].DamageMultiplier != 1 {
		t.Errorf("Expected multiplier reverted to 1, got %v", f.ecs.Towers[buffed].DamageMultiplier)
	}
}

func TestNukeDamagesEveryUnit(t *testing.T) {
	f := newFixture(t, 150, 10)
	weak := f.addUnit(400)
	strong := f.addUnit(600)
	var removed int
	var sounds []string
	f.events.Subscribe(event.ListenerFunc(func(event.Event) { removed++ }), event.UnitRemoved)
	f.events.Subscribe(event.ListenerFunc(func(e event.Event) {
		sounds = append(sounds, e.Data.(event.SoundData).Key)
	}), event.SoundRequested)

	if got := f.sys.Cast("NUKE"); got != CastOK {
		t.Fatalf("Expected CastOK, got %v", got)
	}
	if f.ecs.IsLiveUnit(weak) {
		t.Error("Expected the 400hp unit to die")
	}
	if got := f.ecs.Healths[strong].Value; got != 100 {
		t.Errorf("Expected 100hp left, got %d", got)
	}
	if removed != 1 {
		t.Errorf("Expected 1 removal, got %d", removed)
	}
	if len(sounds) == 0 || sounds[0] != event.SoundShootCannon {
		t.Errorf("Expected %s as the cast sound, got %v", event.SoundShootCannon, sounds)
	}
}
