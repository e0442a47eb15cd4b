package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog failed: %v", err)
	}

	archer, ok := c.Structure("ARCHER")
	if !ok {
		t.Fatal("Expected ARCHER in catalog")
	}
	if archer.Damage != 15 || archer.CooldownMs != 800 || archer.Range != 250 || archer.Cost != 100 {
		t.Errorf("unexpected archer stats: %+v", archer)
	}

	cannon, _ := c.Structure("CANNON")
	if !cannon.IsAoE || cannon.BlastRadius != 80 {
		t.Errorf("Expected cannon AoE with radius 80, got %v/%v", cannon.IsAoE, cannon.BlastRadius)
	}

	ice, _ := c.Structure("ICE")
	if ice.Effect == nil || ice.Effect.Type != EffectSlow || ice.Effect.Value != 0.5 || ice.Effect.Duration() != 2 {
		t.Errorf("unexpected ice effect: %+v", ice.Effect)
	}

	if len(c.Waves) != 5 {
		t.Errorf("Expected 5 waves, got %d", len(c.Waves))
	}
	if got := c.Waves[0].SpawnInterval(); got != 2 {
		t.Errorf("Expected first wave interval 2s, got %v", got)
	}

	for _, key := range c.BuildKeys() {
		if key == CoreKey {
			t.Error("HQ must not be buildable")
		}
	}
	if _, ok := c.Spell("NUKE"); !ok {
		t.Error("Expected NUKE spell")
	}
}

func TestHexColor(t *testing.T) {
	c, _ := DefaultCatalog()
	archer, _ := c.Structure("ARCHER")
	rgba := archer.Tint.Color()
	if rgba.R != 0x3b || rgba.G != 0x82 || rgba.B != 0xf6 || rgba.A != 255 {
		t.Errorf("unexpected tint %v", rgba)
	}
}

func TestParseCatalogRejectsUnknownArchetype(t *testing.T) {
	data := []byte(`{
		"structures": [{"key": "HQ", "kind": "CORE", "health": 10, "tint": "#ffffff"}],
		"archetypes": [],
		"waves": [{"wave": 1, "enemy_count": 1, "spawn_interval_ms": 100, "archetype": "ghost"}]
	}`)
	_, err := ParseCatalog(data)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestParseCatalogRejectsBadColor(t *testing.T) {
	data := []byte(`{"structures": [{"key": "HQ", "kind": "CORE", "tint": "blue"}]}`)
	if _, err := ParseCatalog(data); err == nil {
		t.Error("Expected an error for a malformed color")
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, defaultCatalog, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(c.Structures) != 8 {
		t.Errorf("Expected 8 structures, got %d", len(c.Structures))
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
