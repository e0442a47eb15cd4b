// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// CoreKey is the catalog key of the headquarters structure.
const CoreKey = "HQ"

// ErrUnknownKey is returned when a catalog entry refers to a missing key.
var ErrUnknownKey = errors.New("unknown catalog key")

//go:embed catalog.json
var defaultCatalog []byte

// Catalog - статические данные игры: строения, архетипы, волны, заклинания.
type Catalog struct {
	Structures []StructureDefinition `json:"structures"`
	Archetypes []ArchetypeDefinition `json:"archetypes"`
	Waves      []WaveDefinition      `json:"waves"`
	Spells     []SpellDefinition     `json:"spells"`

	structureByKey map[string]StructureDefinition
	archetypeByID  map[string]ArchetypeDefinition
	spellByID      map[string]SpellDefinition
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog file. An empty path yields the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(file)
}

// ParseCatalog decodes and validates a JSON catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	c.index()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log.Printf("Loaded catalog: %d structures, %d archetypes, %d waves, %d spells",
		len(c.Structures), len(c.Archetypes), len(c.Waves), len(c.Spells))
	return &c, nil
}

func (c *Catalog) index() {
	c.structureByKey = make(map[string]StructureDefinition, len(c.Structures))
	for _, def := range c.Structures {
		c.structureByKey[def.Key] = def
	}
	c.archetypeByID = make(map[string]ArchetypeDefinition, len(c.Archetypes))
	for _, def := range c.Archetypes {
		c.archetypeByID[def.ID] = def
	}
	c.spellByID = make(map[string]SpellDefinition, len(c.Spells))
	for _, def := range c.Spells {
		c.spellByID[def.ID] = def
	}
}

// Validate checks cross references between catalog sections.
func (c *Catalog) Validate() error {
	core, ok := c.structureByKey[CoreKey]
	if !ok {
		return fmt.Errorf("structure %s: %w", CoreKey, ErrUnknownKey)
	}
	if core.Kind != KindCore {
		return fmt.Errorf("structure %s must be of kind %s, got %s", CoreKey, KindCore, core.Kind)
	}
	for _, def := range c.Structures {
		switch def.Kind {
		case KindCore, KindWall, KindEconomy:
		case KindTower:
			if def.CooldownMs <= 0 || def.ProjectileSpeed <= 0 {
				return fmt.Errorf("tower %s: cooldown and projectile speed must be positive", def.Key)
			}
		default:
			return fmt.Errorf("structure %s: unknown kind %q", def.Key, def.Kind)
		}
	}
	for _, def := range c.Archetypes {
		if def.MoveDurationMs <= 0 {
			return fmt.Errorf("archetype %s: move duration must be positive", def.ID)
		}
	}
	for i, w := range c.Waves {
		if _, ok := c.archetypeByID[w.Archetype]; !ok {
			return fmt.Errorf("wave %d: archetype %q: %w", i+1, w.Archetype, ErrUnknownKey)
		}
		if w.EnemyCount <= 0 || w.SpawnIntervalMs <= 0 {
			return fmt.Errorf("wave %d: count and spawn interval must be positive", i+1)
		}
	}
	for _, s := range c.Spells {
		switch s.Kind {
		case SpellHeal, SpellBuff, SpellNuke:
		default:
			return fmt.Errorf("spell %s: unknown kind %q", s.ID, s.Kind)
		}
	}
	return nil
}

// Structure looks up a structure definition by key.
func (c *Catalog) Structure(key string) (StructureDefinition, bool) {
	def, ok := c.structureByKey[key]
	return def, ok
}

// Archetype looks up an enemy archetype by id.
func (c *Catalog) Archetype(id string) (ArchetypeDefinition, bool) {
	def, ok := c.archetypeByID[id]
	return def, ok
}

// Spell looks up a spell by id.
func (c *Catalog) Spell(id string) (SpellDefinition, bool) {
	def, ok := c.spellByID[id]
	return def, ok
}

// BuildKeys returns the keys of all player-buildable structures in catalog order.
func (c *Catalog) BuildKeys() []string {
	keys := make([]string, 0, len(c.Structures))
	for _, def := range c.Structures {
		if def.Buildable() {
			keys = append(keys, def.Key)
		}
	}
	return keys
}
