// internal/defs/types.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// StructureKind selects the per-tick behaviour of a structure.
type StructureKind string

const (
	KindCore    StructureKind = "CORE"
	KindTower   StructureKind = "TOWER"
	KindWall    StructureKind = "WALL"
	KindEconomy StructureKind = "ECONOMY"
)

// EffectType - тип статус-эффекта.
type EffectType string

const (
	EffectSlow EffectType = "SLOW"
	EffectBurn EffectType = "BURN"
	EffectStun EffectType = "STUN"
)

// StatusEffectDef describes an effect carried by a projectile.
// Value is the speed factor for SLOW and damage per second for BURN.
type StatusEffectDef struct {
	Type       EffectType `json:"type"`
	DurationMs int        `json:"duration_ms"`
	Value      float64    `json:"value"`
}

// Duration returns the effect length in seconds.
func (e StatusEffectDef) Duration() float64 { return msToSeconds(e.DurationMs) }

// HexColor - цвет в формате "#rrggbb" в JSON.
type HexColor uint32

func (c *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color must be a string: %w", err)
	}
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return fmt.Errorf("invalid color %q", s)
	}
	*c = HexColor(v)
	return nil
}

func (c HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("#%06x", uint32(c)))
}

// Color converts the value to an opaque color.RGBA.
func (c HexColor) Color() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}

func msToSeconds(ms int) float64 {
	return float64(ms) / 1000
}
