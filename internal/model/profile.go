package model

import (
	"strings"

	"github.com/google/uuid"
)

// StockProfile is a named preset for one kind of bar stock and saw.
type StockProfile struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	StdLength float64 `json:"std_length" yaml:"std_length"`
	TrimSize  float64 `json:"trim_size" yaml:"trim_size"`
	SawKerf   float64 `json:"saw_kerf" yaml:"saw_kerf"`
	IsBuiltIn bool    `json:"is_built_in" yaml:"-"`
}

func NewStockProfile(name string, stdLength, trim, kerf float64) StockProfile {
	return StockProfile{
		ID:        uuid.New().String()[:8],
		Name:      name,
		StdLength: stdLength,
		TrimSize:  trim,
		SawKerf:   kerf,
	}
}

// BuiltInStockProfiles returns the presets shipped with the tool.
func BuiltInStockProfiles() []StockProfile {
	return []StockProfile{
		{ID: "alu-6m", Name: "Aluminium extrusion 6m", StdLength: 6000, TrimSize: 10, SawKerf: 3.2, IsBuiltIn: true},
		{ID: "steel-6m", Name: "Steel tube 6m", StdLength: 6000, TrimSize: 15, SawKerf: 2.0, IsBuiltIn: true},
		{ID: "timber-2400", Name: "Timber 2.4m", StdLength: 2400, TrimSize: 5, SawKerf: 3.0, IsBuiltIn: true},
		{ID: "timber-4800", Name: "Timber 4.8m", StdLength: 4800, TrimSize: 5, SawKerf: 3.0, IsBuiltIn: true},
		{ID: "strut-3m", Name: "Strut channel 3m", StdLength: 3000, TrimSize: 0, SawKerf: 2.0, IsBuiltIn: true},
	}
}

// ApplyToOptions copies the stock and saw values into o.
func (p StockProfile) ApplyToOptions(o *Options) {
	o.StdLength = p.StdLength
	o.TrimSize = p.TrimSize
	o.SawKerf = p.SawKerf
}

// FindStockProfile looks a profile up by ID or case-insensitive name.
func FindStockProfile(profiles []StockProfile, key string) (StockProfile, bool) {
	for _, p := range profiles {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			return p, true
		}
	}
	return StockProfile{}, false
}
