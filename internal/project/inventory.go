package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/BarCut/internal/model"
)

// DefaultInventoryPath returns the default file path for the leftover
// inventory, ~/.barcut/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "inventory.json")
}

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if inv.Leftovers == nil {
		inv.Leftovers = []float64{}
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInventory reads the inventory from the specified JSON file.
// A missing file is an empty inventory.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Inventory{Leftovers: []float64{}}, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, fmt.Errorf("failed to parse inventory: %w", err)
	}
	if inv.Leftovers == nil {
		inv.Leftovers = []float64{}
	}
	return inv, nil
}

// MergeLeftovers updates an inventory after a run: every leftover the run
// cut from is removed, and every offcut of at least minLength is added.
// Leftovers the run consumed that are not in existing are ignored.
func MergeLeftovers(existing model.Inventory, result model.PackResult, minLength float64) model.Inventory {
	inv := existing.Copy()
	for _, b := range result.Bars {
		if b.Kind == model.BarLeftover {
			inv.Remove(b.Length)
		}
	}
	var added []float64
	for _, o := range model.CollectOffcuts(result, minLength) {
		added = append(added, o.ToLeftover())
	}
	inv.Add(added...)
	return inv
}
