package main

import (
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePiece(t *testing.T) {
	tests := []struct {
		spec   string
		label  string
		length float64
		qty    int
	}{
		{"Post:2400x4", "Post", 2400, 4},
		{"600", "600", 600, 1},
		{"612.5X2", "612.5", 612.5, 2},
		{" Rail : 1800 * 3 ", "Rail", 1800, 3},
		{"a:b:900", "a:b", 900, 1},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			p, err := parsePiece(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.label, p.Label)
			assert.Equal(t, tt.length, p.Length)
			assert.Equal(t, tt.qty, p.Quantity)
			assert.NotEmpty(t, p.ID)
		})
	}
}

func TestParsePiece_Invalid(t *testing.T) {
	for _, spec := range []string{"", "Post:", "abc", "-5", "0x2", "600x0", "600xabc"} {
		_, err := parsePiece(spec)
		assert.Error(t, err, spec)
	}
}

func TestSetConfigValue(t *testing.T) {
	cfg := model.DefaultAppConfig()

	require.NoError(t, setConfigValue(&cfg, "std-length", "4800"))
	require.NoError(t, setConfigValue(&cfg, "kerf", "2.5"))
	require.NoError(t, setConfigValue(&cfg, "tuning", "2"))
	require.NoError(t, setConfigValue(&cfg, "max-time-ms", "1500"))
	require.NoError(t, setConfigValue(&cfg, "inventory", "/tmp/stock.json"))

	assert.Equal(t, 4800.0, cfg.DefaultStdLength)
	assert.Equal(t, 2.5, cfg.DefaultSawKerf)
	assert.Equal(t, 2, cfg.DefaultTuningLevel)
	assert.Equal(t, int64(1500), cfg.DefaultMaxTimeMs)
	assert.Equal(t, "/tmp/stock.json", cfg.InventoryPath)

	assert.Error(t, setConfigValue(&cfg, "tuning", "5"))
	assert.Error(t, setConfigValue(&cfg, "max-time-ms", "60000"))
	assert.Error(t, setConfigValue(&cfg, "kerf", "-1"))
	assert.Error(t, setConfigValue(&cfg, "colour", "1"))
}

func TestFormatMM(t *testing.T) {
	assert.Equal(t, "2400", formatMM(2400))
	assert.Equal(t, "612.5", formatMM(612.5))
	assert.Equal(t, "0", formatMM(0))
}
