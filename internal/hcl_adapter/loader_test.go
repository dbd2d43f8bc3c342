package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/leaguerank/internal/config"
	"github.com/specialistvlad/leaguerank/internal/league"
)

func writeLeague(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "league.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestLoad_FullFile(t *testing.T) {
	t.Parallel()

	path := writeLeague(t, `
scoring {
  win  = 2
  tie  = 1
  loss = 0
}

units {
  singular = "point"
  plural   = "points"
}
`)

	got, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, &config.League{
		Scoring: league.Scoring{Win: 2, Tie: 1, Loss: 0},
		Units:   league.Units{Singular: "point", Plural: "points"},
	}, got)
}

func TestLoad_OmittedAttributesKeepDefaults(t *testing.T) {
	t.Parallel()

	path := writeLeague(t, `
scoring {
  win = 4
}
`)

	got, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, league.Scoring{Win: 4, Tie: 1, Loss: 0}, got.Scoring)
	assert.Equal(t, league.DefaultUnits, got.Units)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	got, err := NewLoader().Load(context.Background(), writeLeague(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestLoad_NumericStringIsConverted(t *testing.T) {
	t.Parallel()

	got, err := NewLoader().Load(context.Background(), writeLeague(t, `scoring { win = "5" }`))
	require.NoError(t, err)
	assert.Equal(t, 5, got.Scoring.Win)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"syntax error", "scoring {\n  win = 3\n", "failed to parse"},
		{"unknown attribute", "scoring {\n  draw = 1\n}\n", "failed to decode"},
		{"negative points", "scoring {\n  loss = -1\n}\n", "must not be negative"},
		{"fractional points", "scoring {\n  win = 2.5\n}\n", "scoring.win"},
		{"wrong type", "units {\n  plural = [\"pts\"]\n}\n", "units.plural"},
		{"empty unit", "units {\n  singular = \"\"\n}\n", "singular and plural"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader().Load(context.Background(), writeLeague(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoad_BadPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(t.TempDir(), "league.txt")
	require.NoError(t, os.WriteFile(txt, []byte(""), 0o600))
	_, err = NewLoader().Load(context.Background(), txt)
	require.ErrorContains(t, err, "must be a .hcl file")
}
