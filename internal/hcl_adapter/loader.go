package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/leaguerank/internal/config"
	"github.com/specialistvlad/leaguerank/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL league file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a single .hcl league file, translates it and validates the
// result.
func (l *Loader) Load(ctx context.Context, path string) (*config.League, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing league file %s: %w", path, err)
	}
	if info.IsDir() || filepath.Ext(path) != ".hcl" {
		return nil, fmt.Errorf("league file %s must be a .hcl file", path)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model, err := l.translateLeague(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("invalid league file %s: %w", path, err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid league file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "league", model.String())
	return model, nil
}
