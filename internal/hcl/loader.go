package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
	"github.com/specialistvlad/mgcards/internal/fsutil"
)

// Extensions are the file extensions read by the HCL loader.
var Extensions = []string{".hcl"}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL setup loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from paths and merges their blocks
// into one setup. Block order follows file discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Setup, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	setup := config.NewSetup()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, p := range root.Parameters {
			if err := setup.AddParameter(translateParameter(p)); err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
		}
		for _, b := range root.Benchmarks {
			bench, err := translateBenchmark(ctx, b)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			if err := setup.AddBenchmark(bench); err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
		}
		for _, s := range root.Systematics {
			if err := setup.AddSystematic(translateSystematic(s)); err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
		}
		logger.Debug("Parsed HCL file.", "file", file, "parameters", len(root.Parameters), "benchmarks", len(root.Benchmarks), "systematics", len(root.Systematics))
	}

	logger.Debug("HCL loading complete.", "parameters", len(setup.Parameters), "benchmarks", len(setup.Benchmarks), "systematics", len(setup.Systematics))
	return setup, nil
}
