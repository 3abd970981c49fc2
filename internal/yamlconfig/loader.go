package yamlconfig

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
	"github.com/specialistvlad/mgcards/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions read by the YAML loader.
var Extensions = []string{".yaml", ".yml"}

type document struct {
	Parameters  yaml.Node `yaml:"parameters"`
	Benchmarks  yaml.Node `yaml:"benchmarks"`
	Systematics yaml.Node `yaml:"systematics"`
}

type parameter struct {
	LHABlock  string    `yaml:"lha_block"`
	LHAID     *int      `yaml:"lha_id"`
	Transform string    `yaml:"transform"`
	MaxPower  *int      `yaml:"max_power"`
	Range     []float64 `yaml:"range"`
}

type systematic struct {
	Type  string `yaml:"type"`
	Scale string `yaml:"scale"`
	Value string `yaml:"value"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML setup loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file reachable from paths into one setup.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Setup, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	setup := config.NewSetup()
	for _, file := range files {
		if err := loadFile(file, setup); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		logger.Debug("Parsed YAML file.", "file", file)
	}

	logger.Debug("YAML loading complete.", "parameters", len(setup.Parameters), "benchmarks", len(setup.Benchmarks), "systematics", len(setup.Systematics))
	return setup, nil
}

func loadFile(file string, setup *config.Setup) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	err = eachEntry(&doc.Parameters, "parameters", func(name string, node *yaml.Node) error {
		var p parameter
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
		if p.LHAID == nil {
			return fmt.Errorf("parameter %q: lha_id is required", name)
		}
		param := &config.Parameter{
			Name:      name,
			LHABlock:  p.LHABlock,
			LHAID:     *p.LHAID,
			Transform: p.Transform,
			MaxPower:  config.DefaultMaxPower,
			Range:     p.Range,
		}
		if p.MaxPower != nil {
			param.MaxPower = *p.MaxPower
		}
		return setup.AddParameter(param)
	})
	if err != nil {
		return err
	}

	err = eachEntry(&doc.Benchmarks, "benchmarks", func(name string, node *yaml.Node) error {
		bench := &config.Benchmark{Name: name}
		err := eachEntry(node, "benchmark "+name, func(param string, value *yaml.Node) error {
			var f float64
			if err := value.Decode(&f); err != nil {
				return fmt.Errorf("benchmark %q, parameter %q: %w", name, param, err)
			}
			bench.Values = append(bench.Values, config.ParamValue{Name: param, Value: f})
			return nil
		})
		if err != nil {
			return err
		}
		return setup.AddBenchmark(bench)
	})
	if err != nil {
		return err
	}

	return eachEntry(&doc.Systematics, "systematics", func(name string, node *yaml.Node) error {
		var s systematic
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("systematic %q: %w", name, err)
		}
		return setup.AddSystematic(&config.Systematic{
			Name:  name,
			Type:  config.SystematicType(strings.ToLower(s.Type)),
			Scale: config.ScaleKind(strings.ToLower(s.Scale)),
			Value: s.Value,
		})
	})
}

// eachEntry calls fn for every key of a mapping node, in document order. An
// absent or null node has no entries.
func eachEntry(node *yaml.Node, what string, fn func(key string, value *yaml.Node) error) error {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s must be a mapping (line %d)", what, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
