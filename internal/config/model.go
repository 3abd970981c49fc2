package config

import "github.com/specialistvlad/mgcards/internal/transform"

// SystematicType tags the source of a systematic variation.
type SystematicType string

const (
	SystematicPDF   SystematicType = "pdf"
	SystematicScale SystematicType = "scale"
	SystematicNorm  SystematicType = "norm"
)

// ScaleKind names which scale a scale systematic varies.
type ScaleKind string

const (
	// ScaleMu varies renormalization and factorization scales together.
	ScaleMu  ScaleKind = "mu"
	ScaleMuR ScaleKind = "mur"
	ScaleMuF ScaleKind = "muf"
)

// DefaultMaxPower is used when a parameter does not declare max_power.
const DefaultMaxPower = 2

// Setup is the unified representation of an analysis setup.
type Setup struct {
	Parameters  map[string]*Parameter
	ParamOrder  []string
	Benchmarks  []*Benchmark
	Systematics []*Systematic
}

// NewSetup returns an empty setup ready to be populated by a loader.
func NewSetup() *Setup {
	return &Setup{Parameters: make(map[string]*Parameter)}
}

// Parameter addresses a physics parameter in a parameter card.
type Parameter struct {
	Name     string
	LHABlock string
	LHAID    int
	// Transform is an expression over `theta` applied before a value is
	// written into a card. Empty means identity.
	Transform string
	MaxPower  int
	Range     []float64

	program *transform.Program
}

// Program returns the compiled transform. It is compiled on first use and
// reused until Transform changes.
func (p *Parameter) Program() (*transform.Program, error) {
	if p.program != nil && p.program.String() == p.Transform {
		return p.program, nil
	}
	prog, err := transform.Compile(p.Transform)
	if err != nil {
		return nil, err
	}
	p.program = prog
	return prog, nil
}

// ParamValue is one entry of a benchmark.
type ParamValue struct {
	Name  string
	Value float64
}

// Benchmark is a named point in parameter space. Values keep the order in
// which they were declared.
type Benchmark struct {
	Name   string
	Values []ParamValue
}

// Value returns the value of the named parameter.
func (b *Benchmark) Value(name string) (float64, bool) {
	for _, v := range b.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// Systematic is a declared source of variation.
type Systematic struct {
	Name  string
	Type  SystematicType
	Scale ScaleKind
	Value string
}

// Benchmark looks up a benchmark by name.
func (s *Setup) Benchmark(name string) (*Benchmark, bool) {
	for _, b := range s.Benchmarks {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}
