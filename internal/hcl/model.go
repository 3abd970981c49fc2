package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Parameters  []*Parameter  `hcl:"parameter,block"`
	Benchmarks  []*Benchmark  `hcl:"benchmark,block"`
	Systematics []*Systematic `hcl:"systematic,block"`
	Remain      hcl.Body      `hcl:",remain"`
}

// Parameter is the HCL shape of a `parameter` block.
type Parameter struct {
	Name      string    `hcl:"name,label"`
	LHABlock  string    `hcl:"lha_block"`
	LHAID     int       `hcl:"lha_id"`
	Transform *string   `hcl:"transform,optional"`
	MaxPower  *int      `hcl:"max_power,optional"`
	Range     []float64 `hcl:"range,optional"`
}

// Benchmark is the HCL shape of a `benchmark` block. Its attributes are the
// parameter values, so the body is kept raw to preserve their order.
type Benchmark struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Systematic is the HCL shape of a `systematic` block.
type Systematic struct {
	Name  string  `hcl:"name,label"`
	Type  string  `hcl:"type"`
	Scale *string `hcl:"scale,optional"`
	Value string  `hcl:"value"`
}
