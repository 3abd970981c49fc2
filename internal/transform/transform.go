package transform

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Variable is the name of the free variable bound to the original value.
const Variable = "theta"

// Program is a compiled transform. The zero value is the identity.
type Program struct {
	src  string
	expr hcl.Expression
}

// Compile parses src and checks that it only references `theta` and
// allow-listed functions. An empty src compiles to the identity.
func Compile(src string) (*Program, error) {
	if strings.TrimSpace(src) == "" {
		return &Program{src: src}, nil
	}

	expr, diags := hclsyntax.ParseExpression([]byte(src), "transform", hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse transform %q: %w", src, diags)
	}

	refs, funcs := analyze(expr)
	for _, ref := range refs {
		if ref.RootName() != Variable || len(ref) != 1 {
			return nil, fmt.Errorf("transform %q: reference to %q is not allowed, only %q is in scope", src, traversalKey(ref), Variable)
		}
	}
	for _, name := range funcs {
		if _, ok := allowedFunctions[name]; !ok {
			return nil, fmt.Errorf("transform %q: function %q is not allowed", src, name)
		}
	}

	return &Program{src: src, expr: expr}, nil
}

// String returns the source of the transform.
func (p *Program) String() string {
	return p.src
}

// IsIdentity reports whether the program leaves values unchanged.
func (p *Program) IsIdentity() bool {
	return p == nil || p.expr == nil
}

// Eval applies the transform to theta.
func (p *Program) Eval(theta float64) (float64, error) {
	if p.IsIdentity() {
		return theta, nil
	}
	if math.IsNaN(theta) {
		return 0, fmt.Errorf("transform %q: theta is NaN", p.src)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{Variable: cty.NumberFloatVal(theta)},
		Functions: allowedFunctions,
	}

	val, diags := p.expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("failed to evaluate transform %q: %w", p.src, diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("transform %q did not produce a value", p.src)
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("transform %q must produce a number, got %s", p.src, val.Type().FriendlyName())
	}
	f, _ := num.AsBigFloat().Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("transform %q is not finite at theta=%v", p.src, theta)
	}
	return f, nil
}

// Apply compiles src and evaluates it once.
func Apply(src string, theta float64) (float64, error) {
	p, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return p.Eval(theta)
}
