package hcl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

func translateParameter(p *Parameter) *config.Parameter {
	out := &config.Parameter{
		Name:     p.Name,
		LHABlock: p.LHABlock,
		LHAID:    p.LHAID,
		MaxPower: config.DefaultMaxPower,
		Range:    p.Range,
	}
	if p.Transform != nil {
		out.Transform = *p.Transform
	}
	if p.MaxPower != nil {
		out.MaxPower = *p.MaxPower
	}
	return out
}

func translateSystematic(s *Systematic) *config.Systematic {
	out := &config.Systematic{
		Name:  s.Name,
		Type:  config.SystematicType(strings.ToLower(s.Type)),
		Value: s.Value,
	}
	if s.Scale != nil {
		out.Scale = config.ScaleKind(strings.ToLower(*s.Scale))
	}
	return out
}

// translateBenchmark reads the benchmark attributes in source order.
func translateBenchmark(ctx context.Context, b *Benchmark) (*config.Benchmark, error) {
	logger := ctxlog.FromContext(ctx)

	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("benchmark %q: %w", b.Name, diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	out := &config.Benchmark{Name: b.Name}
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("benchmark %q, parameter %q: %w", b.Name, attr.Name, diags)
		}
		f, err := decodeNumber(val)
		if err != nil {
			return nil, fmt.Errorf("benchmark %q, parameter %q: %w", b.Name, attr.Name, err)
		}
		out.Values = append(out.Values, config.ParamValue{Name: attr.Name, Value: f})
	}

	logger.Debug("Translated benchmark.", "name", b.Name, "values", len(out.Values))
	return out, nil
}

// decodeNumber converts a cty value into a float64, accepting anything cty
// can convert to a number (e.g. numeric strings).
func decodeNumber(val cty.Value) (float64, error) {
	if val.IsNull() {
		return 0, fmt.Errorf("value must not be null")
	}
	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	var f float64
	if err := gocty.FromCtyValue(converted, &f); err != nil {
		return 0, err
	}
	return f, nil
}
