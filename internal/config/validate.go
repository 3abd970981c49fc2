package config

import (
	"errors"
	"fmt"
)

// Validate checks the internal consistency of a setup. All problems are
// reported together.
func (s *Setup) Validate() error {
	var errs []error

	for _, name := range s.ParamOrder {
		p := s.Parameters[name]
		if p.LHABlock == "" {
			errs = append(errs, fmt.Errorf("parameter %q: lha_block must not be empty", name))
		}
		if _, err := p.Program(); err != nil {
			errs = append(errs, fmt.Errorf("parameter %q: %w", name, err))
		}
		if len(p.Range) != 0 && len(p.Range) != 2 {
			errs = append(errs, fmt.Errorf("parameter %q: range must have exactly two elements", name))
		}
	}

	for _, b := range s.Benchmarks {
		seen := make(map[string]struct{}, len(b.Values))
		for _, v := range b.Values {
			if _, ok := s.Parameters[v.Name]; !ok {
				errs = append(errs, fmt.Errorf("benchmark %q: unknown parameter %q", b.Name, v.Name))
			}
			if _, dup := seen[v.Name]; dup {
				errs = append(errs, fmt.Errorf("benchmark %q: parameter %q set twice", b.Name, v.Name))
			}
			seen[v.Name] = struct{}{}
		}
	}

	for _, sys := range s.Systematics {
		switch sys.Type {
		case SystematicScale:
			switch sys.Scale {
			case ScaleMu, ScaleMuR, ScaleMuF:
			default:
				errs = append(errs, fmt.Errorf("systematic %q: unknown scale %q", sys.Name, sys.Scale))
			}
		case SystematicPDF, SystematicNorm:
		default:
			errs = append(errs, fmt.Errorf("systematic %q: unknown type %q", sys.Name, sys.Type))
		}
	}

	return errors.Join(errs...)
}
