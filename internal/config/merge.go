package config

import "fmt"

// AddParameter registers a parameter, keeping declaration order.
func (s *Setup) AddParameter(p *Parameter) error {
	if _, exists := s.Parameters[p.Name]; exists {
		return fmt.Errorf("parameter %q declared more than once", p.Name)
	}
	s.ParamOrder = append(s.ParamOrder, p.Name)
	s.Parameters[p.Name] = p
	return nil
}

// AddBenchmark appends a benchmark. Names must be unique.
func (s *Setup) AddBenchmark(b *Benchmark) error {
	if _, exists := s.Benchmark(b.Name); exists {
		return fmt.Errorf("benchmark %q declared more than once", b.Name)
	}
	s.Benchmarks = append(s.Benchmarks, b)
	return nil
}

// AddSystematic appends a systematic. Names must be unique.
func (s *Setup) AddSystematic(sys *Systematic) error {
	for _, existing := range s.Systematics {
		if existing.Name == sys.Name {
			return fmt.Errorf("systematic %q declared more than once", sys.Name)
		}
	}
	s.Systematics = append(s.Systematics, sys)
	return nil
}

// Merge folds other into s. Names must be unique across both setups.
func (s *Setup) Merge(other *Setup) error {
	if other == nil {
		return nil
	}
	for _, name := range other.ParamOrder {
		if err := s.AddParameter(other.Parameters[name]); err != nil {
			return err
		}
	}
	for _, b := range other.Benchmarks {
		if err := s.AddBenchmark(b); err != nil {
			return err
		}
	}
	for _, sys := range other.Systematics {
		if err := s.AddSystematic(sys); err != nil {
			return err
		}
	}
	return nil
}

// Empty reports whether the setup declares nothing at all.
func (s *Setup) Empty() bool {
	return len(s.Parameters) == 0 && len(s.Benchmarks) == 0 && len(s.Systematics) == 0
}
