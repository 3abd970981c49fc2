package cards

import (
	"fmt"

	"github.com/specialistvlad/mgcards/internal/config"
)

// Entry addresses one value in a parameter card.
type Entry struct {
	Block string
	ID    int
	Value float64
}

// resolve looks up the parameter for a benchmark value and applies its
// transform.
func resolve(setup *config.Setup, pv config.ParamValue) (*config.Parameter, float64, error) {
	param, ok := setup.Parameters[pv.Name]
	if !ok {
		return nil, 0, fmt.Errorf("%w %q", ErrUnknownParameter, pv.Name)
	}

	prog, err := param.Program()
	if err != nil {
		return nil, 0, fmt.Errorf("parameter %q: %w", pv.Name, err)
	}
	value, err := prog.Eval(pv.Value)
	if err != nil {
		return nil, 0, fmt.Errorf("parameter %q: %w", pv.Name, err)
	}
	return param, value, nil
}

// entriesFor converts a benchmark into card entries.
func entriesFor(setup *config.Setup, benchmark *config.Benchmark) ([]Entry, error) {
	entries := make([]Entry, 0, len(benchmark.Values))
	for _, pv := range benchmark.Values {
		param, value, err := resolve(setup, pv)
		if err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", benchmark.Name, err)
		}
		entries = append(entries, Entry{Block: param.LHABlock, ID: param.LHAID, Value: value})
	}
	return entries, nil
}
