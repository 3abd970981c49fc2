package losses

import (
	"errors"
	"fmt"
	"sort"

	"gorgonia.org/gorgonia"
)

// Func builds a scalar loss node from the model outputs.
type Func func(logPPred, tPred, tTrue *gorgonia.Node) (*gorgonia.Node, error)

// NegativeLogLikelihood is the mean negative log-likelihood, -mean(log p).
func NegativeLogLikelihood(logPPred, _, _ *gorgonia.Node) (*gorgonia.Node, error) {
	if logPPred == nil {
		return nil, errors.New("negative log-likelihood requires predicted log-likelihoods")
	}
	mean, err := gorgonia.Mean(logPPred)
	if err != nil {
		return nil, fmt.Errorf("mean of log-likelihood: %w", err)
	}
	return gorgonia.Neg(mean)
}

// ScoreMSE is the mean squared error between predicted and true score.
func ScoreMSE(_, tPred, tTrue *gorgonia.Node) (*gorgonia.Node, error) {
	if tPred == nil || tTrue == nil {
		return nil, errors.New("score MSE requires predicted and true scores")
	}
	if !tPred.Shape().Eq(tTrue.Shape()) {
		return nil, fmt.Errorf("score shapes differ: %v vs %v", tPred.Shape(), tTrue.Shape())
	}
	diff, err := gorgonia.Sub(tPred, tTrue)
	if err != nil {
		return nil, fmt.Errorf("score difference: %w", err)
	}
	sq, err := gorgonia.Square(diff)
	if err != nil {
		return nil, fmt.Errorf("squared score difference: %w", err)
	}
	return gorgonia.Mean(sq)
}

var registry = map[string]Func{
	"nll":   NegativeLogLikelihood,
	"score": ScoreMSE,
}

// Lookup returns the loss registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown loss %q, available: %v", name, Names())
	}
	return fn, nil
}

// Names lists the registered losses in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
