package losses

import (
	"fmt"

	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// vector adds a constant float64 vector to g. Empty data yields a nil node.
func vector(g *gorgonia.ExprGraph, name string, data []float64) *gorgonia.Node {
	if len(data) == 0 {
		return nil
	}
	backing := append([]float64(nil), data...)
	return gorgonia.NewVector(g, tensor.Float64,
		gorgonia.WithShape(len(backing)),
		gorgonia.WithName(name),
		gorgonia.WithValue(tensor.New(tensor.WithShape(len(backing)), tensor.WithBacking(backing))),
	)
}

// Evaluate computes a loss on plain slices by building and running a graph.
func Evaluate(fn Func, logPPred, tPred, tTrue []float64) (float64, error) {
	if len(tPred) != len(tTrue) {
		return 0, fmt.Errorf("score lengths differ: %d vs %d", len(tPred), len(tTrue))
	}

	g := gorgonia.NewGraph()
	loss, err := fn(
		vector(g, "log_p_pred", logPPred),
		vector(g, "t_pred", tPred),
		vector(g, "t_true", tTrue),
	)
	if err != nil {
		return 0, err
	}

	vm := gorgonia.NewTapeMachine(g)
	defer vm.Close()
	if err := vm.RunAll(); err != nil {
		return 0, fmt.Errorf("failed to evaluate loss: %w", err)
	}

	v, ok := loss.Value().Data().(float64)
	if !ok {
		return 0, fmt.Errorf("loss is not a float64 scalar: %T", loss.Value().Data())
	}
	return v, nil
}
