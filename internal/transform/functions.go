package transform

import (
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// unaryFloatFunc wraps a float64 function of one argument as a cty function.
func unaryFloatFunc(fn func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "num", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			f, _ := args[0].AsBigFloat().Float64()
			res := fn(f)
			if math.IsNaN(res) {
				return cty.UnknownVal(cty.Number), function.NewArgErrorf(0, "result is not a number")
			}
			return cty.NumberFloatVal(res), nil
		},
	})
}

// allowedFunctions is the complete set of functions a transform may call.
var allowedFunctions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"log":    unaryFloatFunc(math.Log),
	"pow":    stdlib.PowFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"signum": stdlib.SignumFunc,
	"sqrt":   unaryFloatFunc(math.Sqrt),
	"exp":    unaryFloatFunc(math.Exp),
}

// FunctionNames returns the names of the functions available to transforms.
func FunctionNames() []string {
	names := make([]string, 0, len(allowedFunctions))
	for name := range allowedFunctions {
		names = append(names, name)
	}
	return names
}
