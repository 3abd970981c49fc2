// Package transform compiles and evaluates the per-parameter value transforms
// used when benchmark values are written into cards.
//
// A transform is an HCL arithmetic expression over a single free variable,
// `theta`. Evaluation runs against a closed EvalContext: the only variable in
// scope is `theta` and the only callable functions are a fixed numeric
// allow-list. Anything else is rejected when the expression is compiled, so a
// setup file can never reach the host through a transform.
//
// `log` is the natural logarithm. A result that is not a finite number, such
// as `1 / theta` at zero, is an evaluation error.
package transform
