// Package losses implements the training losses of the density-estimation
// flows as gorgonia graph operations, so they can be differentiated together
// with the model that produced their inputs.
//
// Every loss shares the same signature: the predicted log-likelihood, the
// predicted score and the true score. Each loss reads only the inputs it needs.
package losses
