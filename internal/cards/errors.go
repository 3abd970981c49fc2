package cards

import "errors"

var (
	// ErrLHAIDNotFound is returned when a parameter's LHA ID is missing from
	// its block in the parameter card template.
	ErrLHAIDNotFound = errors.New("could not find LHA ID in param_card template")

	// ErrUnknownParameter is returned when a benchmark references a parameter
	// the setup does not define.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrDuplicateSystematic is returned when more than one systematic
	// varies the same scale, or more than one PDF variation is declared.
	ErrDuplicateSystematic = errors.New("multiple nuisance parameters for the same variation")

	// ErrUnknownOrder is returned for a perturbative order other than LO or NLO.
	ErrUnknownOrder = errors.New("unknown order")
)
