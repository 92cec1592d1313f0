package permute

import "errors"

var (
	// ErrEmptyInput is returned by New/NewFunc when the input is empty and
	// Options.RejectEmpty is set.
	ErrEmptyInput = errors.New("permute: input must be non-empty")

	// ErrNilEqual indicates NewFunc/CountFunc received a nil equality function.
	ErrNilEqual = errors.New("permute: equality function is nil")

	// ErrBadOption indicates an unknown StartOrder value.
	ErrBadOption = errors.New("permute: invalid option")

	// ErrOverflow indicates the number of distinct permutations does not fit in an int.
	ErrOverflow = errors.New("permute: permutation count overflows int")
)
