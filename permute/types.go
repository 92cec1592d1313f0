package permute

// StartOrder selects the arrangement an engine begins from.
//
//   - SortedStart — values are grouped by rank (first-appearance order) before
//     the first arrangement. Enumeration covers every distinct permutation.
//
//   - InputOrder  — the input order is the first arrangement. Only the
//     arrangements lexicographically larger than it are visited, so the
//     total may be smaller than n!/Π(mᵢ!).
type StartOrder int

const (
	// SortedStart begins from the lexicographically smallest rank arrangement.
	SortedStart StartOrder = iota

	// InputOrder begins from the arrangement given by the caller.
	InputOrder
)

// String returns the option name.
func (s StartOrder) String() string {
	switch s {
	case SortedStart:
		return "SortedStart"
	case InputOrder:
		return "InputOrder"
	default:
		return "StartOrder(?)"
	}
}

// Options configures a Permutations engine.
//
// Fields:
//   - Start       — where enumeration begins (SortedStart or InputOrder).
//   - RejectEmpty — if true, empty input is refused with ErrEmptyInput.
//     Otherwise empty input is legal and yields exactly one (empty)
//     arrangement before the engine is exhausted.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Start = InputOrder
//	p, err := New(values, &opts)
type Options struct {
	Start       StartOrder
	RejectEmpty bool
}

// DefaultOptions returns the options used when nil is passed to New/NewFunc.
func DefaultOptions() Options {
	return Options{
		Start:       SortedStart,
		RejectEmpty: false,
	}
}

// validate checks Options for unknown enum values.
func (o Options) validate() error {
	if o.Start != SortedStart && o.Start != InputOrder {
		return ErrBadOption
	}
	return nil
}
