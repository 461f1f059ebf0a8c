package catalog

import "errors"

var (
	ErrNoTiers         = errors.New("catalog: tier table is empty")
	ErrTierGap         = errors.New("catalog: tier ranges do not cover [0,1] contiguously")
	ErrTierOrder       = errors.New("catalog: tier range is inverted")
	ErrDuplicateName   = errors.New("catalog: duplicate category or tier name")
	ErrBadWeight       = errors.New("catalog: signal weights must be positive and sum to a positive total")
	ErrUnknownSignal   = errors.New("catalog: weight references an unknown signal")
	ErrBadComplexity   = errors.New("catalog: base complexity outside [0,1]")
	ErrReservedDomain  = errors.New("catalog: default domain must not appear in the domain table")
	ErrMissingDefault  = errors.New("catalog: default intent missing from the intent table")
	ErrBadThreshold    = errors.New("catalog: match threshold outside (0,1)")
	ErrUnknownStrength = errors.New("catalog: tier strength references an unknown intent")
)
