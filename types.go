package luckdraw

import "errors"

// Candidate is one selectable entry in a draw. Payload is the value returned
// to the caller when the candidate is picked.
type Candidate[T any] struct {
	ID        string  // unique within one selection call
	Luckiness float64 // preference rank; higher ranks are favored as luck rises
	Weight    int64   // base probability mass; zero means 1
	Payload   T
}

// ErrNoCandidates indicates a selection was requested from an empty set.
var ErrNoCandidates = errors.New("at least one candidate must be provided")

// ErrInvalidCount indicates a negative number of picks was requested.
var ErrInvalidCount = errors.New("number of picks must be non-negative")

// ErrDuplicateID indicates two candidates share an identifier.
var ErrDuplicateID = errors.New("candidate identifiers must be unique")

// ErrInvalidCandidateWeight indicates a candidate carries a negative weight.
var ErrInvalidCandidateWeight = errors.New("candidate weight must not be negative")

// ErrInvalidRange indicates an integer range with min greater than max.
var ErrInvalidRange = errors.New("min must not exceed max")

// ErrInvalidWeight indicates the sampling pool has no probability mass left.
var ErrInvalidWeight = errors.New("total candidate weight must be positive")

// ErrSelectionExhausted indicates the sampler gave up after its attempt budget.
var ErrSelectionExhausted = errors.New("selection did not converge within the attempt budget")
