// Package analysis is the single entry point to every sequence operation. It
// looks up an operation by name, normalizes and checks the sequences it was
// given, runs the operation, and wraps the value in a Result that can be
// written as text or JSON.
package analysis

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/dnakit/internal/kmer"
	"github.com/jjtimmons/dnakit/internal/seq"
)

// DefaultMinOverlap is the shortest overlap find-overlap and sequence-compare
// report when the request doesn't set one.
const DefaultMinOverlap = 3

// Request is the input to one operation.
type Request struct {
	// Seq is the primary sequence
	Seq string

	// Second is the query, pattern, or second sequence for operations that compare two
	Second string

	// K is the k-mer length. It must be at least 1 for operations that use k-mers
	K int

	// MinOverlap is the shortest suffix/prefix overlap reported (DefaultMinOverlap if < 1)
	MinOverlap int

	// LCP adds the longest-common-prefix array to a suffix-array result
	LCP bool
}

// Operation is a named analysis.
type Operation struct {
	// Name is the canonical name, ex: "reverse-complement"
	Name string

	// Aliases are other accepted names, ex: "reverse_complement"
	Aliases []string

	// Title heads the text rendering of the result
	Title string

	// Description is a one line summary
	Description string

	// NeedsSecond is whether the operation compares two sequences
	NeedsSecond bool

	// Prompt asks for the second sequence when it is missing
	Prompt string

	// UsesK is whether Request.K is read by the operation
	UsesK bool

	run func(req Request) (interface{}, error)
}

// Result is the outcome of running an Operation.
type Result struct {
	// Op is the canonical operation name
	Op string `json:"operation"`

	// Title of the result, ex: "Reverse Complement"
	Title string `json:"title"`

	// K is the k-mer length used, if the operation uses one
	K int `json:"k,omitempty"`

	// Value is the typed result of the operation
	Value interface{} `json:"result"`
}

// Operations returns every registered operation in display order.
func Operations() []Operation {
	return append([]Operation(nil), registry...)
}

// Lookup finds an operation by its name or one of its aliases. Case, underscores
// and dashes are not significant.
func Lookup(name string) (Operation, bool) {
	key := canonical(name)
	for _, op := range registry {
		if canonical(op.Name) == key {
			return op, true
		}
		for _, alias := range op.Aliases {
			if canonical(alias) == key {
				return op, true
			}
		}
	}
	return Operation{}, false
}

// Run looks up the named operation and runs it against the request.
func Run(name string, req Request) (*Result, error) {
	op, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op.Run(req)
}

// Run normalizes and checks the request's sequences and runs the operation.
//
// An empty primary sequence is ErrInvalidInput, a missing second sequence
// is ErrMissingSecond, and a failure inside the algorithm is ErrComputation.
// No match is a normal result and never an error.
func (op Operation) Run(req Request) (res *Result, err error) {
	req.Seq = seq.Normalize(req.Seq)
	req.Second = seq.Normalize(req.Second)
	if req.Seq == "" {
		return nil, ErrInvalidInput
	}
	if op.NeedsSecond && req.Second == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingSecond, op.Prompt)
	}
	if req.MinOverlap < 1 {
		req.MinOverlap = DefaultMinOverlap
	}

	// the core is pure, but an unexpected panic is still reported as a failed computation
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w: %s: %v", ErrComputation, op.Name, r)
		}
	}()

	value, err := op.run(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrComputation, op.Name, err)
	}

	res = &Result{Op: op.Name, Title: op.Title, Value: value}
	if op.UsesK {
		res.K = req.K
	}
	return res, nil
}

func canonical(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// compare is the aggregate sequence-compare runs.
func compare(req Request) (interface{}, error) {
	distance, err := kmer.Distance(req.Seq, req.Second, req.K)
	if err != nil {
		return nil, err
	}
	return Comparison{
		Overlap:      overlap(req),
		KmerDistance: distance,
		Matches:      len(findSequence(req)),
	}, nil
}
