// Package reactive keeps the table of outputs that must be recomputed when a
// named input changes. Each output is bound to exactly one handler and an
// ordered list of inputs; the handler always receives the current value of
// every declared input, never a delta.
package reactive

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrDuplicateOutput = errors.New("output already bound")
	ErrUnknownOutput   = errors.New("unknown output")
	ErrUnknownInput    = errors.New("unknown input")
	ErrMissingInput    = errors.New("missing input value")
	ErrNoInputs        = errors.New("binding declares no inputs")
)

// InputID names a user-controlled value such as a dropdown.
type InputID string

// OutputID names a rendered region such as a chart.
type OutputID string

// Values holds the current value of each input.
type Values map[InputID]any

// Handler computes an output from the values of its inputs, passed in the
// order the inputs were declared. Handlers must not keep state between calls.
type Handler func(args ...any) (any, error)

// Binding ties an output to its handler and inputs.
type Binding struct {
	Output  OutputID
	Inputs  []InputID
	handler Handler
}

// Registry is the output subscription table.
type Registry struct {
	mu         sync.RWMutex
	bindings   map[OutputID]*Binding
	order      []OutputID
	dependents map[InputID][]OutputID
}

func NewRegistry() *Registry {
	return &Registry{
		bindings:   make(map[OutputID]*Binding),
		dependents: make(map[InputID][]OutputID),
	}
}

// Register binds handler to output. The output is recomputed whenever any of
// inputs changes.
func (r *Registry) Register(output OutputID, inputs []InputID, handler Handler) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: %s", ErrNoInputs, output)
	}
	if handler == nil {
		return fmt.Errorf("nil handler for output %s", output)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[output]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, output)
	}

	declared := make([]InputID, len(inputs))
	copy(declared, inputs)
	r.bindings[output] = &Binding{Output: output, Inputs: declared, handler: handler}
	r.order = append(r.order, output)

	seen := make(map[InputID]bool, len(declared))
	for _, in := range declared {
		if seen[in] {
			continue
		}
		seen[in] = true
		r.dependents[in] = append(r.dependents[in], output)
	}
	return nil
}

// Outputs returns every bound output in registration order.
func (r *Registry) Outputs() []OutputID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]OutputID, len(r.order))
	copy(out, r.order)
	return out
}

// Binding returns the binding for output.
func (r *Registry) Binding(output OutputID) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bindings[output]
	if !ok {
		return Binding{}, false
	}
	cp := *b
	cp.Inputs = append([]InputID(nil), b.Inputs...)
	return cp, true
}

// HasInput reports whether any output depends on input.
func (r *Registry) HasInput(input InputID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.dependents[input]
	return ok
}

// Dependents returns the outputs that depend on input, in registration order.
func (r *Registry) Dependents(input InputID) []OutputID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deps := r.dependents[input]
	out := make([]OutputID, len(deps))
	copy(out, deps)
	return out
}

// Evaluate runs the handler of output against values.
func (r *Registry) Evaluate(output OutputID, values Values) (any, error) {
	r.mu.RLock()
	b, ok := r.bindings[output]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOutput, output)
	}

	args := make([]any, len(b.Inputs))
	for i, in := range b.Inputs {
		v, ok := values[in]
		if !ok {
			return nil, fmt.Errorf("%w: %s needs %s", ErrMissingInput, output, in)
		}
		args[i] = v
	}

	result, err := b.handler(args...)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", output, err)
	}
	return result, nil
}
