package reactive

import "fmt"

// Notification reports that one or more inputs changed. Values carries the
// current value of every input, not only the changed ones, so a handler never
// sees half of two overlapping updates.
type Notification struct {
	Seq     uint64
	Changed []InputID
	Values  Values
}

// Result is one recomputed output.
type Result struct {
	Output OutputID
	Value  any
}

// Update is the outcome of dispatching a Notification. Seq echoes the
// notification so a client can drop responses older than the newest one it
// has applied.
type Update struct {
	Seq     uint64
	Results []Result
}

// Dispatch recomputes every output that depends on a changed input. Outputs
// are evaluated once each, in registration order.
func (r *Registry) Dispatch(n Notification) (Update, error) {
	update := Update{Seq: n.Seq, Results: []Result{}}

	affected := make(map[OutputID]bool)
	for _, in := range n.Changed {
		if !r.HasInput(in) {
			return update, fmt.Errorf("%w: %s", ErrUnknownInput, in)
		}
		for _, out := range r.Dependents(in) {
			affected[out] = true
		}
	}

	for _, out := range r.Outputs() {
		if !affected[out] {
			continue
		}
		value, err := r.Evaluate(out, n.Values)
		if err != nil {
			return Update{Seq: n.Seq}, err
		}
		update.Results = append(update.Results, Result{Output: out, Value: value})
	}

	return update, nil
}

// Initial evaluates every output, as on first page load.
func (r *Registry) Initial(values Values) (Update, error) {
	update := Update{Results: []Result{}}
	for _, out := range r.Outputs() {
		value, err := r.Evaluate(out, values)
		if err != nil {
			return Update{}, err
		}
		update.Results = append(update.Results, Result{Output: out, Value: value})
	}
	return update, nil
}
