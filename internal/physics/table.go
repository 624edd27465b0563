package physics

import (
	"fmt"
	"math/rand"
)

// DefaultAttraction is the coefficient every new group pair starts with.
const DefaultAttraction = 1000.0

type Rule struct {
	From, To string
	Value    float64
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s: %.2f", r.From, r.To, r.Value)
}

// AttractionTable holds a signed coefficient for every directed group
// pair. Positive values attract, negative values repel.
type AttractionTable struct {
	order []string
	rules map[string]map[string]float64
}

func NewAttractionTable() *AttractionTable {
	return &AttractionTable{rules: make(map[string]map[string]float64)}
}

func (t *AttractionTable) Has(group string) bool {
	_, ok := t.rules[group]
	return ok
}

// Register adds group with DefaultAttraction towards itself and in both
// directions against every existing group. Registering an existing group
// is a no-op.
func (t *AttractionTable) Register(group string) bool {
	if t.Has(group) {
		return false
	}
	row := make(map[string]float64, len(t.order)+1)
	t.rules[group] = row
	t.order = append(t.order, group)

	for _, other := range t.order {
		row[other] = DefaultAttraction
		t.rules[other][group] = DefaultAttraction
	}
	return true
}

// Get returns the coefficient applied to a body of group from by a body
// of group to. Missing entries read as DefaultAttraction.
func (t *AttractionTable) Get(from, to string) float64 {
	if t == nil {
		return DefaultAttraction
	}
	row, ok := t.rules[from]
	if !ok {
		return DefaultAttraction
	}
	v, ok := row[to]
	if !ok {
		return DefaultAttraction
	}
	return v
}

// Lookup is Get with an error for unregistered groups.
func (t *AttractionTable) Lookup(from, to string) (float64, error) {
	if !t.Has(from) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, from)
	}
	if !t.Has(to) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, to)
	}
	return t.rules[from][to], nil
}

func (t *AttractionTable) Set(from, to string, v float64) error {
	if !t.Has(from) {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, from)
	}
	if !t.Has(to) {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, to)
	}
	t.rules[from][to] = v
	return nil
}

// Groups returns group names in registration order.
func (t *AttractionTable) Groups() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Randomize draws every directed coefficient independently from
// [min, max). The result is generally not symmetric.
func (t *AttractionTable) Randomize(rng *rand.Rand, min, max float64) {
	for _, a := range t.order {
		for _, b := range t.order {
			t.rules[a][b] = rng.Float64()*(max-min) + min
		}
	}
}

// Rules lists every directed coefficient, rows in registration order.
func (t *AttractionTable) Rules() []Rule {
	out := make([]Rule, 0, len(t.order)*len(t.order))
	for _, a := range t.order {
		for _, b := range t.order {
			out = append(out, Rule{From: a, To: b, Value: t.rules[a][b]})
		}
	}
	return out
}

func (t *AttractionTable) Clone() *AttractionTable {
	c := NewAttractionTable()
	c.order = append(c.order, t.order...)
	for a, row := range t.rules {
		r := make(map[string]float64, len(row))
		for b, v := range row {
			r[b] = v
		}
		c.rules[a] = r
	}
	return c
}
