package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(_ context.Context, _ Input, _ Judge) (*float64, string, error) {
	return nil, "", nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(Metric{
		Name:    "m1",
		Kind:    KindDeterministic,
		Require: []Requirement{RequireOutput},
		Compute: noop,
	})
	r.Freeze()

	m, ok := r.Get("m1")
	require.True(t, ok)
	assert.Equal(t, "m1", m.Name)
	assert.True(t, m.Requires(RequireOutput))
	assert.False(t, m.Requires(RequireQuery))

	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_PanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register(Metric{Name: "m1", Compute: noop})
	assert.Panics(t, func() {
		r.Register(Metric{Name: "m1", Compute: noop})
	})
}

func TestRegistry_PanicsAfterFreeze(t *testing.T) {
	r := NewRegistry()
	r.Freeze()
	assert.Panics(t, func() {
		r.Register(Metric{Name: "late", Compute: noop})
	})
}

func TestRegistry_PanicsWithoutCompute(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.Register(Metric{Name: "broken"})
	})
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(Metric{Name: "zeta", Compute: noop})
	r.Register(Metric{Name: "alpha", Compute: noop})
	r.Freeze()

	names := r.Names()
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
}
