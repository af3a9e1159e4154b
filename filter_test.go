package autoparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterOrder(t *testing.T) {
	f1 := func(s string) string { return s + "1" }
	f2 := func(s string) string { return s + "2" }
	f3 := func(s string) string { return s + "3" }

	single, err := NewSettingsBuilder().
		WithPartitionLookup(emptyDefault()).
		AddFilter(f1).
		AddFilter(f2).
		AddFilter(f3).
		Build()
	require.NoError(t, err, "build with single adds")
	assert.Equal(t, "s123", single.ApplyFilters("s"), "f3(f2(f1(s)))")

	batch, err := NewSettingsBuilder().
		WithPartitionLookup(emptyDefault()).
		AddFilters(f1, f2).
		AddFilter(f3).
		Build()
	require.NoError(t, err, "build with batch adds")
	assert.Equal(t, "s123", batch.ApplyFilters("s"), "batch adds keep order")
}

func TestFilterOrderNotCommutative(t *testing.T) {
	upper := strings.ToUpper
	bang := func(s string) string { return s + "!" }

	settings, err := NewSettingsBuilder().
		WithPartitionLookup(emptyDefault()).
		AddFilters(bang, upper).
		Build()
	require.NoError(t, err, "build")
	assert.Equal(t, "HI!", settings.ApplyFilters("hi"), "later filters see earlier output")
}

func TestEmptyChainIsIdentity(t *testing.T) {
	var f Filters
	assert.Equal(t, "as is", f.Apply("as is"), "no filters, no change")
}

func TestFiltersAccessorIsACopy(t *testing.T) {
	settings, err := NewSettingsBuilder().
		WithPartitionLookup(emptyDefault()).
		AddFilter(func(s string) string { return s + "x" }).
		Build()
	require.NoError(t, err, "build")

	got := settings.Filters()
	got[0] = func(s string) string { return "hijacked" }
	assert.Equal(t, "sx", settings.ApplyFilters("s"), "settings keep their own chain")
}

func TestBuilderFiltersDetachedFromSettings(t *testing.T) {
	b := NewSettingsBuilder().
		WithPartitionLookup(emptyDefault()).
		AddFilter(func(s string) string { return s + "x" })
	settings, err := b.Build()
	require.NoError(t, err, "build")

	b.AddFilter(func(s string) string { return s + "y" })
	assert.Equal(t, "sx", settings.ApplyFilters("s"), "later builder mutation is invisible")
	assert.Len(t, settings.Filters(), 1, "settings kept one filter")
}
