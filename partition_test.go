package autoparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeIdenticalBindings(t *testing.T) {
	providerX := &fakeParser{name: "X"}
	lookup := MapLookup{
		"pkgA": ParserMap{"item": providerX, "row": &fakeParser{name: "row"}},
		"pkgB": ParserMap{"item": providerX},
	}
	settings, err := NewSettingsBuilder().
		WithPartitionLookup(lookup).
		WithPartitions("pkgA", "pkgB").
		Build()
	require.NoError(t, err, "identical bindings are idempotent")
	parser, ok := settings.ParserForTag("item")
	require.True(t, ok, "item bound")
	assert.Equal(t, providerX, parser, "item resolves to the shared parser")
}

func TestMergeCollision(t *testing.T) {
	lookup := MapLookup{
		"pkgA": ParserMap{"item": &fakeParser{name: "X"}},
		"pkgB": ParserMap{"item": &fakeParser{name: "Y"}},
	}

	_, err := NewSettingsBuilder().
		WithPartitionLookup(lookup).
		WithPartitions("pkgA", "pkgB").
		Build()
	require.Error(t, err, "collision must fail the build")
	var collision CollisionError
	require.ErrorAs(t, err, &collision, "cause")
	assert.Equal(t, "item", collision.Tag, "tag")
	assert.Equal(t, "pkgA", collision.PartitionA, "first binder")
	assert.Equal(t, "pkgB", collision.PartitionB, "second binder")
	assert.True(t, IsConfigurationError(err), "classified as configuration error")

	// Symmetry: registration order changes only the reported order, never
	// the outcome.
	_, err = NewSettingsBuilder().
		WithPartitionLookup(lookup).
		WithPartitions("pkgB", "pkgA").
		Build()
	require.Error(t, err, "collision is symmetric")
	require.ErrorAs(t, err, &collision, "cause")
	assert.Equal(t, "item", collision.Tag, "tag")
	assert.Equal(t, "pkgB", collision.PartitionA, "first binder after reorder")
	assert.Equal(t, "pkgA", collision.PartitionB, "second binder after reorder")
}

func TestUnknownPartition(t *testing.T) {
	_, err := NewSettingsBuilder().
		WithPartitionLookup(MapLookup{}).
		WithPartitions("nope").
		Build()
	require.Error(t, err, "unknown partition must fail the build")
	var unknown UnknownPartitionError
	require.ErrorAs(t, err, &unknown, "cause")
	assert.Equal(t, "nope", unknown.Partition, "partition named")
}

func TestRegisterPartition(t *testing.T) {
	parser := &fakeParser{name: "entry"}
	bindings := ParserMap{"entry": parser}
	RegisterPartition("partition_test.registered", bindings)

	// The registry copies bindings; later mutation must not leak in.
	bindings["other"] = &fakeParser{name: "other"}

	settings, err := NewSettingsBuilder().
		WithPartitions("partition_test.registered").
		Build()
	require.NoError(t, err, "build against the global registry")
	got, ok := settings.ParserForTag("entry")
	require.True(t, ok, "entry bound")
	assert.Equal(t, parser, got, "entry parser")
	_, ok = settings.ParserForTag("other")
	assert.False(t, ok, "mutation after registration is not visible")

	assert.Panics(t, func() {
		RegisterPartition("partition_test.registered", ParserMap{})
	}, "duplicate registration panics")
}
