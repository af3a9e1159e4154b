package autoparse

import (
	"sync"

	"github.com/pkg/errors"
)

// DefaultPartition is the partition Build() resolves when the builder was
// given no partitions at all.  To combine explicit partitions with the
// default one, include DefaultPartition in the WithPartitions call.
const DefaultPartition = "default"

// PartitionLookup resolves a partition identifier to the tag bindings that
// partition declares.  Lookup must fail with an UnknownPartitionError when
// the identifier was never registered.  Implementations are consulted only
// while settings are being built and the returned map is never mutated.
type PartitionLookup interface {
	Lookup(partition string) (ParserMap, error)
}

// MapLookup is a PartitionLookup backed by a plain map.  It is convenient in
// tests and for callers that assemble partitions by hand instead of through
// RegisterPartition.
type MapLookup map[string]ParserMap

var _ PartitionLookup = MapLookup{}

func (m MapLookup) Lookup(partition string) (ParserMap, error) {
	bindings, ok := m[partition]
	if !ok {
		return nil, errors.WithStack(UnknownPartitionError{Partition: partition})
	}
	return bindings, nil
}

type partitionRegistry struct {
	lock       sync.RWMutex
	partitions map[string]ParserMap
}

var _ PartitionLookup = &partitionRegistry{}

var globalPartitions = &partitionRegistry{
	partitions: make(map[string]ParserMap),
}

// RegisterPartition declares a partition's tag bindings in the process-wide
// registry that Build() consults by default.  It is meant to be called from
// init() functions of generated packages, once per partition; registering
// the same name twice panics.  The bindings map is copied, so the caller may
// reuse it.
func RegisterPartition(name string, bindings ParserMap) {
	globalPartitions.lock.Lock()
	defer globalPartitions.lock.Unlock()
	if _, ok := globalPartitions.partitions[name]; ok {
		panic("autoparse: partition " + name + " registered twice")
	}
	m := make(ParserMap, len(bindings))
	for tag, parser := range bindings {
		m[tag] = parser
	}
	globalPartitions.partitions[name] = m
}

func (r *partitionRegistry) Lookup(partition string) (ParserMap, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	bindings, ok := r.partitions[partition]
	if !ok {
		return nil, errors.WithStack(UnknownPartitionError{Partition: partition})
	}
	return bindings, nil
}

// mergePartitions folds the tag bindings of each partition, in request
// order, into one map.  Re-declaring a tag with the identical parser is a
// no-op; binding it to a different parser aborts the merge with a
// CollisionError naming the tag and both partitions.  The first collision
// wins: no partial result escapes.
func mergePartitions(lookup PartitionLookup, partitions []string) (ParserMap, error) {
	merged := make(ParserMap)
	origins := make(map[string]string)
	for _, partition := range partitions {
		bindings, err := lookup.Lookup(partition)
		if err != nil {
			return nil, err
		}
		debug("merge: partition", partition, "declares", len(bindings), "tags")
		for tag, parser := range bindings {
			existing, ok := merged[tag]
			if !ok {
				merged[tag] = parser
				origins[tag] = partition
				continue
			}
			if existing == parser {
				continue
			}
			return nil, errors.WithStack(CollisionError{
				Tag:        tag,
				PartitionA: origins[tag],
				PartitionB: partition,
			})
		}
	}
	return merged, nil
}
