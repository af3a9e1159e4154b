package autoparse

import (
	"reflect"
)

// SettingsBuilder accumulates parser configuration.  It is meant for a
// single goroutine during a sequential configuration phase; it is not safe
// for concurrent mutation.  Each mutator returns the receiver so calls can
// be chained.  Build() finalizes the configuration and the builder should be
// discarded afterwards.
type SettingsBuilder struct {
	unknownElementType       reflect.Type
	unknownElementParser     ElementParser
	unknownElementHandling   UnknownElementHandling
	ignoreUnexpectedChildren bool
	partitions               []string
	filters                  Filters
	lookup                   PartitionLookup
	validator                Validate
}

// NewSettingsBuilder returns a builder with the defaults: unknown tags are
// parsed (when a fallback parser is configured), unexpected children are
// parse failures, no filters, and the default partition.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{}
}

// WithUnknownElementHandling sets the strategy for element tags that have no
// binding in any requested partition, replacing any prior value.  The
// default is ParseUnknown.
func (b *SettingsBuilder) WithUnknownElementHandling(handling UnknownElementHandling) *SettingsBuilder {
	b.unknownElementHandling = handling
	return b
}

// IgnoreUnexpectedChildren controls what happens when a parser encounters a
// child element its model declares no field for.  If ignore is true the
// child is skipped; if false the parser fails the document.
func (b *SettingsBuilder) IgnoreUnexpectedChildren(ignore bool) *SettingsBuilder {
	b.ignoreUnexpectedChildren = ignore
	return b
}

// WithUnknownElementParser sets an explicit fallback parser for unknown tags
// along with the model type it produces.  Setting an explicit parser
// bypasses the registry lookup that WithUnknownElementType triggers.
func (b *SettingsBuilder) WithUnknownElementParser(parser ElementParser, elementType reflect.Type) *SettingsBuilder {
	b.unknownElementParser = parser
	b.unknownElementType = elementType
	return b
}

// WithUnknownElementType sets the model type unknown tags materialize into.
// The parser for it must have been generated: Build() derives the
// conventional parser name from elementType (see ParserName) and looks the
// instance up among the registered parsers, failing if it is absent or does
// not implement ElementParser.
func (b *SettingsBuilder) WithUnknownElementType(elementType reflect.Type) *SettingsBuilder {
	b.unknownElementType = elementType
	return b
}

// WithPartitions appends partition identifiers to the list Build() resolves.
// The list is append-only and duplicates are kept: requesting the same
// partition twice is harmless since re-declaring an identical binding is a
// no-op during the merge.  If no partitions are ever requested, Build() uses
// DefaultPartition.
func (b *SettingsBuilder) WithPartitions(partitions ...string) *SettingsBuilder {
	b.partitions = append(b.partitions, partitions...)
	return b
}

// AddFilter appends one filter to the chain applied to attribute values and
// text content.  Filters run in the order they were added.
func (b *SettingsBuilder) AddFilter(filter StringTransformer) *SettingsBuilder {
	b.filters = append(b.filters, filter)
	return b
}

// AddFilters appends a batch of filters, preserving their order.
func (b *SettingsBuilder) AddFilters(filters ...StringTransformer) *SettingsBuilder {
	b.filters = append(b.filters, filters...)
	return b
}

// WithPartitionLookup swaps out how partition identifiers resolve to tag
// bindings.  The default is the process-wide registry populated by
// RegisterPartition.
func (b *SettingsBuilder) WithPartitionLookup(lookup PartitionLookup) *SettingsBuilder {
	b.lookup = lookup
	return b
}

// WithValidate supplies a validator that the stream parser runs on each
// materialized object.  https://github.com/go-playground/validator satisfies
// the interface.
func (b *SettingsBuilder) WithValidate(v Validate) *SettingsBuilder {
	b.validator = v
	return b
}

// Build validates and finalizes the configuration.  It merges the tag
// bindings of every requested partition (defaulting to DefaultPartition if
// none were requested), resolves the unknown-element strategy, and returns
// an immutable Settings value.
//
// Any misconfiguration aborts the build with an error wrapped by
// ConfigurationError; the underlying cause is one of UnknownPartitionError,
// CollisionError, ImplementationNotFoundError, or WrongCapabilityTypeError.
// No partially valid Settings is ever returned.
func (b *SettingsBuilder) Build() (*Settings, error) {
	partitions := b.partitions
	if len(partitions) == 0 {
		partitions = []string{DefaultPartition}
	}
	lookup := b.lookup
	if lookup == nil {
		lookup = globalPartitions
	}
	merged, err := mergePartitions(lookup, partitions)
	if err != nil {
		return nil, ConfigurationError(err)
	}
	parser := b.unknownElementParser
	if parser == nil && b.unknownElementType != nil {
		parser, err = lookupGeneratedParser(b.unknownElementType)
		if err != nil {
			return nil, ConfigurationError(err)
		}
	}
	return &Settings{
		unknownElementHandling:   b.unknownElementHandling,
		ignoreUnexpectedChildren: b.ignoreUnexpectedChildren,
		unknownElementType:       b.unknownElementType,
		unknownElementParser:     parser,
		filters:                  append(Filters(nil), b.filters...),
		partitions:               copyStrings(partitions),
		parsers:                  merged,
		validator:                b.validator,
	}, nil
}
