package autoparse

import (
	"fmt"
	"reflect"
)

// UnknownElementHandling selects what the stream parser does with an element
// tag that has no binding in any requested partition.
type UnknownElementHandling int

const (
	// ParseUnknown materializes unknown tags with the configured fallback
	// parser.  This is the default.  If no fallback parser was configured,
	// unknown tags are skipped instead; see
	// Settings.EffectiveUnknownElementHandling.
	ParseUnknown UnknownElementHandling = iota

	// IgnoreUnknown skips unknown tags and their entire subtrees.
	IgnoreUnknown

	// RejectUnknown aborts parsing of the document when an unknown tag is
	// encountered.
	RejectUnknown
)

func (h UnknownElementHandling) String() string {
	switch h {
	case ParseUnknown:
		return "parse"
	case IgnoreUnknown:
		return "ignore"
	case RejectUnknown:
		return "reject"
	}
	return fmt.Sprintf("UnknownElementHandling(%d)", int(h))
}

func unknownElementHandlingFromString(name string) (UnknownElementHandling, error) {
	switch name {
	case "parse":
		return ParseUnknown, nil
	case "ignore":
		return IgnoreUnknown, nil
	case "reject":
		return RejectUnknown, nil
	}
	return ParseUnknown, fmt.Errorf("unknown element handling must be parse, ignore, or reject, not %q", name)
}

// Validate is a subset of the Validate provided by
// https://github.com/go-playground/validator, allowing
// other implementations to be provided if desired.  When configured with
// SettingsBuilder.WithValidate, the stream parser runs it on each fully
// materialized object.
type Validate interface {
	Struct(s interface{}) error
}

// Settings is the immutable product of SettingsBuilder.Build().  It is safe
// to share across any number of concurrent parsing sessions: every accessor
// is read-only and slice-valued accessors return copies.
type Settings struct {
	unknownElementHandling   UnknownElementHandling
	ignoreUnexpectedChildren bool
	unknownElementType       reflect.Type
	unknownElementParser     ElementParser
	filters                  Filters
	partitions               []string
	parsers                  ParserMap
	validator                Validate
}

// UnknownElementHandling returns the configured strategy for unbound tags,
// exactly as it was set on the builder.
func (s *Settings) UnknownElementHandling() UnknownElementHandling {
	return s.unknownElementHandling
}

// EffectiveUnknownElementHandling resolves the one ambiguous configuration:
// ParseUnknown with no fallback parser behaves as IgnoreUnknown, and this
// accessor says so.  In every other case it matches UnknownElementHandling.
func (s *Settings) EffectiveUnknownElementHandling() UnknownElementHandling {
	if s.unknownElementHandling == ParseUnknown && s.unknownElementParser == nil {
		return IgnoreUnknown
	}
	return s.unknownElementHandling
}

// IgnoreUnexpectedChildren reports whether a child element that has no
// declared field in its parent's model is skipped (true) or treated as a
// parse failure (false).
func (s *Settings) IgnoreUnexpectedChildren() bool {
	return s.ignoreUnexpectedChildren
}

// UnknownElementType returns the model type unknown tags materialize into,
// or nil if none was configured.
func (s *Settings) UnknownElementType() reflect.Type {
	return s.unknownElementType
}

// UnknownElementParser returns the fallback parser for unknown tags, or nil
// if none was configured.
func (s *Settings) UnknownElementParser() ElementParser {
	return s.unknownElementParser
}

// Filters returns the ordered filter chain.
func (s *Settings) Filters() Filters {
	return append(Filters(nil), s.filters...)
}

// ApplyFilters runs value through the configured filter chain, in the order
// the filters were added.
func (s *Settings) ApplyFilters(value string) string {
	return s.filters.Apply(value)
}

// Partitions returns the partition identifiers these settings were resolved
// from, in request order, duplicates included.
func (s *Settings) Partitions() []string {
	return copyStrings(s.partitions)
}

// ParserForTag returns the parser the merged partitions bind tag to.  This
// is the lookup the stream parser performs for every element it encounters.
func (s *Settings) ParserForTag(tag string) (ElementParser, bool) {
	parser, ok := s.parsers[tag]
	return parser, ok
}

// Validator returns the configured model validator, or nil.
func (s *Settings) Validator() Validate {
	return s.validator
}
