/*
Package autoparse configures how an XML stream parser maps element tags to
parser implementations.

Parsers are grouped into named partitions.  Code generation (or hand-written
registration) declares each partition's tag bindings at init() time with
RegisterPartition().  A SettingsBuilder collects which partitions to use, how
to treat element tags that have no binding, and an ordered chain of string
filters to apply to attribute values and text content.

Build() is the single validating step.  It merges the tag bindings of every
requested partition, rejecting the configuration if two partitions bind the
same tag to different parsers, and settles the unknown-element strategy,
including the lookup of a generated fallback parser when only a model type
was supplied.  The result is an immutable Settings value that any number of
concurrent parsing sessions can share.

	settings, err := autoparse.NewSettingsBuilder().
		WithPartitions("models", "models/extensions").
		IgnoreUnexpectedChildren(true).
		AddFilter(strings.TrimSpace).
		Build()

Every misconfiguration is reported by Build(), never during parsing: unknown
partition identifiers, tag collisions between partitions, and missing or
unusable fallback parsers all abort Build() with a descriptive error.

Unknown element tags are handled one of three ways, chosen with
WithUnknownElementHandling: parse them with a designated fallback parser
(the default), skip them and their subtrees, or reject the document.  When
parsing is selected but no fallback parser was configured, unknown tags are
skipped; Settings.EffectiveUnknownElementHandling reports that.
*/
package autoparse
