package autoparse

import (
	"encoding/xml"
)

// ElementParser materializes an object from a single XML element.  An
// implementation consumes tokens from d, starting with the element opened by
// start and ending with its matching end element, and returns the object the
// element represents.
//
// Parsers are usually generated and registered as singletons; this package
// compares them by identity when checking partitions for tag collisions, so
// a given binding should always hand out the same instance.
type ElementParser interface {
	ParseElement(d *xml.Decoder, start xml.StartElement) (interface{}, error)
}

// ParserMap binds element tags to the parsers that handle them.  A partition
// supplies one ParserMap; the builder merges the maps of all requested
// partitions when settings are built.
type ParserMap map[string]ElementParser
