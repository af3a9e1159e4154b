package autoparse

import (
	"fmt"

	"github.com/pkg/errors"
)

type configurationError struct {
	cause error
}

// ConfigurationError annotates an error as being a configuration error: the
// settings as described cannot be used and must be corrected before a new
// builder is finalized.  Everything Build() returns is wrapped this way.
func ConfigurationError(err error) error {
	if err == nil {
		return nil
	}
	return configurationError{
		cause: errors.WithStack(err),
	}
}

func (c configurationError) Error() string { return c.cause.Error() }
func (c configurationError) Unwrap() error { return c.cause }
func (c configurationError) Cause() error  { return c.cause }
func (c configurationError) Is(err error) bool {
	_, ok := err.(configurationError)
	return ok
}

// IsConfigurationError reports if this error came from finalizing settings.
func IsConfigurationError(err error) bool {
	var c configurationError
	return errors.Is(err, c)
}

// UnknownPartitionError is returned when a requested partition identifier
// was never registered.
type UnknownPartitionError struct {
	Partition string
}

func (e UnknownPartitionError) Error() string {
	return fmt.Sprintf("no partition registered under %q", e.Partition)
}

// CollisionError is returned when two partitions bind the same element tag
// to different parsers.  PartitionA is the partition whose binding was seen
// first, in the order the partitions were requested.
type CollisionError struct {
	Tag        string
	PartitionA string
	PartitionB string
}

func (e CollisionError) Error() string {
	return fmt.Sprintf("element tag %q is bound to different parsers by partitions %q and %q",
		e.Tag, e.PartitionA, e.PartitionB)
}

// ImplementationNotFoundError is returned when an unknown-element model type
// was configured but no parser is registered under the name derived from
// that type.  Usually this means the type is missing the annotation that
// triggers parser generation, or the generated package was never imported.
type ImplementationNotFoundError struct {
	DerivedName string
}

func (e ImplementationNotFoundError) Error() string {
	return fmt.Sprintf("no parser registered under %q", e.DerivedName)
}

// WrongCapabilityTypeError is returned when the value registered under a
// derived parser name does not implement ElementParser.
type WrongCapabilityTypeError struct {
	DerivedName string
	Registered  string // type of the registered value
}

func (e WrongCapabilityTypeError) Error() string {
	return fmt.Sprintf("value registered under %q is %s, not an ElementParser",
		e.DerivedName, e.Registered)
}
