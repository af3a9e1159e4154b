package autoparse

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Profile is the file-loadable subset of parser settings: everything that is
// plain data.  Filters, parser instances, and lookup overrides still have to
// be configured in code.  Pointer fields distinguish "not present in the
// file" from an explicit zero value; absent fields leave the builder
// untouched.
type Profile struct {
	Partitions               []string `yaml:"partitions"`
	UnknownElements          *string  `yaml:"unknownElements"` // parse, ignore, or reject
	IgnoreUnexpectedChildren *bool    `yaml:"ignoreUnexpectedChildren"`
}

// LoadProfile reads a YAML settings profile.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read settings profile")
	}
	var profile Profile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return nil, errors.Wrap(err, "parse settings profile "+path)
	}
	return &profile, nil
}

// ApplyProfile copies everything the profile specifies onto the builder.
// Partitions append like WithPartitions; the scalar fields replace prior
// values only when present in the profile.
func (b *SettingsBuilder) ApplyProfile(profile *Profile) (*SettingsBuilder, error) {
	if len(profile.Partitions) > 0 {
		b.WithPartitions(profile.Partitions...)
	}
	if profile.UnknownElements != nil {
		handling, err := unknownElementHandlingFromString(*profile.UnknownElements)
		if err != nil {
			return nil, ConfigurationError(err)
		}
		b.WithUnknownElementHandling(handling)
	}
	if profile.IgnoreUnexpectedChildren != nil {
		b.IgnoreUnexpectedChildren(*profile.IgnoreUnexpectedChildren)
	}
	return b, nil
}
