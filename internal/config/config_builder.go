package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration snapshots from several sources and
// merges them into one StructuredConfig. Sources are added in priority
// order, environment first, then flags, then the JSON file, and the merge
// keeps the first non-zero value for each field.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) add(src *StructuredConfig) {
	b.sources = append(b.sources, src)
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("assembling configuration: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("merging configuration sources: %w", err)
		}
	}

	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.add(ParseFlags())
	return b
}

// withJSON loads the JSON file only when an earlier source named one. The
// scan keeps the last path seen so a flag value overrides an env value.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(jsonCfg)
	return b
}

func (b *configBuilder) jsonPath() string {
	path := ""
	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			path = src.JSONFilePath
		}
	}
	return path
}
