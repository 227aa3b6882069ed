// Package config loads and validates the environment catalog.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/condaops/condactl/internal/messages"
)

// DefaultPath is the catalog location used when no --config flag is given.
const DefaultPath = "config/environments.json"

// DefaultEnvironment is the catalog entry assumed when no --env flag is given
// and no interactive selection is possible.
const DefaultEnvironment = "torchpy310"

// Catalog maps environment names to their descriptors. It is built once at
// process start and treated as read-only by every operation.
type Catalog struct {
	Environments map[string]Environment `yaml:"environments" toml:"environments"`
}

// Environment pins a Python version and the package lists installed into one
// named conda environment.
type Environment struct {
	Python   string   `yaml:"python" toml:"python"`
	Packages Packages `yaml:"packages" toml:"packages"`
	Channels []string `yaml:"channels" toml:"channels"`
}

// Packages splits an environment's package list by installer back-end.
type Packages struct {
	Conda []string `yaml:"conda" toml:"conda"`
	Pip   []string `yaml:"pip" toml:"pip"`
}

// UnknownEnvironmentError reports a lookup for an environment the catalog
// does not define.
type UnknownEnvironmentError struct {
	Name      string
	Available []string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf(messages.ConfigUnknownEnvironmentFmt, e.Name, strings.Join(e.Available, ", "))
}

// Names returns the catalog's environment names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named environment descriptor.
func (c *Catalog) Lookup(name string) (Environment, error) {
	env, ok := c.Environments[name]
	if !ok {
		return Environment{}, &UnknownEnvironmentError{Name: name, Available: c.Names()}
	}
	return env, nil
}

// Validate checks structural catalog invariants. source is used in error
// messages.
func (c *Catalog) Validate(source string) error {
	if len(c.Environments) == 0 {
		return fmt.Errorf(messages.ConfigNoEnvironmentsFmt, source)
	}
	for _, name := range c.Names() {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s: %s", source, messages.ConfigEnvironmentNameEmpty)
		}
		if strings.TrimSpace(c.Environments[name].Python) == "" {
			return fmt.Errorf(messages.ConfigPythonVersionMissingFmt, source, name)
		}
	}
	return nil
}
