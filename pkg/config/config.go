// Package config provides the .bumpedrc configuration: tracked files and release hooks.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Phases of a release.
const (
	PhasePrerelease  = "prerelease"
	PhasePostrelease = "postrelease"
)

// Config is the persisted payload: tracked files and the plugins of each phase.
type Config struct {
	Files   []string `yaml:"files"`
	Plugins Plugins  `yaml:"plugins"`
}

// Plugins holds the hooks of each release phase.
type Plugins struct {
	Prerelease  Hooks `yaml:"prerelease,omitempty"`
	Postrelease Hooks `yaml:"postrelease,omitempty"`
}

// ForPhase returns the hooks registered for phase, nil for an unknown phase.
func (p Plugins) ForPhase(phase string) Hooks {
	switch phase {
	case PhasePrerelease:
		return p.Prerelease
	case PhasePostrelease:
		return p.Postrelease
	}
	return nil
}

// Hook is a named plugin registration within a phase.
type Hook struct {
	Description string
	Plugin      string
	Options     map[string]interface{}
}

// Hooks keeps the declaration order of the YAML mapping, which is the execution order.
type Hooks []Hook

const pluginKey = "plugin"

// UnmarshalYAML decodes a mapping of description to settings.
func (h *Hooks) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*h = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w (line %d)", ErrHooksNotMapping, node.Line)
	}

	hooks := make(Hooks, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		description := node.Content[i].Value

		settings := map[string]interface{}{}
		if err := node.Content[i+1].Decode(&settings); err != nil {
			return fmt.Errorf("hook %q: %w", description, err)
		}

		plugin, _ := settings[pluginKey].(string)
		delete(settings, pluginKey)

		hooks = append(hooks, Hook{
			Description: description,
			Plugin:      plugin,
			Options:     settings,
		})
	}

	*h = hooks
	return nil
}

// MarshalYAML encodes hooks as an ordered mapping, the plugin key first.
func (h Hooks) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, hook := range h {
		settings := &yaml.Node{}
		options := hook.Options
		if options == nil {
			options = map[string]interface{}{}
		}
		if err := settings.Encode(options); err != nil {
			return nil, fmt.Errorf("hook %q: %w", hook.Description, err)
		}
		settings.Style = 0
		settings.Content = append([]*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: pluginKey},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: hook.Plugin},
		}, settings.Content...)

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: hook.Description},
			settings,
		)
	}
	return node, nil
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Files))
	for _, file := range c.Files {
		if file == "" {
			return ErrFileEmpty
		}
		if seen[file] {
			return fmt.Errorf("%w: %s", ErrFileDuplicated, file)
		}
		seen[file] = true
	}

	for _, phase := range []string{PhasePrerelease, PhasePostrelease} {
		for _, hook := range c.Plugins.ForPhase(phase) {
			if hook.Plugin == "" {
				return fmt.Errorf("%w: %s hook %q", ErrHookPluginEmpty, phase, hook.Description)
			}
		}
	}

	return nil
}
