package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// PolicyManager implements Loader for confluence policies
type PolicyManager struct {
	validator Validator
}

// NewPolicyManager creates a new policy manager
func NewPolicyManager() *PolicyManager {
	return &PolicyManager{
		validator: NewPolicyValidator(),
	}
}

// LoadPolicy builds the effective policy in three layers: defaults,
// then the policy file when a path is given, then SIGNAL_* environment
// overrides. The merged result is validated before it is returned.
func (m *PolicyManager) LoadPolicy(path string) (*ConfluencePolicy, error) {
	policy := NewDefaultPolicy()

	if path != "" {
		if err := m.loadFromFile(path, policy); err != nil {
			return nil, fmt.Errorf("failed to load policy file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, policy); err != nil {
		return nil, fmt.Errorf("failed to read policy environment overrides: %w", err)
	}

	if err := m.ValidatePolicy(policy); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}

	return policy, nil
}

// loadFromFile loads a policy from a JSON or YAML file, picked by
// extension. Unknown extensions are treated as JSON.
func (m *PolicyManager) loadFromFile(path string, policy *ConfluencePolicy) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read policy file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, policy); err != nil {
			return fmt.Errorf("could not parse yaml policy: %w", err)
		}
	default:
		if err := json.Unmarshal(data, policy); err != nil {
			return fmt.Errorf("could not parse json policy: %w", err)
		}
	}

	return nil
}

// ValidatePolicy validates a policy using the validator
func (m *PolicyManager) ValidatePolicy(policy *ConfluencePolicy) error {
	return m.validator.Validate(policy)
}

// PolicyWarnings reports legal but suspicious settings for callers
// that surface them to the operator.
func (m *PolicyManager) PolicyWarnings(policy *ConfluencePolicy) []string {
	return m.validator.Warnings(policy)
}

// SavePolicy writes the policy to a file, as YAML or JSON by
// extension.
func (m *PolicyManager) SavePolicy(policy *ConfluencePolicy, path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(policy)
	default:
		data, err = json.MarshalIndent(policy, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal policy: %w", err)
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0644)
}
