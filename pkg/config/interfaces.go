package config

// Package config provides policy loading and validation for the signal engine

// Loader builds a ready-to-use policy from defaults, an optional policy
// file, and the process environment.
type Loader interface {
	// LoadPolicy loads the policy; path may be empty to skip the file layer
	LoadPolicy(path string) (*ConfluencePolicy, error)

	// SavePolicy writes the policy to a file
	SavePolicy(policy *ConfluencePolicy, path string) error
}

// Validator checks a policy beyond the structural rules enforced at
// decision time.
type Validator interface {
	// Validate rejects policies the engine would refuse to evaluate
	Validate(policy *ConfluencePolicy) error

	// Warnings reports legal but suspicious settings
	Warnings(policy *ConfluencePolicy) []string
}
