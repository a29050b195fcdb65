package domain

import "strings"

// Software reports one piece of software contained in an environment.
type Software struct {
	// Name is the package name.
	Name string

	// Version is the declared version constraint, empty when unconstrained.
	Version string

	// Secondary marks packages installed by the secondary (pip) installer.
	Secondary bool
}

// constraint operators that terminate a package name in a match spec string.
const specOperators = "=<>!~"

// ParseSoftware splits a constraint string (e.g. "python=3.11", "numpy>=1.2")
// into a Software entry. Whitespace around name and version is dropped.
func ParseSoftware(constraint string, secondary bool) Software {
	idx := strings.IndexAny(constraint, specOperators)
	if idx < 0 {
		return Software{Name: strings.TrimSpace(constraint), Secondary: secondary}
	}
	name := strings.TrimSpace(constraint[:idx])
	version := strings.TrimSpace(strings.TrimLeft(constraint[idx:], specOperators))
	return Software{Name: name, Version: version, Secondary: secondary}
}
