package domain

// Platform identifies the host platform in conda subdir notation
// (e.g. "linux-64", "osx-arm64", "win-64").
type Platform string

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// VirtualPackage is a solver-visible fact about the host platform (OS,
// architecture, libc) used as an implicit constraint during solving.
type VirtualPackage struct {
	// Name is the virtual package name (e.g. "__linux", "__glibc", "__archspec").
	Name string

	// Version is the detected version, or "0" when the fact is merely present.
	Version string

	// Build is the build string, conventionally "0" or the architecture.
	Build string
}
