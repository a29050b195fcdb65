package domain

import "strings"

// PackageRecord is one resolved, installable package artifact. Records are
// produced by resolution and never mutated afterwards. Their order is
// significant for lock file round-tripping.
type PackageRecord struct {
	// Name is the package name. Populated when decoded from a lock line or
	// reported by the solver; may be empty otherwise.
	Name string

	// URL is the retrieval URL of the artifact, without checksum fragment.
	URL string

	// Checksum is the optional integrity fragment carried after "#" in a lock
	// line. It is passed through unparsed.
	Checksum string
}

// AssetName returns the artifact's cache file name: the final path segment of
// the retrieval URL.
func (r PackageRecord) AssetName() string {
	idx := strings.LastIndex(r.URL, "/")
	if idx < 0 {
		return r.URL
	}
	return r.URL[idx+1:]
}
