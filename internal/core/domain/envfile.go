package domain

// EnvFile is the parsed content of a declarative environment file. The
// dependency list is partitioned at parse time: bare constraint strings become
// CondaSpecs, the list under the first "pip" mapping becomes PipSpecs.
type EnvFile struct {
	// Channels lists the package channels in declaration order.
	Channels []string

	// CondaSpecs lists the conda constraint strings in declaration order.
	CondaSpecs []string

	// PipSpecs lists the pip constraint strings, nil when the file declares no
	// pip block.
	PipSpecs []string

	// Document is the raw parsed document. It is the canonical input to the
	// environment identity hash and must not be mutated after parsing.
	Document map[string]any
}

// HasPipSpecs reports whether the file declares a pip dependency block.
func (f *EnvFile) HasPipSpecs() bool {
	return len(f.PipSpecs) > 0
}
