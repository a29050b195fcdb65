package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// SpecKind discriminates the three mutually exclusive ways to describe an
// environment.
type SpecKind int

const (
	// SpecEnvFile identifies an environment by a declarative file.
	SpecEnvFile SpecKind = iota + 1
	// SpecName identifies a pre-existing environment by name.
	SpecName
	// SpecDirectory identifies an environment by its prefix directory.
	SpecDirectory
)

// lockfileSuffix is appended (after the platform) to the envfile basename to
// derive the lock file path.
const lockfileSuffix = ".pin.txt"

// EnvSpec describes an environment by exactly one identity: a declarative
// envfile, a name, or a directory. Instances are immutable after construction.
type EnvSpec struct {
	kind      SpecKind
	envFile   string
	name      string
	directory string
}

// NewEnvSpec constructs an EnvSpec from up to three optional identity inputs.
// Exactly one must be non-empty, otherwise ErrAmbiguousSpec is returned.
func NewEnvSpec(envFile, name, directory string) (EnvSpec, error) {
	set := 0
	for _, v := range []string{envFile, name, directory} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		err := zerr.With(ErrAmbiguousSpec, "envfile", envFile)
		err = zerr.With(err, "name", name)
		return EnvSpec{}, zerr.With(err, "directory", directory)
	}

	switch {
	case envFile != "":
		return EnvSpec{kind: SpecEnvFile, envFile: envFile}, nil
	case name != "":
		return EnvSpec{kind: SpecName, name: name}, nil
	default:
		return EnvSpec{kind: SpecDirectory, directory: directory}, nil
	}
}

// Kind returns the active identity variant.
func (s EnvSpec) Kind() SpecKind {
	return s.kind
}

// EnvFile returns the declarative file path. Empty unless Kind is SpecEnvFile.
func (s EnvSpec) EnvFile() string {
	return s.envFile
}

// Name returns the environment name. Empty unless Kind is SpecName.
func (s EnvSpec) Name() string {
	return s.name
}

// Directory returns the prefix directory. Empty unless Kind is SpecDirectory.
func (s EnvSpec) Directory() string {
	return s.directory
}

// LockfilePath derives the companion lock file path for the given platform by
// replacing the envfile's extension with ".<platform>.pin.txt". It returns
// the empty string for name and directory specs.
func (s EnvSpec) LockfilePath(platform Platform) string {
	if s.kind != SpecEnvFile {
		return ""
	}
	base := strings.TrimSuffix(s.envFile, filepath.Ext(s.envFile))
	return base + "." + platform.String() + lockfileSuffix
}

// Deployable reports whether the environment can be materialized into a
// deployment prefix. Only envfile specs are deployable; named and directory
// environments already exist on the host.
func (s EnvSpec) Deployable() bool {
	return s.kind == SpecEnvFile
}

// Cacheable reports whether the environment's artifacts can be cached.
func (s EnvSpec) Cacheable() bool {
	return s.kind == SpecEnvFile
}

// Pinnable reports whether the environment's resolution can be pinned to a
// lock file.
func (s EnvSpec) Pinnable() bool {
	return s.kind == SpecEnvFile
}

// String returns the active identity value.
func (s EnvSpec) String() string {
	switch s.kind {
	case SpecEnvFile:
		return s.envFile
	case SpecDirectory:
		return s.directory
	default:
		return s.name
	}
}
