package domain

import "go.trai.ch/zerr"

var (
	// ErrAmbiguousSpec is returned when an environment spec does not set exactly
	// one of envfile, name, or directory.
	ErrAmbiguousSpec = zerr.New("exactly one of envfile, name, or directory must be set")

	// ErrEnvFileRead is returned when the declarative environment file cannot be
	// read or parsed.
	ErrEnvFileRead = zerr.New("failed to read environment file")

	// ErrMalformedSpec is returned when a dependency block in the environment
	// file has an invalid shape.
	ErrMalformedSpec = zerr.New("malformed dependency block")

	// ErrLockFileFormat is returned when a lock file violates the expected
	// line shape.
	ErrLockFileFormat = zerr.New("invalid lock file format")

	// ErrLockFileHeader is returned when a lock file carries no explicit-mode
	// header. Resolution treats such a file as absent and falls back to
	// solving.
	ErrLockFileHeader = zerr.New("lock file missing explicit header")

	// ErrResolution is returned when the solving service fails. Resolution is
	// never retried locally; retry is a host decision.
	ErrResolution = zerr.New("failed to resolve environment")

	// ErrDownload is returned when fetching a package artifact fails. The
	// operation is safe to re-invoke: completed assets are skipped.
	ErrDownload = zerr.New("failed to download package artifact")

	// ErrMissingInterpreter is returned when pip dependencies are declared but
	// the deployed prefix carries no python interpreter.
	ErrMissingInterpreter = zerr.New("no python interpreter found in environment")

	// ErrPipInstall is returned when the secondary pip installer exits non-zero.
	ErrPipInstall = zerr.New("failed to install pip packages")

	// ErrRemoval is returned when a deployed prefix cannot be removed.
	ErrRemoval = zerr.New("failed to remove environment prefix")

	// ErrEnvNotFound is returned when a named environment cannot be located in
	// any known environment directory.
	ErrEnvNotFound = zerr.New("environment not found")

	// ErrEnvAmbiguous is returned when a named environment exists in more than
	// one environment directory.
	ErrEnvAmbiguous = zerr.New("multiple environments found with the same name")

	// ErrCondaClientUnavailable is returned when no conda client could report
	// its environment directories.
	ErrCondaClientUnavailable = zerr.New("could not determine conda environment directories")
)
