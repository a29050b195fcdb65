package ports

import "context"

// CondaClient exposes facts about the host's conda installation.
//
//go:generate go run go.uber.org/mock/mockgen -source=conda.go -destination=mocks/mock_conda.go -package=mocks
type CondaClient interface {
	// EnvDirectories returns the directories in which the host's conda clients
	// keep named environments.
	EnvDirectories(ctx context.Context) ([]string, error)
}
