package conda

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// envDirClients are the clients asked for environment directories, in
// preference order.
var envDirClients = []string{"micromamba", "conda", "mamba"}

// Client implements ports.CondaClient.
type Client struct{}

// NewClient creates a new Client.
func NewClient() *Client {
	return &Client{}
}

// condaInfo is the JSON shape of "info --json". micromamba reports
// "envs directories", conda reports "envs_dirs".
type condaInfo struct {
	EnvsDirectories []string `json:"envs directories"`
	EnvsDirs        []string `json:"envs_dirs"`
}

// EnvDirectories queries each known conda client for its environment
// directories and returns the union in client order. Per-client failures are
// accumulated; only if every client fails is ErrCondaClientUnavailable
// returned, carrying the individual causes.
func (c *Client) EnvDirectories(ctx context.Context) ([]string, error) {
	var dirs []string
	var failures []string
	success := false

	for _, client := range envDirClients {
		//nolint:gosec // client names are a fixed list
		cmd := exec.CommandContext(ctx, client, "info", "--json")
		output, err := cmd.Output()
		if err != nil {
			failures = append(failures, client+": "+err.Error())
			continue
		}

		var info condaInfo
		if err := json.Unmarshal(output, &info); err != nil {
			failures = append(failures, client+": "+err.Error())
			continue
		}

		success = true
		dirs = append(dirs, info.EnvsDirectories...)
		dirs = append(dirs, info.EnvsDirs...)
	}

	if !success {
		return nil, zerr.With(domain.ErrCondaClientUnavailable, "clients", strings.Join(failures, "; "))
	}
	return dirs, nil
}
