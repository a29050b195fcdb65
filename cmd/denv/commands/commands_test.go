package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/cmd/denv/commands"
	"go.trai.ch/denv/internal/adapters/envfile"
	"go.trai.ch/denv/internal/adapters/lockfile"
	"go.trai.ch/denv/internal/adapters/telemetry"
	"go.trai.ch/denv/internal/app"
	"go.trai.ch/denv/internal/build"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports/mocks"
	"go.trai.ch/denv/internal/engine/env"
	"go.uber.org/mock/gomock"
)

type testCLI struct {
	cli       *commands.CLI
	solver    *mocks.MockSolver
	installer *mocks.MockInstaller
	assets    *mocks.MockAssetCache
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	detector := mocks.NewMockPlatformDetector(ctrl)
	detector.EXPECT().Current().Return(domain.Platform("linux-64")).AnyTimes()
	detector.EXPECT().VirtualPackages().Return(nil).AnyTimes()

	tc := &testCLI{
		solver:    mocks.NewMockSolver(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		assets:    mocks.NewMockAssetCache(ctrl),
	}
	factory := env.NewFactory(env.Deps{
		Loader:    envfile.NewLoader(),
		Codec:     lockfile.NewCodec(),
		Solver:    tc.solver,
		Installer: tc.installer,
		Pip:       mocks.NewMockPipInstaller(ctrl),
		Assets:    tc.assets,
		Conda:     mocks.NewMockCondaClient(ctrl),
		Detector:  detector,
		Logger:    logger,
	})
	a := app.New(factory, telemetry.NewNoOp(), logger)
	tc.cli = commands.New(a)
	return tc
}

func writeEnvFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	content := `
channels:
  - conda-forge
dependencies:
  - python=3.11
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommands_Deploy_WiresFlags(t *testing.T) {
	tc := newTestCLI(t)
	prefix := filepath.Join(t.TempDir(), "prefix")

	tc.solver.EXPECT().
		Solve(gomock.Any(), []string{"conda-forge"}, []string{"python=3.11"}, gomock.Any()).
		Return([]domain.PackageRecord{{Name: "python", URL: "https://example.org/pkgs/python-3.11.0-h0_0.conda"}}, nil).
		Times(1)
	tc.installer.EXPECT().
		Install(gomock.Any(), gomock.Any(), prefix, gomock.Any()).
		Return(nil).
		Times(1)

	tc.cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	tc.cli.SetArgs([]string{"deploy", "--file", writeEnvFile(t), "--prefix", prefix, "--work-dir", t.TempDir()})

	require.NoError(t, tc.cli.Execute(context.Background()))
}

func TestCommands_ID_PrintsHash(t *testing.T) {
	tc := newTestCLI(t)

	out := new(bytes.Buffer)
	tc.cli.SetOutput(out, new(bytes.Buffer))
	tc.cli.SetArgs([]string{"id", "-f", writeEnvFile(t)})

	require.NoError(t, tc.cli.Execute(context.Background()))
	assert.Len(t, out.String(), 65) // 64 hex chars plus newline
}

func TestCommands_Software(t *testing.T) {
	tc := newTestCLI(t)

	out := new(bytes.Buffer)
	tc.cli.SetOutput(out, new(bytes.Buffer))
	tc.cli.SetArgs([]string{"software", "-f", writeEnvFile(t)})

	require.NoError(t, tc.cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "python 3.11")
}

func TestCommands_Cache_List(t *testing.T) {
	tc := newTestCLI(t)

	records := []domain.PackageRecord{
		{Name: "python", URL: "https://example.org/pkgs/python-3.11.0-h0_0.conda"},
	}
	tc.solver.EXPECT().
		Solve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(records, nil).
		Times(1)
	tc.assets.EXPECT().
		AssetNames(records).
		Return([]string{"python-3.11.0-h0_0.conda"}).
		Times(1)

	out := new(bytes.Buffer)
	tc.cli.SetOutput(out, new(bytes.Buffer))
	tc.cli.SetArgs([]string{"cache", "--list", "-f", writeEnvFile(t), "--work-dir", t.TempDir()})

	require.NoError(t, tc.cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "python-3.11.0-h0_0.conda")
}

func TestCommands_ConflictingIdentityFlags(t *testing.T) {
	tc := newTestCLI(t)

	tc.cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	tc.cli.SetArgs([]string{"id", "-f", "envs/test.yaml", "-n", "base"})

	err := tc.cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestCommands_Version(t *testing.T) {
	tc := newTestCLI(t)

	out := new(bytes.Buffer)
	tc.cli.SetOutput(out, out)
	tc.cli.SetArgs([]string{"version"})

	require.NoError(t, tc.cli.Execute(context.Background()))
	assert.Contains(t, out.String(), build.Version)
}
