package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNewEnvSpec_ExactlyOne(t *testing.T) {
	spec, err := domain.NewEnvSpec("envs/test.yaml", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Kind() != domain.SpecEnvFile {
		t.Errorf("expected SpecEnvFile, got %v", spec.Kind())
	}
	if spec.EnvFile() != "envs/test.yaml" {
		t.Errorf("expected envfile path, got %q", spec.EnvFile())
	}

	spec, err = domain.NewEnvSpec("", "base", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Kind() != domain.SpecName || spec.Name() != "base" {
		t.Errorf("expected name spec base, got %v %q", spec.Kind(), spec.Name())
	}

	spec, err = domain.NewEnvSpec("", "", "/opt/envs/base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Kind() != domain.SpecDirectory || spec.Directory() != "/opt/envs/base" {
		t.Errorf("expected directory spec, got %v %q", spec.Kind(), spec.Directory())
	}
}

func TestNewEnvSpec_NoneSet(t *testing.T) {
	_, err := domain.NewEnvSpec("", "", "")
	if !errors.Is(err, domain.ErrAmbiguousSpec) {
		t.Fatalf("expected ErrAmbiguousSpec, got %v", err)
	}
}

func TestNewEnvSpec_TwoSet(t *testing.T) {
	_, err := domain.NewEnvSpec("envs/test.yaml", "base", "")
	if !errors.Is(err, domain.ErrAmbiguousSpec) {
		t.Fatalf("expected ErrAmbiguousSpec, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["name"].(string); !ok || name != "base" {
		t.Errorf("expected metadata name=base, got %v", meta["name"])
	}
}

func TestEnvSpec_LockfilePath(t *testing.T) {
	spec, err := domain.NewEnvSpec("envs/test.yaml", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := spec.LockfilePath(domain.Platform("linux-64"))
	if got != "envs/test.linux-64.pin.txt" {
		t.Errorf("expected envs/test.linux-64.pin.txt, got %q", got)
	}

	got = spec.LockfilePath(domain.Platform("osx-arm64"))
	if got != "envs/test.osx-arm64.pin.txt" {
		t.Errorf("expected envs/test.osx-arm64.pin.txt, got %q", got)
	}
}

func TestEnvSpec_LockfilePath_NonEnvFile(t *testing.T) {
	spec, err := domain.NewEnvSpec("", "base", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := spec.LockfilePath(domain.Platform("linux-64")); got != "" {
		t.Errorf("expected empty lock path for name spec, got %q", got)
	}
}

func TestEnvSpec_Capabilities(t *testing.T) {
	fileSpec, _ := domain.NewEnvSpec("envs/test.yaml", "", "")
	nameSpec, _ := domain.NewEnvSpec("", "base", "")
	dirSpec, _ := domain.NewEnvSpec("", "", "/opt/envs/base")

	if !fileSpec.Deployable() || !fileSpec.Cacheable() || !fileSpec.Pinnable() {
		t.Error("envfile spec should be deployable, cacheable, and pinnable")
	}
	if nameSpec.Deployable() || nameSpec.Cacheable() || nameSpec.Pinnable() {
		t.Error("name spec should not be deployable, cacheable, or pinnable")
	}
	if dirSpec.Deployable() || dirSpec.Cacheable() || dirSpec.Pinnable() {
		t.Error("directory spec should not be deployable, cacheable, or pinnable")
	}
}

func TestEnvSpec_String(t *testing.T) {
	fileSpec, _ := domain.NewEnvSpec("envs/test.yaml", "", "")
	nameSpec, _ := domain.NewEnvSpec("", "base", "")
	dirSpec, _ := domain.NewEnvSpec("", "", "/opt/envs/base")

	if fileSpec.String() != "envs/test.yaml" {
		t.Errorf("unexpected String: %q", fileSpec.String())
	}
	if nameSpec.String() != "base" {
		t.Errorf("unexpected String: %q", nameSpec.String())
	}
	if dirSpec.String() != "/opt/envs/base" {
		t.Errorf("unexpected String: %q", dirSpec.String())
	}
}
