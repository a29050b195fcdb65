// Package detector resolves host platform facts once at the application
// boundary.
package detector

import (
	"runtime"

	"go.trai.ch/denv/internal/core/domain"
)

// condaSubdirs maps GOOS/GOARCH pairs to conda subdir notation.
var condaSubdirs = map[string]domain.Platform{
	"linux/amd64":   "linux-64",
	"linux/arm64":   "linux-aarch64",
	"linux/ppc64le": "linux-ppc64le",
	"darwin/amd64":  "osx-64",
	"darwin/arm64":  "osx-arm64",
	"windows/amd64": "win-64",
}

// archspecNames maps GOARCH to archspec architecture names.
var archspecNames = map[string]string{
	"amd64":   "x86_64",
	"arm64":   "aarch64",
	"ppc64le": "ppc64le",
}

// Detector implements ports.PlatformDetector. Detection happens once at
// construction; callers receive the same values for the process lifetime.
type Detector struct {
	platform domain.Platform
	virtual  []domain.VirtualPackage
}

// New creates a Detector for the current host.
func New() *Detector {
	return newForSystem(runtime.GOOS, runtime.GOARCH)
}

// newForSystem creates a Detector for an explicit GOOS/GOARCH pair (used for
// testing).
func newForSystem(goos, goarch string) *Detector {
	platform, ok := condaSubdirs[goos+"/"+goarch]
	if !ok {
		platform = domain.Platform(goos + "-" + goarch)
	}

	var virtual []domain.VirtualPackage
	switch goos {
	case "linux":
		virtual = append(virtual,
			domain.VirtualPackage{Name: "__unix", Version: "0", Build: "0"},
			domain.VirtualPackage{Name: "__linux", Version: "0", Build: "0"},
			domain.VirtualPackage{Name: "__glibc", Version: "2.17", Build: "0"},
		)
	case "darwin":
		virtual = append(virtual,
			domain.VirtualPackage{Name: "__unix", Version: "0", Build: "0"},
			domain.VirtualPackage{Name: "__osx", Version: "0", Build: "0"},
		)
	case "windows":
		virtual = append(virtual,
			domain.VirtualPackage{Name: "__win", Version: "0", Build: "0"},
		)
	}
	if arch, ok := archspecNames[goarch]; ok {
		virtual = append(virtual, domain.VirtualPackage{Name: "__archspec", Version: "1", Build: arch})
	}

	return &Detector{platform: platform, virtual: virtual}
}

// Current returns the host platform in conda subdir notation.
func (d *Detector) Current() domain.Platform {
	return d.platform
}

// VirtualPackages returns the solver-visible baseline packages of the host.
func (d *Detector) VirtualPackages() []domain.VirtualPackage {
	return d.virtual
}
