package ports

import "go.trai.ch/denv/internal/core/domain"

// PlatformDetector reports host platform facts. It is resolved once at the
// application boundary and threaded through; components never re-query the
// host ad hoc.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type PlatformDetector interface {
	// Current returns the host platform in conda subdir notation.
	Current() domain.Platform

	// VirtualPackages returns the solver-visible baseline packages of the host.
	VirtualPackages() []domain.VirtualPackage
}
