package ports

import "go.trai.ch/lintcfg/internal/core/domain"

// CapabilityDetector inspects a project directory for the features that decide
// which override fragments are built.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type CapabilityDetector interface {
	// Detect reads the project manifest in dir and reports its capabilities.
	Detect(dir string) (domain.Capabilities, error)

	// ManifestPaths returns the files and directories whose changes can alter the detected capabilities.
	ManifestPaths(dir string) []string
}
