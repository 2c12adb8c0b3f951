// Package detector derives project capabilities from package.json and the
// configuration files next to it.
package detector

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	manifestFile = "package.json"
	tsconfigFile = "tsconfig.json"
	storybookDir = ".storybook"
)

// manifest is the subset of package.json the detector reads.
type manifest struct {
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// declared merges all dependency sections. Runtime dependencies take
// precedence over dev and peer declarations of the same package.
func (m manifest) declared() map[string]string {
	out := make(map[string]string, len(m.Dependencies)+len(m.DevDependencies)+len(m.PeerDependencies))
	for _, section := range []map[string]string{m.PeerDependencies, m.DevDependencies, m.Dependencies} {
		for name, v := range section {
			out[name] = v
		}
	}
	return out
}

// Detector implements ports.CapabilityDetector on the local filesystem.
type Detector struct{}

// New creates a Detector.
func New() *Detector {
	return &Detector{}
}

// Detect reads package.json in dir and reports the project's capabilities.
func (d *Detector) Detect(dir string) (domain.Capabilities, error) {
	path := filepath.Join(dir, manifestFile)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Capabilities{}, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return domain.Capabilities{}, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Capabilities{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	deps := m.declared()
	has := func(name string) bool {
		_, ok := deps[name]
		return ok
	}

	caps := domain.Capabilities{
		HasJest:           has("jest"),
		HasJestDom:        has("@testing-library/jest-dom"),
		HasTestingLibrary: hasTestingLibrary(deps),
		HasStorybook:      hasPrefix(deps, "@storybook/") || exists(filepath.Join(dir, storybookDir)),
		React: domain.ReactCapabilities{
			HasReact:         has("react"),
			IsNext:           has("next"),
			IsCreateReactApp: has("react-scripts"),
			Version:          deps["react"],
		},
		TypeScript: domain.TypeScriptCapabilities{
			HasTypeScript: has("typescript") || exists(filepath.Join(dir, tsconfigFile)),
			Version:       deps["typescript"],
		},
	}
	caps.HasTypeScript = caps.TypeScript.HasTypeScript

	return caps, nil
}

// ManifestPaths returns the files and directories Detect reads.
func (d *Detector) ManifestPaths(dir string) []string {
	return []string{
		filepath.Join(dir, manifestFile),
		filepath.Join(dir, tsconfigFile),
		filepath.Join(dir, storybookDir),
	}
}

// hasTestingLibrary reports a framework testing-library package. jest-dom and
// user-event only extend one and do not count on their own.
func hasTestingLibrary(deps map[string]string) bool {
	for name := range deps {
		pkg, ok := strings.CutPrefix(name, "@testing-library/")
		if ok && pkg != "jest-dom" && pkg != "user-event" {
			return true
		}
	}
	return false
}

func hasPrefix(deps map[string]string, prefix string) bool {
	for name := range deps {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
