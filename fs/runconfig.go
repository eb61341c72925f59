package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docref"
)

// Ensure RunConfigChecker implements docref.RunConfigurationChecker at compile time.
var _ docref.RunConfigurationChecker = (*RunConfigChecker)(nil)

// ProjectDirMacro is expanded to the project directory in configured paths.
const ProjectDirMacro = "$PROJECT_DIR$"

// RunConfigChecker verifies run configurations against the local file system.
type RunConfigChecker struct {
	// ProjectDir resolves relative paths and ProjectDirMacro.
	ProjectDir string
}

// NewRunConfigChecker creates a checker resolving paths against projectDir.
func NewRunConfigChecker(projectDir string) *RunConfigChecker {
	return &RunConfigChecker{ProjectDir: projectDir}
}

// Check returns EINVALID unless the bnd run file is a regular file and,
// when an alternative JRE is selected, its path is a JRE home.
func (c *RunConfigChecker) Check(cfg *docref.RunConfiguration) error {
	if cfg == nil {
		return docref.Errorf(docref.EINVALID, "run configuration required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if info, err := os.Stat(c.Resolve(cfg.BndRunFile)); err != nil || !info.Mode().IsRegular() {
		return docref.Errorf(docref.EINVALID, "bnd run file %q is not a file", cfg.BndRunFile)
	}

	if cfg.UseAlternativeJRE {
		home := c.Resolve(cfg.AlternativeJREPath)
		if info, err := os.Stat(home); err != nil || !info.IsDir() || !hasJava(home) {
			return docref.Errorf(docref.EINVALID, "alternative JRE path %q is not a valid JRE home", cfg.AlternativeJREPath)
		}
	}

	return nil
}

// Resolve expands ProjectDirMacro and makes relative paths absolute.
func (c *RunConfigChecker) Resolve(path string) string {
	path = strings.ReplaceAll(path, ProjectDirMacro, c.ProjectDir)
	if !filepath.IsAbs(path) && c.ProjectDir != "" {
		path = filepath.Join(c.ProjectDir, path)
	}
	return filepath.Clean(path)
}

func hasJava(home string) bool {
	for _, name := range []string{"java", "java.exe"} {
		if info, err := os.Stat(filepath.Join(home, "bin", name)); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}
