package docref

import "io"

// RunConfigurationType is the type identifier written to persisted
// run configurations.
const RunConfigurationType = "OsgiBndRunConfigurationType"

// RunConfiguration launches a bnd run descriptor (a .bndrun file) as a
// debuggable process. The zero value holds the defaults.
type RunConfiguration struct {
	Name string `json:"name"`

	// BndRunFile is the path of the .bndrun descriptor to launch.
	BndRunFile string `json:"bndRunFile"`

	// UseAlternativeJRE selects AlternativeJREPath instead of the project JRE.
	UseAlternativeJRE  bool   `json:"useAlternativeJre"`
	AlternativeJREPath string `json:"alternativeJrePath"`
}

// Validate returns an error if the configuration is incomplete. It does not
// touch the file system; see RunConfigurationChecker for that.
func (c *RunConfiguration) Validate() error {
	if c.BndRunFile == "" {
		return Errorf(EINVALID, "bnd run file required")
	}
	if c.UseAlternativeJRE && c.AlternativeJREPath == "" {
		return Errorf(EINVALID, "alternative JRE path required when alternative JRE is enabled")
	}
	return nil
}

// RunConfigurationCodec reads and writes persisted run configurations.
type RunConfigurationCodec interface {
	// Read decodes a configuration. Options missing from the input keep
	// their default values.
	Read(r io.Reader) (*RunConfiguration, error)

	// Write encodes a configuration, omitting options equal to their defaults.
	Write(w io.Writer, cfg *RunConfiguration) error
}

// RunConfigurationChecker verifies a configuration against the environment
// it will run in.
type RunConfigurationChecker interface {
	// Check returns EINVALID if the configuration cannot be launched.
	Check(cfg *RunConfiguration) error
}
