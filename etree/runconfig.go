// Package etree persists run configurations in the IntelliJ run
// configuration XML format using the etree library.
package etree

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/docref"
)

// Ensure RunConfigCodec implements docref.RunConfigurationCodec at compile time.
var _ docref.RunConfigurationCodec = (*RunConfigCodec)(nil)

// ComponentName is the name of the wrapping element of shared run
// configuration files (.run/*.run.xml).
const ComponentName = "ProjectRunConfigurationManager"

// Option names.
const (
	optionBndRunFile         = "bndRunFile"
	optionUseAlternativeJRE  = "useAlternativeJre"
	optionAlternativeJREPath = "alternativeJrePath"
)

// RunConfigCodec reads and writes bnd run configurations as
//
//	<component name="ProjectRunConfigurationManager">
//	  <configuration name="..." type="OsgiBndRunConfigurationType">
//	    <option name="bndRunFile" value="..."/>
//	  </configuration>
//	</component>
//
// A bare <configuration> root is accepted on read.
type RunConfigCodec struct{}

// NewRunConfigCodec creates a new RunConfigCodec.
func NewRunConfigCodec() *RunConfigCodec {
	return &RunConfigCodec{}
}

// Read decodes a run configuration. Missing options keep their defaults
// and unknown options are ignored.
func (c *RunConfigCodec) Read(r io.Reader) (*docref.RunConfiguration, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, docref.Errorf(docref.EINVALID, "parsing run configuration XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docref.Errorf(docref.EINVALID, "empty run configuration XML")
	}

	el := root
	if root.Tag == "component" {
		el = root.SelectElement("configuration")
		if el == nil {
			return nil, docref.Errorf(docref.EINVALID, "no configuration element in component %q", root.SelectAttrValue("name", ""))
		}
	}
	if el.Tag != "configuration" {
		return nil, docref.Errorf(docref.EINVALID, "unexpected root element <%s>", el.Tag)
	}
	if typ := el.SelectAttrValue("type", ""); typ != docref.RunConfigurationType {
		return nil, docref.Errorf(docref.EINVALID, "unsupported run configuration type %q", typ)
	}

	cfg := &docref.RunConfiguration{Name: el.SelectAttrValue("name", "")}
	for _, opt := range el.SelectElements("option") {
		value := opt.SelectAttrValue("value", "")
		switch opt.SelectAttrValue("name", "") {
		case optionBndRunFile:
			cfg.BndRunFile = value
		case optionUseAlternativeJRE:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, docref.Errorf(docref.EINVALID, "option %s: %q is not a boolean", optionUseAlternativeJRE, value)
			}
			cfg.UseAlternativeJRE = b
		case optionAlternativeJREPath:
			cfg.AlternativeJREPath = value
		}
	}

	return cfg, nil
}

// Write encodes cfg, omitting options that hold their default values.
func (c *RunConfigCodec) Write(w io.Writer, cfg *docref.RunConfiguration) error {
	if cfg == nil {
		return docref.Errorf(docref.EINVALID, "run configuration required")
	}

	doc := etree.NewDocument()
	component := doc.CreateElement("component")
	component.CreateAttr("name", ComponentName)

	el := component.CreateElement("configuration")
	el.CreateAttr("name", cfg.Name)
	el.CreateAttr("type", docref.RunConfigurationType)

	addOption := func(name, value string) {
		opt := el.CreateElement("option")
		opt.CreateAttr("name", name)
		opt.CreateAttr("value", value)
	}
	if cfg.BndRunFile != "" {
		addOption(optionBndRunFile, cfg.BndRunFile)
	}
	if cfg.UseAlternativeJRE {
		addOption(optionUseAlternativeJRE, strconv.FormatBool(cfg.UseAlternativeJRE))
	}
	if cfg.AlternativeJREPath != "" {
		addOption(optionAlternativeJREPath, cfg.AlternativeJREPath)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing run configuration: %w", err)
	}
	return nil
}
