package mock

import (
	"context"
	"io"

	"github.com/fwojciec/docref"
)

var _ docref.ReferenceStore = (*ReferenceStore)(nil)

// ReferenceStore is a mock implementation of docref.ReferenceStore.
type ReferenceStore struct {
	SaveFn   func(ctx context.Context, lib *docref.Library, entries []docref.ReferenceEntry) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ReferenceStore) Save(ctx context.Context, lib *docref.Library, entries []docref.ReferenceEntry) error {
	return s.SaveFn(ctx, lib, entries)
}

func (s *ReferenceStore) Commit() error {
	return s.CommitFn()
}

func (s *ReferenceStore) Abort() error {
	return s.AbortFn()
}

var _ docref.RunConfigurationCodec = (*RunConfigurationCodec)(nil)

// RunConfigurationCodec is a mock implementation of docref.RunConfigurationCodec.
type RunConfigurationCodec struct {
	ReadFn  func(r io.Reader) (*docref.RunConfiguration, error)
	WriteFn func(w io.Writer, cfg *docref.RunConfiguration) error
}

func (c *RunConfigurationCodec) Read(r io.Reader) (*docref.RunConfiguration, error) {
	return c.ReadFn(r)
}

func (c *RunConfigurationCodec) Write(w io.Writer, cfg *docref.RunConfiguration) error {
	return c.WriteFn(w, cfg)
}

var _ docref.RunConfigurationChecker = (*RunConfigurationChecker)(nil)

// RunConfigurationChecker is a mock implementation of docref.RunConfigurationChecker.
type RunConfigurationChecker struct {
	CheckFn func(cfg *docref.RunConfiguration) error
}

func (c *RunConfigurationChecker) Check(cfg *docref.RunConfiguration) error {
	return c.CheckFn(cfg)
}

var _ docref.Transactor = (*Transactor)(nil)

// Transactor is a mock implementation of docref.Transactor.
type Transactor struct {
	WithTxFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (t *Transactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.WithTxFn(ctx, fn)
}
