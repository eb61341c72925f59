package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docref"
	main "github.com/fwojciec/docref/cmd/docref"
	"github.com/fwojciec/docref/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	core := &docref.Library{ID: "core", URL: "dart:core"}
	libraries := &mock.LibraryService{
		FindLibrariesFn: func(_ context.Context, _ docref.LibraryFilter) ([]*docref.Library, error) {
			return []*docref.Library{core}, nil
		},
		FindLibrariesForFileFn: func(_ context.Context, _ string) ([]*docref.Library, error) {
			return []*docref.Library{core}, nil
		},
	}

	t.Run("saves each library with resolved URLs and commits", func(t *testing.T) {
		t.Parallel()

		var saved []docref.ReferenceEntry
		var committed bool
		var storeDir string
		stdout := &bytes.Buffer{}
		deps := queryDeps(stdout, &bytes.Buffer{}, objectClass, toString)
		deps.Libraries = libraries
		deps.NewStore = func(dir string) docref.ReferenceStore {
			storeDir = dir
			return &mock.ReferenceStore{
				SaveFn: func(_ context.Context, lib *docref.Library, entries []docref.ReferenceEntry) error {
					saved = entries
					return nil
				},
				CommitFn: func() error {
					committed = true
					return nil
				},
			}
		}

		err := (&main.ExportCmd{Dir: "/tmp/reference"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/reference", storeDir)
		assert.True(t, committed)
		require.Len(t, saved, 2)
		assert.Equal(t, "http://api.dartlang.org/docs/releases/latest/dart_core/Object.html#id_toString", saved[1].URL)
		assert.Contains(t, stdout.String(), "Exported 2 declarations from 1 libraries")
	})

	t.Run("aborts when saving fails", func(t *testing.T) {
		t.Parallel()

		var aborted, committed bool
		stderr := &bytes.Buffer{}
		deps := queryDeps(&bytes.Buffer{}, stderr, objectClass)
		deps.Libraries = libraries
		deps.NewStore = func(string) docref.ReferenceStore {
			return &mock.ReferenceStore{
				SaveFn: func(context.Context, *docref.Library, []docref.ReferenceEntry) error {
					return errors.New("disk full")
				},
				CommitFn: func() error {
					committed = true
					return nil
				},
				AbortFn: func() error {
					aborted = true
					return nil
				},
			}
		}

		err := (&main.ExportCmd{Dir: "/tmp/reference"}).Run(deps)

		require.Error(t, err)
		assert.True(t, aborted)
		assert.False(t, committed)
		assert.Contains(t, stderr.String(), "dart:core")
	})
}
