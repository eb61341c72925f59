package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryResolver_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mocks can be used where the narrow interface is expected
	var _ docref.LibraryResolver = &mock.LibraryResolver{}
	var _ docref.LibraryResolver = &mock.LibraryService{}
}

func TestMocks_ImplementInterfaces(t *testing.T) {
	t.Parallel()

	var _ docref.LinkSet = &mock.LinkSet{}
	var _ docref.Transactor = &mock.Transactor{}
}

func TestLibraryResolver_FindLibrariesForFile(t *testing.T) {
	t.Parallel()

	t.Run("delegates to FindLibrariesForFileFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		r := &mock.LibraryResolver{
			FindLibrariesForFileFn: func(_ context.Context, file string) ([]*docref.Library, error) {
				calledWith = file
				return []*docref.Library{{URL: "dart:core"}}, nil
			},
		}

		libs, err := r.FindLibrariesForFile(context.Background(), "lib/core/object.dart")

		require.NoError(t, err)
		assert.Equal(t, "lib/core/object.dart", calledWith)
		require.Len(t, libs, 1)
		assert.Equal(t, "dart:core", libs[0].URL)
	})
}
