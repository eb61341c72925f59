// Package scip imports Dart declarations from SCIP indexes, such as those
// produced by scip_dart, into docref storage.
package scip

import (
	"errors"
	"os"

	"github.com/fwojciec/docref"
	scippb "github.com/sourcegraph/scip/bindings/go/scip"
	"google.golang.org/protobuf/proto"
)

// LoadIndex reads and decodes a SCIP index file.
func LoadIndex(path string) (*scippb.Index, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docref.Errorf(docref.ENOTFOUND, "SCIP index not found at %s", path)
	}
	if err != nil {
		return nil, err
	}

	var index scippb.Index
	if err := proto.Unmarshal(data, &index); err != nil {
		return nil, docref.Errorf(docref.EINVALID, "failed to parse SCIP index %s: %v", path, err)
	}

	return &index, nil
}
