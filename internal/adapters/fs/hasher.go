package fs

import (
	"encoding/binary"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests of asset files and folders.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
// For a folder asset it hashes every file below it in lexical order, each
// prefixed by its path.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	if info.IsDir() {
		return h.hashDir(path)
	}
	return h.hashContent(path)
}

func (h *Hasher) hashContent(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

func (h *Hasher) hashDir(root string) (uint64, error) {
	files := slices.Sorted(h.walker.WalkFiles(root, nil))

	hasher := xxhash.New()
	for _, file := range files {
		_, _ = hasher.WriteString(file)
		_, _ = hasher.Write([]byte{0}) // Separator

		sum, err := h.hashContent(file)
		if err != nil {
			return 0, err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return 0, zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return hasher.Sum64(), nil
}
