package buildcache

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/zeebo/blake3"
	"go.trai.ch/crate/internal/core/domain"
)

// domainKey is a 32-byte BLAKE3 key. Each entry kind hashes under its own
// key so equal inputs of different kinds never share a digest.
type domainKey [32]byte

var (
	assetDomainKey = domainKey{
		'c', 'r', 'a', 't', 'e', '.', 'e', 'n', 't', 'r', 'y', '.',
		'a', 's', 's', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	fileDomainKey = domainKey{
		'c', 'r', 'a', 't', 'e', '.', 'e', 'n', 't', 'r', 'y', '.',
		'f', 'i', 'l', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	scriptDomainKey = domainKey{
		'c', 'r', 'a', 't', 'e', '.', 'e', 'n', 't', 'r', 'y', '.',
		's', 'c', 'r', 'i', 'p', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	composeDomainKey = domainKey{
		'c', 'r', 'a', 't', 'e', '.', 'e', 'n', 't', 'r', 'y', '.',
		'c', 'o', 'm', 'p', 'o', 's', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// digest hashes parts under key, each part prefixed by its length, and
// truncates the result to 128 bits.
func digest(key domainKey, parts ...[]byte) domain.Hash128 {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("buildcache: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var size [binary.MaxVarintLen64]byte
	for _, p := range parts {
		n := binary.PutUvarint(size[:], uint64(len(p)))
		_, _ = hasher.Write(size[:n])
		_, _ = hasher.Write(p)
	}

	var out domain.Hash128
	copy(out[:], hasher.Sum(nil))
	return out
}

func int64Bytes(v int64) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(v))
}

func uint64Bytes(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

// composeDigest folds dependency digests into base in sorted order, so the
// result does not depend on the order dependencies were discovered in.
func composeDigest(base domain.Hash128, deps []domain.CacheEntry) domain.Hash128 {
	hashes := make([]domain.Hash128, len(deps))
	for i, d := range deps {
		hashes[i] = d.Hash
	}
	slices.SortFunc(hashes, func(a, b domain.Hash128) int {
		return bytes.Compare(a[:], b[:])
	})

	parts := make([][]byte, 0, len(hashes)+1)
	parts = append(parts, base[:])
	for i := range hashes {
		parts = append(parts, hashes[i][:])
	}
	return digest(composeDomainKey, parts...)
}
