package cas

import (
	"encoding/binary"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompressionTag identifies the compression of a record file. It is stored as
// the first byte of every file, so the values are fixed.
type CompressionTag uint8

const (
	// CompressionNone stores the encoded record as is.
	CompressionNone CompressionTag = 0
	// CompressionLZ4 uses LZ4 block compression.
	CompressionLZ4 CompressionTag = 1
	// CompressionZstd uses zstd at the default level.
	CompressionZstd CompressionTag = 2
)

// String returns the configuration spelling of the tag.
func (tag CompressionTag) String() string {
	switch tag {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompressionTag parses "none", "lz4" or "zstd". Empty means zstd.
func ParseCompressionTag(name string) (CompressionTag, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "":
		return CompressionZstd, nil
	default:
		return 0, zerr.With(domain.ErrUnknownCompression, "compression", name)
	}
}

// maxRecordSize bounds the uncompressed length accepted from a record header.
const maxRecordSize = 64 << 20

// lz4MaxRatio is the largest expansion an LZ4 block can encode.
const lz4MaxRatio = 255

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("cas: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxRecordSize))
	if err != nil {
		panic("cas: zstd decoder initialization failed: " + err.Error())
	}
}

// frame compresses data and prepends the tag and the uncompressed length.
// Data that does not shrink is stored uncompressed.
func frame(data []byte, tag CompressionTag) ([]byte, error) {
	payload, used, err := compress(data, tag)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 1, 1+binary.MaxVarintLen64)
	header[0] = byte(used)
	header = binary.AppendUvarint(header, uint64(len(data)))
	return append(header, payload...), nil
}

func compress(data []byte, tag CompressionTag) ([]byte, CompressionTag, error) {
	switch tag {
	case CompressionNone:
		return data, CompressionNone, nil
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, 0, zerr.Wrap(err, "lz4 compress failed")
		}
		if n == 0 || n >= len(data) {
			return data, CompressionNone, nil
		}
		return dst[:n], CompressionLZ4, nil
	case CompressionZstd:
		out := zstdEncoder.EncodeAll(data, nil)
		if len(out) >= len(data) {
			return data, CompressionNone, nil
		}
		return out, CompressionZstd, nil
	default:
		return nil, 0, zerr.With(domain.ErrUnknownCompression, "tag", uint8(tag))
	}
}

// unframe reverses frame.
func unframe(raw []byte) ([]byte, error) {
	if len(raw) < 2 {
		return nil, corruptRecord("short header", nil)
	}
	tag := CompressionTag(raw[0])
	size, n := binary.Uvarint(raw[1:])
	if n <= 0 {
		return nil, corruptRecord("bad length", nil)
	}
	if size > maxRecordSize {
		return nil, zerr.With(corruptRecord("size out of range", nil), "size", size)
	}
	payload := raw[1+n:]

	switch tag {
	case CompressionNone:
		if uint64(len(payload)) != size {
			return nil, corruptRecord("size mismatch", nil)
		}
		return payload, nil
	case CompressionLZ4:
		if size > uint64(len(payload))*lz4MaxRatio {
			return nil, zerr.With(corruptRecord("size out of range", nil), "size", size)
		}
		dst := make([]byte, size)
		read, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, corruptRecord("decompress failed", err)
		}
		if uint64(read) != size {
			return nil, corruptRecord("size mismatch", nil)
		}
		return dst, nil
	case CompressionZstd:
		out, err := zstdDecoder.DecodeAll(payload, make([]byte, 0, size))
		if err != nil {
			return nil, corruptRecord("decompress failed", err)
		}
		if uint64(len(out)) != size {
			return nil, corruptRecord("size mismatch", nil)
		}
		return out, nil
	default:
		return nil, zerr.With(domain.ErrUnknownCompression, "tag", uint8(tag))
	}
}

// corruptRecord returns an error that matches domain.ErrCorruptRecord.
func corruptRecord(reason string, cause error) error {
	err := zerr.Wrap(domain.ErrCorruptRecord, reason)
	if cause != nil {
		err = zerr.With(err, "cause", cause.Error())
	}
	return err
}
