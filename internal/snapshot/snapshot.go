// Package snapshot stores a voxel volume in a compact .vxs file:
//
//	"VXS1" | ver u8 | size 3xi16 | center 3xf32 | color u8 | plen u32 | zstd(bitmap) | xxhash64(bitmap)
//
// All integers are little-endian.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"voxcast/internal/color"
	"voxcast/internal/mathutil"
	"voxcast/internal/voxel"
)

const (
	magic   = "VXS1"
	version = 1
)

// MaxCells bounds the grid a snapshot may declare (a 32 MiB bitmap).
const MaxCells = 1 << 28

var (
	// ErrBadMagic is returned when the file does not start with "VXS1".
	ErrBadMagic = errors.New("snapshot: not a VXS file")
	// ErrVersion is returned for a format version this package cannot read.
	ErrVersion = errors.New("snapshot: unsupported version")
	// ErrChecksum is returned when the decompressed bitmap does not match its hash.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
	// ErrTooLarge is returned when the header declares more than MaxCells cells.
	ErrTooLarge = errors.New("snapshot: grid too large")
	// ErrTruncated is returned when the file ends before the payload and checksum.
	ErrTruncated = errors.New("snapshot: truncated file")
)

type header struct {
	Ver    uint8
	Size   [3]int16
	Center [3]float32
	Color  uint8
	PLen   uint32
}

// Write encodes v to w.
func Write(w io.Writer, v *voxel.Volume) error {
	raw := v.Bitmap()

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	payload := enc.EncodeAll(raw, nil)
	enc.Close()

	size := v.Size()
	hdr := header{
		Ver:    version,
		Size:   [3]int16{int16(size[0]), int16(size[1]), int16(size[2])},
		Center: v.Center(),
		Color:  uint8(v.Color()),
		PLen:   uint32(len(payload)),
	}

	var buf bytes.Buffer
	buf.WriteString(magic)
	_ = binary.Write(&buf, binary.LittleEndian, hdr)
	buf.Write(payload)
	_ = binary.Write(&buf, binary.LittleEndian, xxhash.Sum64(raw))

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("snapshot: write: %w", err)
	}
	return nil
}

// Read decodes a volume written by Write.
func Read(r io.Reader) (*voxel.Volume, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read magic: %w", err)
	}
	if string(m[:]) != magic {
		return nil, ErrBadMagic
	}

	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if hdr.Ver != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, hdr.Ver)
	}

	n := int64(hdr.Size[0]) * int64(hdr.Size[1]) * int64(hdr.Size[2])
	if hdr.Size[0] > 0 && hdr.Size[1] > 0 && hdr.Size[2] > 0 && n > MaxCells {
		return nil, fmt.Errorf("%w: %v", ErrTooLarge, hdr.Size)
	}
	v, err := voxel.New(mathutil.Vec3(hdr.Center), hdr.Size, color.Color(hdr.Color))
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	// Buffers grow with the bytes actually present, not with PLen.
	want := int64(hdr.PLen) + 8
	rest, err := io.ReadAll(io.LimitReader(r, want))
	if err != nil {
		return nil, fmt.Errorf("snapshot: read payload: %w", err)
	}
	if int64(len(rest)) != want {
		return nil, fmt.Errorf("%w: payload %d bytes, have %d", ErrTruncated, hdr.PLen, len(rest))
	}
	payload := rest[:hdr.PLen]
	sum := binary.LittleEndian.Uint64(rest[hdr.PLen:])

	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64((n+7)/8)))
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}
	if xxhash.Sum64(raw) != sum {
		return nil, ErrChecksum
	}
	if err := v.SetBitmap(raw); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return v, nil
}

// Save writes v to path.
func Save(path string, v *voxel.Volume) error {
	var buf bytes.Buffer
	if err := Write(&buf, v); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Load reads a volume from path.
func Load(path string) (*voxel.Volume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	v, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
