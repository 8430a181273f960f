// Package chunkfile stores padded voxel volumes on disk.
//
// A file is a six byte header followed by a zstd stream:
//
//	"VXCK" | version (1) | padded size (64) | zstd(uint16 LE material IDs in volume order)
//
// The halo is stored with the interior so a fixture meshes the same way after
// a round trip.
package chunkfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// Version is the current file format version.
const Version = 1

// Ext is the conventional file extension.
const Ext = ".vxc"

var magic = [4]byte{'V', 'X', 'C', 'K'}

const headerLen = len(magic) + 2

// Chunk file errors.
var (
	ErrInvalidChunkFile   = errors.New("chunkfile: not a chunk file")
	ErrUnsupportedVersion = errors.New("chunkfile: unsupported version")
	ErrSizeMismatch       = errors.New("chunkfile: volume size mismatch")
)

// Write encodes vol to w.
func Write(w io.Writer, vol *voxel.Volume) error {
	var header [headerLen]byte
	copy(header[:], magic[:])
	header[4] = Version
	header[5] = voxel.PaddedSize
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	if err := binary.Write(bw, binary.LittleEndian, vol.Raw()); err != nil {
		enc.Close()
		return fmt.Errorf("encoding voxels: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read decodes a volume from r.
func Read(r io.Reader) (*voxel.Volume, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrInvalidChunkFile
		}
		return nil, err
	}
	if [4]byte(header[:4]) != magic {
		return nil, ErrInvalidChunkFile
	}
	if header[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[4])
	}
	if header[5] != voxel.PaddedSize {
		return nil, fmt.Errorf("%w: file has %d, want %d", ErrSizeMismatch, header[5], voxel.PaddedSize)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	vol := voxel.NewVolume()
	if err := binary.Read(bufio.NewReaderSize(dec, 64*1024), binary.LittleEndian, vol.Raw()); err != nil {
		return nil, fmt.Errorf("decoding voxels: %w", err)
	}
	return vol, nil
}

// WriteFile writes vol to path, creating parent directories.
func WriteFile(path string, vol *voxel.Volume) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, vol); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile reads a volume from path.
func ReadFile(path string) (*voxel.Volume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vol, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vol, nil
}
