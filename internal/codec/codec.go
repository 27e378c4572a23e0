// Package codec round-trips a grid through a compact binary encoding wrapped
// in gzip. The layout is: cell count as a 64-bit integer, then one filled
// byte and a 64-bit id per cell, then width and height as 64-bit integers,
// all little-endian. There is no version header.
package codec

import (
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"dla-ca/internal/core"
)

// Suffix is appended to save files after compression.
const Suffix = ".gz"

const cellWidth = 9 // filled byte + 64-bit id

// Marshal encodes the grid into its binary form.
func Marshal(g *core.Grid) []byte {
	cells := g.Cells()
	buf := make([]byte, 0, 8+len(cells)*cellWidth+16)
	var scratch [8]byte
	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(scratch[:], v)
		buf = append(buf, scratch[:]...)
	}
	putU64(uint64(len(cells)))
	for i := range cells {
		if cells[i].Filled {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		putU64(uint64(cells[i].ID))
	}
	putU64(uint64(g.W))
	putU64(uint64(g.H))
	return buf
}

// Unmarshal decodes a grid from its binary form.
func Unmarshal(data []byte) (*core.Grid, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("truncated grid blob: %d bytes", len(data))
	}
	count := binary.LittleEndian.Uint64(data[:8])
	if count > uint64(len(data)) {
		return nil, fmt.Errorf("grid blob claims %d cells in %d bytes", count, len(data))
	}
	want := 8 + count*cellWidth + 16
	if uint64(len(data)) != want {
		return nil, fmt.Errorf("grid blob is %d bytes, want %d for %d cells", len(data), want, count)
	}
	tail := data[8+count*cellWidth:]
	w := binary.LittleEndian.Uint64(tail[:8])
	h := binary.LittleEndian.Uint64(tail[8:16])
	if w == 0 || h == 0 || w > count || h > count || w*h != count {
		return nil, fmt.Errorf("inconsistent grid header: %dx%d with %d cells", w, h, count)
	}
	g := core.NewGrid(int(w), int(h))
	cells := g.Cells()
	off := 8
	for i := range cells {
		switch data[off] {
		case 0:
		case 1:
			cells[i].Filled = true
		default:
			return nil, fmt.Errorf("cell %d has invalid filled byte %#x", i, data[off])
		}
		cells[i].ID = int(binary.LittleEndian.Uint64(data[off+1 : off+9]))
		off += cellWidth
	}
	return g, nil
}

// Save writes the grid to path, then compresses it to path plus the .gz
// suffix at the best compression level and removes the intermediate file.
// It refuses to overwrite an existing compressed file.
func Save(g *core.Grid, path string) error {
	gzPath := path + Suffix
	if _, err := os.Stat(gzPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", gzPath)
	}
	if err := os.WriteFile(path, Marshal(g), 0o644); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	if err := compress(path, gzPath); err != nil {
		return fmt.Errorf("compress grid: %w", err)
	}
	return os.Remove(path)
}

// Load reads a grid back from path. A path carrying the compression suffix
// is decompressed to its sibling name first; the intermediate file is
// removed afterwards. All failures come back as errors for the caller to
// log and absorb.
func Load(path string) (*core.Grid, error) {
	raw := path
	if strings.HasSuffix(path, Suffix) {
		raw = strings.TrimSuffix(path, Suffix)
		if err := decompress(path, raw); err != nil {
			return nil, fmt.Errorf("decompress grid: %w", err)
		}
		defer os.Remove(raw)
	}
	data, err := os.ReadFile(raw)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return Unmarshal(data)
}

func compress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	zw, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		out.Close()
		return err
	}
	if _, err := io.Copy(zw, in); err != nil {
		zw.Close()
		out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func decompress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	zr, err := gzip.NewReader(in)
	if err != nil {
		return err
	}
	defer zr.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, zr); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
