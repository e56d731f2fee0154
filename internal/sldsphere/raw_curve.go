package sldsphere

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteDat writes "q I(q)" text columns, one row per point, preceded by the
// header lines prefixed with '#'.
func WriteDat(w io.Writer, header []string, q, iq []Real) error {
	if len(q) != len(iq) {
		return fmt.Errorf("length mismatch: q=%d iq=%d", len(q), len(iq))
	}
	bw := bufio.NewWriter(w)
	for _, h := range header {
		if _, err := fmt.Fprintf(bw, "# %s\n", h); err != nil {
			return err
		}
	}
	for i := range q {
		if _, err := fmt.Fprintf(bw, "%.10e %.10e\n", q[i], iq[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveRawCurve64 writes the curve as little-endian binary: the point count as
// int32, then all q values, then all I(q) values, as float64.
func SaveRawCurve64(path string, q, iq []Real) error {
	if len(q) != len(iq) {
		return fmt.Errorf("length mismatch: q=%d iq=%d", len(q), len(iq))
	}
	if int64(len(q)) > 1<<31-1 {
		return fmt.Errorf("too many points for int32 header: %d", len(q))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(len(q))); err != nil {
		return err
	}
	if len(q) > 0 {
		if err := binary.Write(w, binary.LittleEndian, q); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, iq); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// LoadRawCurve64 reads a file written by SaveRawCurve64.
func LoadRawCurve64(path string) (q, iq []Real, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if n < 0 {
		return nil, nil, fmt.Errorf("negative point count %d", n)
	}
	q = make([]Real, n)
	iq = make([]Real, n)
	if err := binary.Read(r, binary.LittleEndian, q); err != nil {
		return nil, nil, fmt.Errorf("read q: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, iq); err != nil {
		return nil, nil, fmt.Errorf("read iq: %w", err)
	}
	return q, iq, nil
}
