package srs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blang/semver/v4"
	"github.com/consensys/compress/lzss"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/tauvslagrange/internal/utils"
)

// FormatVersion identifies the on-disk layout; readers refuse files written
// with a different major version.
const FormatVersion = "1.0.0"

const curveID = "bls12-381"

const pointSize = bls12381.SizeOfG1AffineUncompressed

var (
	// ErrInvalidEncoding is returned on a malformed or truncated SRS file.
	ErrInvalidEncoding = errors.New("srs: invalid or truncated encoding")

	// ErrUnsupportedVersion is returned when the file was written with an
	// incompatible format version.
	ErrUnsupportedVersion = errors.New("srs: unsupported format version")

	// ErrWrongCurve is returned when the file holds points of another curve.
	ErrWrongCurve = errors.New("srs: encoded for another curve")
)

// header precedes the point payload, CBOR-encoded with a fixed-width length
// prefix so the payload offset is unambiguous.
type header struct {
	Version    string `cbor:"version"`
	Curve      string `cbor:"curve"`
	Size       uint64 `cbor:"size"`
	Compressed bool   `cbor:"compressed"`
	PayloadLen uint64 `cbor:"payloadLen"`
}

// WriteTo serializes both bases to w, lzss-compressing the point payload.
// Implements io.WriterTo.
func (s *SRS) WriteTo(w io.Writer) (int64, error) {
	return s.writeTo(w, true)
}

// WriteRawTo serializes both bases to w without compressing the payload.
// Implements io.WriterTo.
func (s *SRS) WriteRawTo(w io.Writer) (int64, error) {
	return s.writeTo(w, false)
}

func (s *SRS) writeTo(w io.Writer, compressed bool) (int64, error) {
	n := len(s.Monomial)

	// the two bases are encoded concurrently into one payload buffer
	payload := make([]byte, 2*n*pointSize)
	var g errgroup.Group
	g.Go(func() error {
		encodePoints(payload[:n*pointSize], s.Monomial)
		return nil
	})
	g.Go(func() error {
		encodePoints(payload[n*pointSize:], s.Lagrange)
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if compressed {
		compressor, err := lzss.NewCompressor(nil)
		if err != nil {
			return 0, err
		}
		if payload, err = compressor.Compress(payload); err != nil {
			return 0, err
		}
	}

	h := header{
		Version:    FormatVersion,
		Curve:      curveID,
		Size:       uint64(n),
		Compressed: compressed,
		PayloadLen: uint64(len(payload)),
	}
	hBytes, err := cbor.Marshal(h)
	if err != nil {
		return 0, err
	}

	var written int64
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(hBytes)))
	for _, chunk := range [][]byte{prefix[:], hBytes, payload} {
		m, err := w.Write(chunk)
		written += int64(m)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadFrom deserializes both bases from r, validating the format version,
// the curve and every point (on curve and in the right subgroup).
// Implements io.ReaderFrom.
func (s *SRS) ReadFrom(r io.Reader) (int64, error) {
	var read int64

	var prefix [4]byte
	m, err := io.ReadFull(r, prefix[:])
	read += int64(m)
	if err != nil {
		return read, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	hBytes := make([]byte, binary.BigEndian.Uint32(prefix[:]))
	m, err = io.ReadFull(r, hBytes)
	read += int64(m)
	if err != nil {
		return read, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	var h header
	if err := cbor.Unmarshal(hBytes, &h); err != nil {
		return read, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if err := h.validate(); err != nil {
		return read, err
	}

	payload := make([]byte, h.PayloadLen)
	m, err = io.ReadFull(r, payload)
	read += int64(m)
	if err != nil {
		return read, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	if h.Compressed {
		if payload, err = lzss.Decompress(payload, nil); err != nil {
			return read, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
	}
	if uint64(len(payload)) != 2*h.Size*pointSize {
		return read, ErrInvalidEncoding
	}

	monomial := make([]bls12381.G1Affine, h.Size)
	lagrange := make([]bls12381.G1Affine, h.Size)
	half := int(h.Size) * pointSize

	var g errgroup.Group
	g.Go(func() error { return decodePoints(monomial, payload[:half]) })
	g.Go(func() error { return decodePoints(lagrange, payload[half:]) })
	if err := g.Wait(); err != nil {
		return read, err
	}

	s.Monomial = monomial
	s.Lagrange = lagrange
	return read, nil
}

func (h *header) validate() error {
	v, err := semver.Parse(h.Version)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, err)
	}
	if v.Major != semver.MustParse(FormatVersion).Major {
		return fmt.Errorf("%w: file has %s, reader has %s", ErrUnsupportedVersion, h.Version, FormatVersion)
	}
	if h.Curve != curveID {
		return fmt.Errorf("%w: file has %q", ErrWrongCurve, h.Curve)
	}
	if !utils.IsPowerOfTwo(h.Size) || utils.Log2(h.Size) > maxOrder {
		return ErrInvalidDomainSize
	}
	return nil
}

func encodePoints(buf []byte, points []bls12381.G1Affine) {
	for i := range points {
		b := points[i].RawBytes()
		copy(buf[i*pointSize:], b[:])
	}
}

func decodePoints(points []bls12381.G1Affine, buf []byte) error {
	for i := range points {
		if _, err := points[i].SetBytes(buf[i*pointSize : (i+1)*pointSize]); err != nil {
			return fmt.Errorf("%w: point %d: %v", ErrInvalidEncoding, i, err)
		}
	}
	return nil
}

// WriteFile serializes the SRS into a file, compressed.
func (s *SRS) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = s.WriteTo(f)
	return err
}

// ReadFile deserializes an SRS from a file.
func ReadFile(path string) (*SRS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s SRS
	if _, err := s.ReadFrom(f); err != nil {
		return nil, err
	}
	return &s, nil
}
