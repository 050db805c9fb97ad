// Package trace loads persisted golden traces and their companion summary
// tables. It is the single boundary around the external tracer's file
// formats: schema validation happens here, before any statistical check.
package trace

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cyberphone "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/klauspost/compress/zstd"
	"github.com/puzpuzpuz/xsync/v3"
)

// Schema constants the loader requires of every golden trace. A baseline
// produced by a different tracer version is rejected, never coerced.
const (
	ExpectedVersion = "0.6.2"
	ExpectedFormat  = "renacer-json-v1"
)

// SyscallEvent is one recorded syscall: its name and the tracer's
// representation of its arguments.
type SyscallEvent struct {
	Name string            `json:"name"`
	Args []json.RawMessage `json:"args"`
}

// GoldenTrace is a persisted, versioned record of the syscalls an execution
// performed. Fingerprint is computed over the canonical form of the raw JSON
// (RFC 8785) so reports can prove which baseline was checked; it is not part
// of the persisted document.
type GoldenTrace struct {
	Version  string         `json:"version"`
	Format   string         `json:"format"`
	Syscalls []SyscallEvent `json:"syscalls"`

	Fingerprint string `json:"-"`
}

// UnavailableError means the baseline file itself is missing.
type UnavailableError struct {
	Path string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("golden trace %s is missing; regenerate it with scripts/capture_golden_traces.sh", e.Path)
}

// SchemaError means the baseline was parsed but carries an unexpected version
// or format tag.
type SchemaError struct {
	Field string
	Want  string
	Got   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("golden trace has incompatible %s: want %q, got %q", e.Field, e.Want, e.Got)
}

// Store loads golden traces from disk. Loaded baselines are cached: they are
// read-only shared fixtures, so any number of scenarios may read the same one
// concurrently.
type Store struct {
	cache *xsync.MapOf[string, *GoldenTrace]
}

func NewStore() *Store {
	return &Store{cache: xsync.NewMapOf[string, *GoldenTrace]()}
}

// Load reads, decodes and schema-validates the golden trace at path. Files
// with a .zst extension are zstd-decoded first. The three failure modes are
// distinct: *UnavailableError for a missing file, a wrapped decode error for
// unreadable or structurally invalid content, and *SchemaError for a
// version/format mismatch.
func (s *Store) Load(path string) (*GoldenTrace, error) {
	if cached, ok := s.cache.Load(path); ok {
		return cached, nil
	}

	raw, err := readMaybeCompressed(path)
	if err != nil {
		return nil, err
	}

	t, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	s.cache.Store(path, t)
	return t, nil
}

// Parse decodes and schema-validates a raw golden trace document.
func Parse(raw []byte) (*GoldenTrace, error) {
	var t GoldenTrace
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to parse golden trace: %w", err)
	}

	if t.Version != ExpectedVersion {
		return nil, &SchemaError{Field: "version", Want: ExpectedVersion, Got: t.Version}
	}
	if t.Format != ExpectedFormat {
		return nil, &SchemaError{Field: "format", Want: ExpectedFormat, Got: t.Format}
	}

	fp, err := Fingerprint(raw)
	if err != nil {
		return nil, err
	}
	t.Fingerprint = fp

	return &t, nil
}

// Fingerprint returns the hex SHA-256 of the RFC 8785 canonical form of a raw
// trace document. Two serializations of the same baseline fingerprint
// identically regardless of whitespace or key order.
func Fingerprint(raw []byte) (string, error) {
	canon, err := cyberphone.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize golden trace: %w", err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(canon)), nil
}

func readMaybeCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &UnavailableError{Path: path}
		}
		return nil, fmt.Errorf("failed to open golden trace %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".zst" {
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader for %s: %w", path, err)
		}
		defer d.Close()
		r = d
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden trace %s: %w", path, err)
	}
	return raw, nil
}
