package savefile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FormatError reports a save that could not be decompressed or whose
// decompressed content is not a usable document.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return fmt.Sprintf("save format: %v", e.Err) }

func (e *FormatError) Unwrap() error { return e.Err }

// Document is the decoded save: the raw decompressed JSON bytes plus a
// path-addressed get/set surface over them. Keeping the raw bytes (instead of
// an unmarshalled tree) preserves key order and numeric spelling exactly, so
// an untouched document re-encodes byte-for-byte at the JSON layer. Entity
// views elsewhere hold gjson paths into this buffer; a Set through any path is
// visible to every holder on the next Get and to Encode.
type Document struct {
	raw []byte
}

// New wraps already-decompressed JSON. The only shape requirement is a map
// root with a Player entry; everything else is probed lazily by callers.
func New(raw []byte) (*Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &FormatError{Err: fmt.Errorf("not valid JSON")}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, &FormatError{Err: fmt.Errorf("root is not an object")}
	}
	if !root.Get("Player").IsObject() {
		return nil, &FormatError{Err: fmt.Errorf("missing Player section")}
	}
	return &Document{raw: raw}, nil
}

// Decode decompresses and wraps a gzip save. No partial document is returned
// on failure.
func Decode(b []byte) (*Document, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, &FormatError{Err: fmt.Errorf("gzip: %w", err)}
	}
	raw, err := io.ReadAll(zr)
	if cerr := zr.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, &FormatError{Err: fmt.Errorf("gzip: %w", err)}
	}
	return New(raw)
}

// Encode re-wraps the document as a gzip stream. The gzip header stays at its
// zero value so the same document always encodes to the same bytes.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(d.raw); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON returns the current decompressed bytes.
func (d *Document) JSON() []byte { return d.raw }

// Get resolves a gjson path against the current document.
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

// Set writes a Go value at path, creating intermediate containers as needed.
func (d *Document) Set(path string, value any) error {
	out, err := sjson.SetBytes(d.raw, path, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	d.raw = out
	return nil
}

// SetRaw writes pre-encoded JSON at path. Used where the encoded form matters
// (numbers kept as numbers, appended slot records).
func (d *Document) SetRaw(path, raw string) error {
	out, err := sjson.SetRawBytes(d.raw, path, []byte(raw))
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	d.raw = out
	return nil
}

// EscapePath escapes a map key for use as a single gjson path component.
func EscapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Open reads and decodes a save file.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// Save encodes the document and writes it to path. The in-memory document
// stays valid if the write fails.
func (d *Document) Save(path string) error {
	b, err := d.Encode()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
