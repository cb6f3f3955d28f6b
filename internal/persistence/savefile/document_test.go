package savefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleJSON = `{"Player":{"credits":"5000000","currentPointOfInterest":"","currentSpaceShip":"","spaceShips":[],"globalInventory":[],"factionData":[],"map":{"sectors":[]}},"version":17,"ratio":1.50}`

func TestDecodeEncode_RoundTripIsByteStable(t *testing.T) {
	doc, err := New([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	enc, err := doc.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Decode(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(back.JSON(), []byte(sampleJSON)) {
		t.Fatalf("round trip changed bytes:\n got %s\nwant %s", back.JSON(), sampleJSON)
	}

	// Same document must always encode to the same bytes.
	enc2, err := back.Encode()
	if err != nil {
		t.Fatalf("encode again: %v", err)
	}
	if !bytes.Equal(enc, enc2) {
		t.Fatalf("encode is not deterministic")
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not gzip at all")); err == nil {
		t.Fatalf("expected error for non-gzip input")
	} else if _, ok := err.(*FormatError); !ok {
		t.Fatalf("expected FormatError, got %T: %v", err, err)
	}
}

func TestDecode_RejectsNonJSONPayload(t *testing.T) {
	doc := &Document{raw: []byte("hello")}
	enc, err := doc.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := Decode(enc); err == nil {
		t.Fatalf("expected error for non-JSON payload")
	} else if _, ok := err.(*FormatError); !ok {
		t.Fatalf("expected FormatError, got %T: %v", err, err)
	}
}

func TestNew_RejectsMissingPlayer(t *testing.T) {
	cases := []string{`[]`, `{"foo":1}`, `{"Player":"nope"}`}
	for _, raw := range cases {
		if _, err := New([]byte(raw)); err == nil {
			t.Fatalf("expected FormatError for %s", raw)
		}
	}
}

func TestSet_LeavesUntouchedFieldsAlone(t *testing.T) {
	doc, err := New([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := doc.Set("version", 18); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw := string(doc.JSON())
	// Numeric spelling and string encoding of untouched fields survive.
	if !strings.Contains(raw, `"ratio":1.50`) {
		t.Fatalf("untouched float respelled: %s", raw)
	}
	if !strings.Contains(raw, `"credits":"5000000"`) {
		t.Fatalf("untouched credits changed: %s", raw)
	}
	if doc.Get("version").Int() != 18 {
		t.Fatalf("version not updated")
	}
}

func TestOpenSave_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc, err := New([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	path := filepath.Join(dir, "out.save")
	if err := doc.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(back.JSON(), []byte(sampleJSON)) {
		t.Fatalf("file round trip changed bytes")
	}
}

func TestListDir_NewestFirstSaveFilesOnly(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, age time.Duration) {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		mt := time.Now().Add(-age)
		if err := os.Chtimes(p, mt, mt); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
	}
	write("old.save", 2*time.Hour)
	write("new.save", time.Minute)
	write("notes.txt", 0)

	got, err := ListDir(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d want 2", len(got))
	}
	if got[0].Name != "new.save" || got[1].Name != "old.save" {
		t.Fatalf("order: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestEscapePath(t *testing.T) {
	doc, err := New([]byte(`{"Player":{},"weird.key":{"inner":5}}`))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := doc.Get(EscapePath("weird.key") + ".inner").Int(); got != 5 {
		t.Fatalf("escaped lookup got %d", got)
	}
}
