package huffpack

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestUnpack_Frames(t *testing.T) {
	type testRow struct {
		name   string
		frame  []byte
		expect string
	}
	testData := [...]testRow{
		{
			name: "two symbols",
			frame: []byte{
				0x03,
				0x00, 0x02,
				0x42, 0x01, 0x00, 0x01,
				0x41, 0x01, 0x00, 0x00,
				0x08,
			},
			expect: "AAAAB",
		},
		{
			name: "single symbol",
			frame: []byte{
				0x03,
				0x00, 0x01,
				0x61, 0x01, 0x00, 0x01,
				0xf8,
			},
			expect: "aaaaa",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := Unpack(row.frame)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if row.expect != string(actual) {
				t.Errorf("wrong text:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestUnpack_RoundTrip(t *testing.T) {
	texts := [...]string{
		"AAAAB",
		"aaaaa",
		"aabc",
		"It was the best of times, it was the worst of times.",
		strings.Repeat("to be or not to be ", 64),
	}
	for _, text := range texts {
		frame, err := Pack([]byte(text))
		if err != nil {
			t.Fatalf("Pack of %d bytes failed: %v", len(text), err)
		}
		back, err := Unpack(frame)
		if err != nil {
			t.Fatalf("Unpack of %d bytes failed: %v", len(frame), err)
		}
		if !bytes.Equal([]byte(text), back) {
			t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", text, back)
		}
	}
}

func TestUnpack_AllByteValues(t *testing.T) {
	text := make([]byte, 0, 3*NumSymbols)
	for i := 0; i < NumSymbols; i++ {
		sym := Symbol(i)
		text = append(text, sym, sym, sym)
	}

	frame, err := Pack(text)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	back, err := Unpack(frame)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !bytes.Equal(text, back) {
		t.Errorf("round trip mismatch over the full alphabet")
	}
}

func TestUnpack_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		text := make([]byte, 1+rng.Intn(4096))
		for i := range text {
			// A narrow alphabet with occasional arbitrary bytes.
			if rng.Intn(4) == 0 {
				text[i] = byte(rng.Intn(NumSymbols))
			} else {
				text[i] = byte('a' + rng.Intn(8))
			}
		}

		frame, err := Pack(text)
		if err != nil {
			t.Fatalf("trial %d: Pack failed: %v", trial, err)
		}
		back, err := Unpack(frame)
		if err != nil {
			t.Fatalf("trial %d: Unpack failed: %v", trial, err)
		}
		if !bytes.Equal(text, back) {
			t.Errorf("trial %d: round trip mismatch", trial)
		}
	}
}

func TestUnpack_SkewedInputCompresses(t *testing.T) {
	text := []byte(strings.Repeat("a", 4096) + "b")

	frame, err := Pack(text)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(frame) >= len(text) {
		t.Errorf("expected the frame to be smaller than %d bytes, got %d", len(text), len(frame))
	}

	back, err := Unpack(frame)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !bytes.Equal(text, back) {
		t.Errorf("round trip mismatch")
	}
}

func TestUnpack_Truncated(t *testing.T) {
	// "aabc" packs into six data bits.  Raising the stored padding count
	// to five shrinks the bit budget so it now ends inside a codeword.
	frame, err := Pack([]byte("aabc"))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	frame[0] = 0x05

	_, err = Unpack(frame)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestUnpack_DeadEnd(t *testing.T) {
	// A one-symbol tree has no right branches, so a zero bit leads nowhere.
	frame := []byte{
		0x03,
		0x00, 0x01,
		0x61, 0x01, 0x00, 0x01,
		0x00,
	}
	_, err := Unpack(frame)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestUnpack_CorruptFrame(t *testing.T) {
	type testRow struct {
		name  string
		frame []byte
	}
	testData := [...]testRow{
		{"empty", nil},
		{"too short", []byte{0x00, 0x00}},
		{"zero records", []byte{0x00, 0x00, 0x00}},
		{"padding count too large", []byte{0x08, 0x00, 0x01, 0x61, 0x01, 0x00, 0x01, 0xf8}},
		{"padding without data", []byte{0x03, 0x00, 0x01, 0x61, 0x01, 0x00, 0x01}},
		{"header cut off", []byte{0x00, 0x00, 0x02, 0x61, 0x01, 0x00, 0x01}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Unpack(row.frame)
			if !errors.Is(err, ErrCorruptHeader) {
				t.Errorf("expected ErrCorruptHeader, got %v", err)
			}
		})
	}
}
