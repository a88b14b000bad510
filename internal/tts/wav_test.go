package tts

import (
	"bytes"
	"testing"
)

var monoFormat = wavFormat{channels: 1, bitsPerSample: 16, sampleRate: 22050}

func wavFixture(f wavFormat, samples []byte) []byte {
	return writeWAV(f, samples)
}

func TestParseWAVRoundTrip(t *testing.T) {
	samples := []byte{1, 2, 3, 4, 5, 6}
	b := wavFixture(monoFormat, samples)

	f, data, err := parseWAV(b)
	if err != nil {
		t.Fatalf("parseWAV() error = %v", err)
	}
	if f != monoFormat {
		t.Errorf("format = %+v, want %+v", f, monoFormat)
	}
	if !bytes.Equal(data, samples) {
		t.Errorf("data = %v, want %v", data, samples)
	}
}

func TestParseWAVRejectsGarbage(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("RIFF"), []byte("this is not audio at all")} {
		if _, _, err := parseWAV(in); err == nil {
			t.Errorf("parseWAV(%q) should fail", in)
		}
	}
}

func TestCombineWAVEmpty(t *testing.T) {
	if got := CombineWAV(nil); got != nil {
		t.Errorf("CombineWAV(nil) = %v, want nil", got)
	}
}

func TestCombineWAVSingle(t *testing.T) {
	chunk := wavFixture(monoFormat, []byte{9, 9})
	got := CombineWAV([][]byte{chunk})
	if !bytes.Equal(got, chunk) {
		t.Error("single chunk should be returned verbatim")
	}
}

func TestCombineWAV(t *testing.T) {
	a := []byte{1, 1, 2, 2}
	b := []byte{3, 3, 4, 4}
	c := []byte{5, 5}

	got := CombineWAV([][]byte{
		wavFixture(monoFormat, a),
		wavFixture(monoFormat, b),
		wavFixture(monoFormat, c),
	})

	f, data, err := parseWAV(got)
	if err != nil {
		t.Fatalf("combined output does not parse: %v", err)
	}
	if f != monoFormat {
		t.Errorf("format = %+v, want %+v", f, monoFormat)
	}

	want := append(append(append([]byte{}, a...), b...), c...)
	if !bytes.Equal(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
}

func TestCombineWAVDropsMismatchedChunk(t *testing.T) {
	stereo := wavFormat{channels: 2, bitsPerSample: 16, sampleRate: 44100}

	got := CombineWAV([][]byte{
		wavFixture(monoFormat, []byte{1, 1}),
		wavFixture(stereo, []byte{9, 9, 9, 9}),
		wavFixture(monoFormat, []byte{2, 2}),
	})

	_, data, err := parseWAV(got)
	if err != nil {
		t.Fatalf("combined output does not parse: %v", err)
	}
	if !bytes.Equal(data, []byte{1, 1, 2, 2}) {
		t.Errorf("data = %v, want the mismatched chunk dropped", data)
	}
}

func TestCombineWAVDropsCorruptChunk(t *testing.T) {
	got := CombineWAV([][]byte{
		wavFixture(monoFormat, []byte{1, 1}),
		[]byte("corrupt"),
		wavFixture(monoFormat, []byte{2, 2}),
	})

	_, data, err := parseWAV(got)
	if err != nil {
		t.Fatalf("combined output does not parse: %v", err)
	}
	if !bytes.Equal(data, []byte{1, 1, 2, 2}) {
		t.Errorf("data = %v, want the corrupt chunk dropped", data)
	}
}

func TestCombineWAVUnparseableFirstChunk(t *testing.T) {
	first := []byte("mystery payload")
	got := CombineWAV([][]byte{first, wavFixture(monoFormat, []byte{1})})
	if !bytes.Equal(got, first) {
		t.Error("unparseable first chunk should be returned as-is")
	}
}
