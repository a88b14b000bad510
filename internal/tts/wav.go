package tts

import (
	"encoding/binary"
	"errors"
)

// wavFormat holds the acoustic parameters that must match for two WAV
// payloads to be concatenated.
type wavFormat struct {
	channels      uint16
	bitsPerSample uint16
	sampleRate    uint32
}

var errNotWAV = errors.New("not a RIFF/WAVE payload")

// parseWAV walks the RIFF chunks of b and returns the format and the raw
// sample data.
func parseWAV(b []byte) (wavFormat, []byte, error) {
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return wavFormat{}, nil, errNotWAV
	}

	var f wavFormat
	var data []byte
	haveFmt := false

	pos := 12
	for pos+8 <= len(b) {
		id := string(b[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(b[pos+4 : pos+8]))
		body := pos + 8
		if body+size > len(b) {
			return wavFormat{}, nil, errNotWAV
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return wavFormat{}, nil, errNotWAV
			}
			f.channels = binary.LittleEndian.Uint16(b[body+2 : body+4])
			f.sampleRate = binary.LittleEndian.Uint32(b[body+4 : body+8])
			f.bitsPerSample = binary.LittleEndian.Uint16(b[body+14 : body+16])
			haveFmt = true
		case "data":
			data = b[body : body+size]
		}

		// Chunk bodies are padded to an even length.
		pos = body + size
		if size%2 == 1 {
			pos++
		}
	}

	if !haveFmt || data == nil {
		return wavFormat{}, nil, errNotWAV
	}
	return f, data, nil
}

// writeWAV builds a PCM WAV container around the given sample data.
func writeWAV(f wavFormat, data []byte) []byte {
	blockAlign := f.channels * f.bitsPerSample / 8
	byteRate := f.sampleRate * uint32(blockAlign)

	out := make([]byte, 0, 44+len(data))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(36+len(data)))
	out = append(out, "WAVE"...)
	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, 16)
	out = binary.LittleEndian.AppendUint16(out, 1) // PCM
	out = binary.LittleEndian.AppendUint16(out, f.channels)
	out = binary.LittleEndian.AppendUint32(out, f.sampleRate)
	out = binary.LittleEndian.AppendUint32(out, byteRate)
	out = binary.LittleEndian.AppendUint16(out, blockAlign)
	out = binary.LittleEndian.AppendUint16(out, f.bitsPerSample)
	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	out = append(out, data...)
	return out
}

// CombineWAV stitches per-chunk WAV payloads into one container. The first
// chunk sets the acoustic parameters; a chunk that fails to parse or whose
// parameters mismatch is dropped rather than aborting the whole synthesis.
// Returns nil for an empty input and the sole chunk verbatim for a
// single-element input. If the first chunk cannot be parsed it is returned
// as-is, matching the best-effort contract of the synthesis path.
func CombineWAV(chunks [][]byte) []byte {
	if len(chunks) == 0 {
		return nil
	}
	if len(chunks) == 1 {
		return chunks[0]
	}

	format, data, err := parseWAV(chunks[0])
	if err != nil {
		return chunks[0]
	}

	combined := make([]byte, 0, len(data)*len(chunks))
	combined = append(combined, data...)

	for _, c := range chunks[1:] {
		f, d, err := parseWAV(c)
		if err != nil || f != format {
			continue
		}
		combined = append(combined, d...)
	}

	return writeWAV(format, combined)
}
