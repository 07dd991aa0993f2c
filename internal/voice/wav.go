package voice

import (
	"bytes"
	"encoding/binary"
)

const (
	pcmSampleRate = 16000
	pcmBitDepth   = 16
	pcmChannels   = 1
)

// looksLikeWAV reports whether b begins with the "RIFF" tag; the rest of
// the header is not inspected.
func looksLikeWAV(b []byte) bool {
	return len(b) >= 4 && string(b[:4]) == "RIFF"
}

// encodeWAV wraps raw 16-bit little-endian PCM samples at 16 kHz mono in
// a minimal canonical WAV container. No WAV library appears anywhere in
// the example corpus, so this is a deliberately small stdlib encoder
// rather than an imported dependency (see DESIGN.md).
func encodeWAV(pcm []byte) []byte {
	var buf bytes.Buffer

	byteRate := pcmSampleRate * pcmChannels * (pcmBitDepth / 8)
	blockAlign := pcmChannels * (pcmBitDepth / 8)
	dataSize := uint32(len(pcm))
	riffSize := 36 + dataSize

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // PCM fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM format tag
	binary.Write(&buf, binary.LittleEndian, uint16(pcmChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(pcmSampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(pcmBitDepth))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(pcm)

	return buf.Bytes()
}

// ensureWAV returns b unchanged if it already carries a RIFF header,
// otherwise treats it as raw PCM and wraps it, per spec.md §4.6.
func ensureWAV(b []byte) []byte {
	if looksLikeWAV(b) {
		return b
	}
	return encodeWAV(b)
}
