package patch

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

type modelEncoding struct {
	name string
	old  []byte
	new  []byte
}

/* modelEncodings builds the byte patterns scanned during a model
   replacement. Firmware stores the model redundantly: plain ASCII, UTF-8,
   UTF-16LE, and with NUL terminators baked into string tables. All copies
   have to stay consistent or the device reads a mismatch. */
func modelEncodings(oldModel, newModel string) []modelEncoding {
	oldASCII := asciiBytes(oldModel)
	newASCII := asciiBytes(newModel)

	return []modelEncoding{
		{"ASCII", oldASCII, newASCII},
		{"UTF-8", []byte(oldModel), []byte(newModel)},
		{"UTF-16LE", utf16Bytes(oldModel), utf16Bytes(newModel)},
		{"ASCII+NUL", withNUL(oldASCII), withNUL(newASCII)},
		{"UTF-8+NUL", withNUL([]byte(oldModel)), withNUL([]byte(newModel))},
	}
}

/* asciiBytes returns nil when the token has characters outside ASCII, the
   caller then skips that encoding. */
func asciiBytes(s string) []byte {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return nil
		}
	}
	return []byte(s)
}

func utf16Bytes(s string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return b
}

func withNUL(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(append([]byte{}, b...), 0)
}

/* replaceAll runs the encoding passes in a fixed order over buf, in
   place. A pass only runs when the encoded old and new token have the
   same byte length, the image size never changes. Every pass scans the
   buffer as left behind by the passes before it. */
func replaceAll(buf []byte, oldModel, newModel string, logf LogFunc) int {
	total := 0
	for _, enc := range modelEncodings(oldModel, newModel) {
		if len(enc.old) == 0 || len(enc.new) == 0 {
			continue
		}
		if len(enc.old) != len(enc.new) {
			if logf != nil {
				logf(1, "Skipping %s pass: %d vs %d bytes", enc.name, len(enc.old), len(enc.new))
			}
			continue
		}

		if n := replaceBytes(buf, enc.old, enc.new); n > 0 {
			total += n
			if logf != nil {
				logf(0, "Replaced %d occurrence(s) in %s encoding (%d bytes)", n, enc.name, len(enc.old))
			}
		}
	}
	return total
}

/* replaceBytes overwrites non overlapping matches left to right. The scan
   resumes after the end of each replacement, so a match inside freshly
   written bytes is not replaced again. */
func replaceBytes(buf, old, new []byte) int {
	count := 0
	start := 0
	for {
		i := bytes.Index(buf[start:], old)
		if i < 0 {
			break
		}
		pos := start + i
		copy(buf[pos:], new)
		count++
		start = pos + len(new)
	}
	return count
}

/* ReplaceAll substitutes every encoded occurrence of a device model and
   returns the rewritten image together with the total match count across
   all encodings. Empty or identical tokens are a deliberate no-op, not an
   error. */
func ReplaceAll(image []byte, oldModel, newModel string) ([]byte, int) {
	out := make([]byte, len(image))
	copy(out, image)

	if oldModel == "" || newModel == "" || oldModel == newModel {
		return out, 0
	}

	return out, replaceAll(out, oldModel, newModel, nil)
}
