// Package lzstring implements the LZ-string compression scheme with the
// URI-safe output alphabet ("compressToEncodedURIComponent"). Output is
// byte-for-byte compatible with the JavaScript lz-string library: input is
// processed as UTF-16 code units and every output character carries 6 bits.
package lzstring

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// uriSafeAlphabet needs no percent-encoding in a query string.
const uriSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"

const (
	bitsPerChar = 6
	resetValue  = 1 << (bitsPerChar - 1)
)

// MaxOutput bounds the length of a decompressed string in UTF-16 code units.
// Each back reference can emit a phrase one unit longer than the last, so
// output can grow quadratically with input.
const MaxOutput = 1 << 20

// Stream control codes.
const (
	codeChar8  = 0
	codeChar16 = 1
	codeEnd    = 2
)

var (
	// ErrEmpty is returned when decompressing the empty string.
	ErrEmpty = errors.New("lzstring: empty input")
	// ErrCorrupt is returned for input that is not a well-formed stream:
	// unknown characters, truncation, invalid back references, data
	// trailing the end-of-stream marker, or output longer than MaxOutput.
	ErrCorrupt = errors.New("lzstring: corrupt input")
)

// CompressToEncodedURIComponent compresses s into the URI-safe alphabet.
// The result is deterministic for a given input.
func CompressToEncodedURIComponent(s string) string {
	c := compressor{
		dictionary: make(map[string]int),
		pending:    make(map[string]bool),
		enlargeIn:  2,
		dictSize:   3,
		numBits:    2,
	}

	w := ""
	for _, u := range utf16.Encode([]rune(s)) {
		ch := unitKey(u)
		if _, ok := c.dictionary[ch]; !ok {
			c.dictionary[ch] = c.dictSize
			c.dictSize++
			c.pending[ch] = true
		}

		wc := w + ch
		if _, ok := c.dictionary[wc]; ok {
			w = wc
			continue
		}
		c.emit(w)
		c.dictionary[wc] = c.dictSize
		c.dictSize++
		w = ch
	}
	if w != "" {
		c.emit(w)
	}

	c.out.write(codeEnd, c.numBits)
	return c.out.flush()
}

// DecompressFromEncodedURIComponent reverses CompressToEncodedURIComponent.
// Spaces are read as '+', since form decoding turns '+' into ' '.
// Streams that would expand past MaxOutput units fail with ErrCorrupt.
func DecompressFromEncodedURIComponent(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	s = strings.ReplaceAll(s, " ", "+")

	r := &bitReader{input: s, position: resetValue, index: 1}
	first, err := r.charValue(0)
	if err != nil {
		return "", err
	}
	r.val = first

	code, err := r.read(2)
	if err != nil {
		return "", err
	}
	var c []uint16
	switch code {
	case codeChar8, codeChar16:
		u, err := r.read(literalWidth(code))
		if err != nil {
			return "", err
		}
		c = []uint16{uint16(u)}
	case codeEnd:
		if r.index != len(s) {
			return "", fmt.Errorf("%w: trailing data after end of stream", ErrCorrupt)
		}
		return "", nil
	default:
		return "", fmt.Errorf("%w: unexpected leading code %d", ErrCorrupt, code)
	}

	// Indexes 0..2 are reserved for the control codes.
	dictionary := make([][]uint16, 3, 256)
	dictionary = append(dictionary, c)
	enlargeIn, numBits := 4, 3

	w := c
	result := append([]uint16(nil), c...)
	for {
		if r.index > len(s) {
			return "", fmt.Errorf("%w: truncated stream", ErrCorrupt)
		}

		code, err := r.read(numBits)
		if err != nil {
			return "", err
		}
		switch code {
		case codeChar8, codeChar16:
			u, err := r.read(literalWidth(code))
			if err != nil {
				return "", err
			}
			dictionary = append(dictionary, []uint16{uint16(u)})
			code = len(dictionary) - 1
			enlargeIn--
		case codeEnd:
			// The compressor pads only up to the end of the character holding
			// the marker, so anything after that character is foreign data.
			if r.index != len(s) {
				return "", fmt.Errorf("%w: trailing data after end of stream", ErrCorrupt)
			}
			return string(utf16.Decode(result)), nil
		}

		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}

		var entry []uint16
		switch {
		case code < len(dictionary):
			entry = dictionary[code]
		case code == len(dictionary):
			entry = appendUnit(w, w[0])
		default:
			return "", fmt.Errorf("%w: reference %d beyond dictionary", ErrCorrupt, code)
		}
		if len(result)+len(entry) > MaxOutput {
			return "", fmt.Errorf("%w: output exceeds %d units", ErrCorrupt, MaxOutput)
		}
		result = append(result, entry...)

		dictionary = append(dictionary, appendUnit(w, entry[0]))
		enlargeIn--
		w = entry

		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}
}

type compressor struct {
	dictionary map[string]int
	// pending holds single characters that entered the dictionary but have
	// not been written to the stream as literals yet.
	pending   map[string]bool
	enlargeIn int
	dictSize  int
	numBits   int
	out       bitWriter
}

// emit writes the phrase w, as a literal the first time a character is seen
// and as a dictionary reference otherwise.
func (c *compressor) emit(w string) {
	if c.pending[w] {
		u := int(w[0])<<8 | int(w[1])
		if u < 256 {
			c.out.write(codeChar8, c.numBits)
			c.out.write(u, 8)
		} else {
			c.out.write(codeChar16, c.numBits)
			c.out.write(u, 16)
		}
		c.grow()
		delete(c.pending, w)
	} else {
		c.out.write(c.dictionary[w], c.numBits)
	}
	c.grow()
}

func (c *compressor) grow() {
	c.enlargeIn--
	if c.enlargeIn == 0 {
		c.enlargeIn = 1 << c.numBits
		c.numBits++
	}
}

type bitWriter struct {
	out      strings.Builder
	val      int
	position int
}

// write appends the n low bits of value, least significant bit first.
func (b *bitWriter) write(value, n int) {
	for range n {
		b.val = b.val<<1 | value&1
		if b.position == bitsPerChar-1 {
			b.position = 0
			b.out.WriteByte(uriSafeAlphabet[b.val])
			b.val = 0
		} else {
			b.position++
		}
		value >>= 1
	}
}

// flush pads the current character with zero bits and returns the output.
func (b *bitWriter) flush() string {
	for {
		b.val <<= 1
		if b.position == bitsPerChar-1 {
			b.out.WriteByte(uriSafeAlphabet[b.val])
			break
		}
		b.position++
	}
	return b.out.String()
}

type bitReader struct {
	input    string
	val      int
	position int
	index    int // next character to load
}

// charValue returns the 6-bit value of the character at i. Reading past the
// end yields zero bits; truncation is detected by the caller via index.
func (r *bitReader) charValue(i int) (int, error) {
	if i >= len(r.input) {
		return 0, nil
	}
	v := strings.IndexByte(uriSafeAlphabet, r.input[i])
	if v < 0 {
		return 0, fmt.Errorf("%w: invalid character %q at %d", ErrCorrupt, r.input[i], i)
	}
	return v, nil
}

// read returns the next n bits, least significant bit first.
func (r *bitReader) read(n int) (int, error) {
	bits, power := 0, 1
	for range n {
		bit := r.val & r.position
		r.position >>= 1
		if r.position == 0 {
			r.position = resetValue
			v, err := r.charValue(r.index)
			if err != nil {
				return 0, err
			}
			r.val = v
			r.index++
		}
		if bit > 0 {
			bits |= power
		}
		power <<= 1
	}
	return bits, nil
}

func literalWidth(code int) int {
	if code == codeChar16 {
		return 16
	}
	return 8
}

// unitKey encodes one UTF-16 code unit as a two-byte string so that phrases
// can be used as map keys without rune conversion mangling lone surrogates.
func unitKey(u uint16) string {
	return string([]byte{byte(u >> 8), byte(u)})
}

func appendUnit(w []uint16, u uint16) []uint16 {
	out := make([]uint16, len(w)+1)
	copy(out, w)
	out[len(w)] = u
	return out
}
