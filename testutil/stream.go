package testutil

// uriSafeAlphabet matches the alphabet of internal/lzstring.
const uriSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"

// ExpandingStream returns a well-formed compressed stream of n back
// references in which every code points at the dictionary slot being
// created. It decompresses to "a", "aa", "aaa" and so on, for a total of
// (n+1)(n+2)/2 units from roughly 2n input characters.
func ExpandingStream(n int) string {
	var w streamWriter
	w.write(0, 2) // 8-bit literal
	w.write('a', 8)

	dictSize, enlargeIn, numBits := 4, 4, 3
	for range n {
		w.write(dictSize, numBits)
		dictSize++
		enlargeIn--
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}
	w.write(2, numBits) // end of stream
	return w.flush()
}

type streamWriter struct {
	out      []byte
	val      int
	position int
}

func (w *streamWriter) write(value, n int) {
	for range n {
		w.val = w.val<<1 | value&1
		if w.position == 5 {
			w.out = append(w.out, uriSafeAlphabet[w.val])
			w.position, w.val = 0, 0
		} else {
			w.position++
		}
		value >>= 1
	}
}

func (w *streamWriter) flush() string {
	for {
		w.val <<= 1
		if w.position == 5 {
			w.out = append(w.out, uriSafeAlphabet[w.val])
			return string(w.out)
		}
		w.position++
	}
}
