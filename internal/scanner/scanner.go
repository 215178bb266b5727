// Package scanner implements the quoting-aware byte scanning primitives
// shared by the line parser and the command tokenizer: counting, locating,
// and splitting on a target character while honoring quoted spans and
// backslash escapes.
//
// Quoting rules: a '\'' toggles an in-single-quote state unless currently
// inside a double-quoted span, in which case it is literal; '"' behaves
// symmetrically. Mismatched quotes are tolerated — the state simply stays
// open until the end of the string. A target byte counts as an occurrence
// only if ignoreEscapes is true, or it lies outside any quoted span and is
// not immediately preceded by a backslash. The first byte of a string is
// never considered escaped.
package scanner

// quoteState tracks whether the scan is currently inside a quoted span.
type quoteState struct {
	single bool
	double bool
}

func (q *quoteState) advance(b byte) {
	switch b {
	case '\'':
		if !q.double {
			q.single = !q.single
		}
	case '"':
		if !q.single {
			q.double = !q.double
		}
	}
}

func (q *quoteState) inQuote() bool {
	return q.single || q.double
}

// Walk calls fn for every byte of s in order, reporting whether that byte
// lies inside a quoted span and whether it is escaped by an immediately
// preceding backslash. Iteration stops early if fn returns false.
func Walk(s []byte, fn func(i int, b byte, inQuote, escaped bool) bool) {
	var q quoteState
	for i, b := range s {
		escaped := i > 0 && s[i-1] == '\\'
		if !fn(i, b, q.inQuote(), escaped) {
			return
		}
		q.advance(b)
	}
}

// occurrences returns the byte offsets of every counted occurrence of c in
// s, honoring quoting unless ignoreEscapes is set.
func occurrences(s []byte, c byte, ignoreEscapes bool) []int {
	var out []int
	Walk(s, func(i int, b byte, inQuote, escaped bool) bool {
		if b == c && (ignoreEscapes || (!inQuote && !escaped)) {
			out = append(out, i)
		}
		return true
	})
	return out
}

// Count returns the number of counted occurrences of c in s.
func Count(s []byte, c byte, ignoreEscapes bool) int {
	return len(occurrences(s, c, ignoreEscapes))
}

// Position returns the byte offset of the n-th (0-based) counted occurrence
// of c in s, or ok=false if there is no such occurrence.
func Position(s []byte, c byte, n int, ignoreEscapes bool) (pos int, ok bool) {
	occ := occurrences(s, c, ignoreEscapes)
	if n < 0 || n >= len(occ) {
		return 0, false
	}
	return occ[n], true
}

// Split returns the n-th (0-based) delimiter-separated segment of s — the
// bytes between the (n-1)-th and n-th counted occurrence of c, or from the
// start/to the end of s at the boundaries — along with the remainder of s
// after that occurrence. An out-of-range n, or a delimiter with nothing
// after it, yields a legal empty segment.
func Split(s []byte, c byte, n int, ignoreEscapes bool) (segment, rest []byte) {
	occ := occurrences(s, c, ignoreEscapes)

	start := 0
	if n > 0 {
		if n-1 < len(occ) {
			start = occ[n-1] + 1
		} else {
			start = len(s) + 1
		}
	}
	if start > len(s) {
		start = len(s)
	}

	end := len(s)
	if n >= 0 && n < len(occ) {
		end = occ[n]
	}
	if end < start {
		end = start
	}

	segment = s[start:end]
	if n >= 0 && n < len(occ) {
		rest = s[occ[n]+1:]
	}
	return segment, rest
}
