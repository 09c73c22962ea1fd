package sonnyjim

import "unicode/utf8"

// Scratch is an append-only byte buffer holding the decoded form of any
// object key that contained an escape sequence. It only grows while an
// [Arena] is alive, except that a decode which turns out to be a
// duplicate key gives its own bytes back; content already handed out as part of a
// [StringKey] is never overwritten, because committing a decode only
// ever appends past the current length.
type Scratch struct {
	buf []byte
}

// len returns the current length of the scratch buffer.
func (s *Scratch) len() uint32 {
	return uint32(len(s.buf))
}

// append writes b to the end of the scratch buffer.
func (s *Scratch) append(b ...byte) {
	s.buf = append(s.buf, b...)
}

// appendString is like append but for a string.
func (s *Scratch) appendString(str string) {
	s.buf = append(s.buf, str...)
}

// appendRune appends the UTF-8 encoding of r.
func (s *Scratch) appendRune(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.buf = append(s.buf, tmp[:n]...)
}

// truncate discards everything appended since mark. Used by the interner
// when a decoded key turns out to be a duplicate: the scratch bytes for
// that decode are thrown away rather than kept around forever.
func (s *Scratch) truncate(mark uint32) {
	s.buf = s.buf[:mark]
}

// bytes returns the scratch contents in [start, end).
func (s *Scratch) bytes(start, end uint32) []byte {
	return s.buf[start:end]
}
