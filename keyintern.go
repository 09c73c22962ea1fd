package sonnyjim

// internKey decodes and interns an object key. raw is the key's full
// token span, including the surrounding double quotes, as lexed from
// the source. It implements spec §4.2's decode-then-intern algorithm.
func (a *Arena) internKey(raw Span) (StringKey, error) {
	// raw covers the quotes; the content is [raw.Start+1, raw.End-1).
	contentStart := raw.Start + 1
	contentEnd := raw.End - 1

	mark := a.scratch.len()
	appended := false

	runStart := contentStart
	i := contentStart
	for i < contentEnd {
		if a.source[i] != '\\' {
			i++
			continue
		}
		if i > runStart {
			a.scratch.appendString(a.source[runStart:i])
			appended = true
		}
		i++ // past backslash
		if i >= contentEnd {
			// The lexer guarantees a well-formed escape exists, so this
			// can only happen if internKey is called on a malformed
			// span directly; treat it the same as an invalid escape.
			return StringKey{}, &ParseError{Kind: InvalidEscape, Span: Span{Start: i - 1, End: i}}
		}

		ctl := a.source[i]
		switch ctl {
		case '"', '\\', '/':
			a.scratch.append(ctl)
			appended = true
			i++
		case 'b':
			a.scratch.append('\b')
			appended = true
			i++
		case 'f':
			a.scratch.append('\f')
			appended = true
			i++
		case 'n':
			a.scratch.append('\n')
			appended = true
			i++
		case 'r':
			a.scratch.append('\r')
			appended = true
			i++
		case 't':
			a.scratch.append('\t')
			appended = true
			i++
		case 'u':
			if i+5 > contentEnd {
				return StringKey{}, &ParseError{Kind: TruncatedUnicodeEscape, Span: Span{Start: i - 1, End: contentEnd}}
			}
			cp, ok := parseHex4(a.source[i+1 : i+5])
			if !ok {
				return StringKey{}, &ParseError{Kind: TruncatedUnicodeEscape, Span: Span{Start: i - 1, End: i + 5}}
			}
			if cp >= 0xD800 && cp <= 0xDFFF {
				// Lone surrogate half: spec's preserved limitation
				// rejects these rather than attempting to pair them.
				return StringKey{}, &ParseError{Kind: InvalidCodePoint, Span: Span{Start: i - 1, End: i + 5}}
			}
			a.scratch.appendRune(rune(cp))
			appended = true
			i += 5
		default:
			return StringKey{}, &ParseError{Kind: InvalidEscape, Span: Span{Start: i - 1, End: i + 1}}
		}
		runStart = i
	}

	if !appended {
		// No escapes: the decoded key is exactly the source subrange.
		decoded := a.source[contentStart:contentEnd]
		return a.internOrDedup([]byte(decoded), func() StringKey {
			return StringKey{span: sourceSpan(contentStart, contentEnd)}
		}, nil), nil
	}

	if runStart < contentEnd {
		a.scratch.appendString(a.source[runStart:contentEnd])
	}
	decodedEnd := a.scratch.len()
	decoded := a.scratch.bytes(mark, decodedEnd)
	return a.internOrDedup(decoded, func() StringKey {
		return StringKey{span: scratchSpan(mark, decodedEnd)}
	}, func() {
		// Duplicate: give back the scratch bytes this decode used.
		a.scratch.truncate(mark)
	}), nil
}

// internOrDedup looks up decoded and either returns the pre-existing
// canonical key (running onDuplicate first, to let the caller reclaim
// any scratch space its decode used) or builds and commits a new one
// via buildKey.
func (a *Arena) internOrDedup(decoded []byte, buildKey func() StringKey, onDuplicate func()) StringKey {
	idx, h, found := a.interner.lookup(a, decoded)
	if found {
		if onDuplicate != nil {
			onDuplicate()
		}
		return a.interner.keys[idx]
	}
	key := buildKey()
	a.interner.commit(idx, h, key)
	return key
}

func parseHex4(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < 4; i++ {
		c := s[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}
