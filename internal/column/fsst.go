// Package column implements ColumnStore (C1): a random-access,
// FSST-style compressed vector of UTF-8 strings sharing one trained
// static dictionary.
//
// No Go port of FSST exists in the retrieval pack or the broader
// ecosystem (see DESIGN.md) — spec.md anticipates exactly this case
// and warns that a general-purpose per-row compressor breaks the
// random-access contract, so the fallback it sanctions is a
// hand-built static-dictionary codec, not gzip/zstd-per-row. This is
// that codec: a greedy, frequency-trained symbol table of at most 256
// entries of 1-8 bytes, shared by every compressed string.
package column

import "sort"

const (
	maxSymbols    = 256
	maxSymbolLen  = 8
	minSymbolLen  = 2
	trainSampleCt = 1 << 20 // cap on candidate substrings counted during training
)

// Dictionary is the trained static symbol table, serialized alongside
// the compressed payload.
type Dictionary struct {
	Symbols [][]byte
}

// compressor holds the trained dictionary plus a lookup structure
// (longest-match-first over symbols grouped by first byte).
type compressor struct {
	dict    Dictionary
	byFirst [256][]int // indices into dict.Symbols, longest first
}

// Train builds a Dictionary by greedily selecting the most frequent
// byte substrings (length 2-8) across the corpus, escaping any byte
// that isn't covered by a multi-byte symbol as a literal.
func Train(strs [][]byte) Dictionary {
	counts := make(map[string]int)
	scanned := 0

	for _, s := range strs {
		for length := minSymbolLen; length <= maxSymbolLen; length++ {
			if len(s) < length {
				continue
			}
			for i := 0; i+length <= len(s); i++ {
				counts[string(s[i:i+length])]++
				scanned++
				if scanned >= trainSampleCt {
					break
				}
			}
			if scanned >= trainSampleCt {
				break
			}
		}
		if scanned >= trainSampleCt {
			break
		}
	}

	type cand struct {
		sym   string
		gain  int // approx bytes saved if selected: count*(len-1)
		count int
	}
	cands := make([]cand, 0, len(counts))
	for s, c := range counts {
		if c < 2 {
			continue
		}
		cands = append(cands, cand{sym: s, gain: c * (len(s) - 1), count: c})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].gain != cands[j].gain {
			return cands[i].gain > cands[j].gain
		}
		return cands[i].sym < cands[j].sym
	})

	dict := Dictionary{}
	for _, c := range cands {
		if len(dict.Symbols) >= maxSymbols {
			break
		}
		dict.Symbols = append(dict.Symbols, []byte(c.sym))
	}
	return dict
}

func newCompressor(dict Dictionary) *compressor {
	c := &compressor{dict: dict}
	for i, sym := range dict.Symbols {
		if len(sym) == 0 {
			continue
		}
		b := sym[0]
		c.byFirst[b] = append(c.byFirst[b], i)
	}
	for b := range c.byFirst {
		idxs := c.byFirst[b]
		sort.Slice(idxs, func(i, j int) bool {
			return len(c.dict.Symbols[idxs[i]]) > len(c.dict.Symbols[idxs[j]])
		})
		c.byFirst[b] = idxs
	}
	return c
}

// code format: each emitted unit is either
//
//	0xFF <literalByte>      (escape: one raw byte that didn't match a symbol)
//	0xFE <symbolIndexLo> <symbolIndexHi>  (16-bit little-endian dictionary index)
//
// Symbol bytes themselves never contain 0xFF/0xFE ambiguity because
// codes are never raw payload bytes; they are always one of the two
// tagged forms above.
const (
	tagLiteral = 0xFF
	tagSymbol  = 0xFE
)

func (c *compressor) compress(s []byte) []byte {
	out := make([]byte, 0, len(s)+2)
	i := 0
	for i < len(s) {
		matched := -1
		for _, idx := range c.byFirst[s[i]] {
			sym := c.dict.Symbols[idx]
			if i+len(sym) <= len(s) && bytesEqual(s[i:i+len(sym)], sym) {
				matched = idx
				break
			}
		}
		if matched >= 0 {
			out = append(out, tagSymbol, byte(matched), byte(matched>>8))
			i += len(c.dict.Symbols[matched])
			continue
		}
		out = append(out, tagLiteral, s[i])
		i++
	}
	return out
}

func (c *compressor) decompress(code []byte) []byte {
	out := make([]byte, 0, len(code))
	i := 0
	for i < len(code) {
		switch code[i] {
		case tagLiteral:
			out = append(out, code[i+1])
			i += 2
		case tagSymbol:
			idx := int(code[i+1]) | int(code[i+2])<<8
			out = append(out, c.dict.Symbols[idx]...)
			i += 3
		default:
			// Malformed code stream; stop decoding what we have.
			return out
		}
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
