package column

// Store is an immutable, randomly-accessible vector of strings backed
// by a single trained Dictionary. It is the concrete type behind
// spec.md §4.1's ColumnStore: offsets make Get O(1) to locate a row,
// and decompress is O(len(row)) because each code unit's width (two
// bytes for a literal, three for a symbol) is fixed by its tag byte.
type Store struct {
	dict    Dictionary
	codes   []byte   // concatenation of every row's compressed code
	offsets []uint32 // offsets[i]..offsets[i+1] bounds row i in codes
	comp    *compressor
}

// TrainAndBuild trains a Dictionary over strs and compresses every
// entry against it, producing a Store with the same length and row
// order as strs.
func TrainAndBuild(strs []string) (*Store, error) {
	byteStrs := make([][]byte, len(strs))
	for i, s := range strs {
		byteStrs[i] = []byte(s)
	}

	dict := Train(byteStrs)
	comp := newCompressor(dict)

	s := &Store{
		dict:    dict,
		offsets: make([]uint32, len(strs)+1),
		comp:    comp,
	}
	for i, b := range byteStrs {
		code := comp.compress(b)
		s.codes = append(s.codes, code...)
		s.offsets[i+1] = uint32(len(s.codes))
	}
	return s, nil
}

// Open reconstructs a Store from a previously trained Dictionary and
// its raw codes/offsets, as produced by a deserialized Index.
func Open(dict Dictionary, codes []byte, offsets []uint32) *Store {
	return &Store{
		dict:    dict,
		codes:   codes,
		offsets: offsets,
		comp:    newCompressor(dict),
	}
}

// Len returns the number of rows in the store.
func (s *Store) Len() int {
	if len(s.offsets) == 0 {
		return 0
	}
	return len(s.offsets) - 1
}

// Get decodes row i. ok is false if i is out of range.
func (s *Store) Get(i int) (string, bool) {
	if i < 0 || i >= s.Len() {
		return "", false
	}
	code := s.codes[s.offsets[i]:s.offsets[i+1]]
	return string(s.comp.decompress(code)), true
}

// Dictionary returns the trained symbol table, for serialization.
func (s *Store) Dictionary() Dictionary { return s.dict }

// Codes returns the concatenated compressed payload, for serialization.
func (s *Store) Codes() []byte { return s.codes }

// Offsets returns the per-row offset table, for serialization.
func (s *Store) Offsets() []uint32 { return s.offsets }
