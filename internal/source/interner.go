package source

// Interner deduplicates identifier spellings so that equal names share one
// backing string. Not safe for concurrent use; each scanner owns its own.
type Interner struct {
	seen map[string]string
}

func NewInterner() *Interner {
	return &Interner{
		seen: make(map[string]string),
	}
}

// Intern returns the canonical copy of s, storing one if none exists yet.
// The copy is detached from whatever buffer s was sliced out of.
func (i *Interner) Intern(s string) string {
	if c, ok := i.seen[s]; ok {
		return c
	}
	cpy := string([]byte(s))
	i.seen[cpy] = cpy
	return cpy
}

// InternBytes interns the string spelled by b.
func (i *Interner) InternBytes(b []byte) string {
	return i.Intern(string(b))
}

// Has reports whether s has already been interned.
func (i *Interner) Has(s string) bool {
	_, ok := i.seen[s]
	return ok
}

// Len returns the number of distinct strings interned so far.
func (i *Interner) Len() int {
	return len(i.seen)
}
