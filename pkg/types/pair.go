package types

import "fmt"

// Separator is the reserved delimiter between the two fields of a rename line.
// There is no escaping: names containing it cannot be expressed.
const Separator = "|"

// RenamePair describes one intended rename, relative to the working directory
type RenamePair struct {
	From string
	To   string
}

// NewIdentityPair returns a pair that maps name onto itself
func NewIdentityPair(name string) RenamePair {
	return RenamePair{From: name, To: name}
}

// IsNoop reports whether the pair leaves the name unchanged
func (p RenamePair) IsNoop() bool {
	return p.From == p.To
}

// Inverse returns the pair that undoes p
func (p RenamePair) Inverse() RenamePair {
	return RenamePair{From: p.To, To: p.From}
}

// String returns the pair in its textual line form, without a newline
func (p RenamePair) String() string {
	return fmt.Sprintf("%s%s%s", p.From, Separator, p.To)
}
