// Package pairs converts between the line-oriented rename text format and
// ordered lists of types.RenamePair.
//
// Each line holds one rename as <from>|<to>. There is no escaping, quoting or
// trimming: whitespace is part of a name, and a name containing the separator
// or a newline cannot be represented.
//
//	draft.txt|final.txt
//	notes.md|notes.md
//
// Parse and Format are inverses for every list whose fields contain neither
// the separator nor a newline.
package pairs
