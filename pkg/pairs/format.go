package pairs

import (
	"io"
	"strings"

	"github.com/arthur-debert/retitle/pkg/types"
)

// Format serializes pairs into the text format, one newline-terminated
// line per pair, in the order given. Fields containing the separator are
// written as-is and will not parse back.
func Format(pairs []types.RenamePair) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.From)
		b.WriteString(types.Separator)
		b.WriteString(p.To)
		b.WriteByte('\n')
	}
	return b.String()
}

// Write streams the formatted pairs to w
func Write(w io.Writer, pairs []types.RenamePair) error {
	_, err := io.WriteString(w, Format(pairs))
	return err
}
