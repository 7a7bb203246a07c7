package pairs

import (
	"strings"

	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/types"
)

// MsgInvalidLine is the parse error message; the offending line follows verbatim
const MsgInvalidLine = "invalid input. Every line should be <from>|<to>, got %s"

// Parse converts text into rename pairs, one per line, in input order.
// Any line that does not split into exactly two fields fails the whole
// parse; no partial result is returned.
func Parse(text string) ([]types.RenamePair, error) {
	lines := splitLines(text)
	result := make([]types.RenamePair, 0, len(lines))

	for i, line := range lines {
		fields := strings.Split(line, types.Separator)
		if len(fields) != 2 {
			return nil, errors.Newf(errors.ErrParse, MsgInvalidLine, line).
				WithDetail("line", line).
				WithDetail("lineNumber", i+1)
		}
		result = append(result, types.RenamePair{From: fields[0], To: fields[1]})
	}

	return result, nil
}

// splitLines splits on "\n" and drops one trailing "\r" per line. A final
// newline terminates the last line rather than starting an empty one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
