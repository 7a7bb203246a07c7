package retitle

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/retitle/pkg/cobrax/topics"
	"github.com/arthur-debert/retitle/pkg/output"
)

//go:embed topics
var topicFiles embed.FS

// topicSource returns the embedded help topics rooted at the topics directory
func topicSource() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}

// topicRenderer picks glamour's styled or plain output when a topic is
// shown, after flags have been parsed
type topicRenderer struct {
	noColor *bool
}

func (r topicRenderer) Render(content, format string) string {
	if *r.noColor || !output.ShouldColor(os.Stdout, output.ColorAuto) {
		return topics.NewPlainGlamourRenderer().Render(content, format)
	}
	return topics.NewGlamourRenderer().Render(content, format)
}
