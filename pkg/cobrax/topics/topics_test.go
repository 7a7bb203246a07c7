// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: fstest.MapFS, cobra
// PURPOSE: Test topic discovery, lookup and the help command

package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":             {Data: []byte("Information about dry-run mode")},
		"format.md":               {Data: []byte("# Format\n\nOne pair per line")},
		"config.txxt":             {Data: []byte("Configuration Guide")},
		"ignore.json":             {Data: []byte("This should be ignored")},
		"option-stdin.txt":        {Data: []byte("Read from stdin")},
		"advanced/rollback.md":    {Data: []byte("# Rollback")},
		"advanced/notes/deep.txt": {Data: []byte("deep")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testSource())
		require.NoError(t, tm.scanTopics())

		topic, ok := tm.GetTopic("dry-run")
		require.True(t, ok)
		assert.Equal(t, "Information about dry-run mode", topic.Content)

		_, ok = tm.GetTopic("config")
		assert.False(t, ok, ".txxt is not a default extension")

		_, ok = tm.GetTopic("ignore")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testSource(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testSource())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		query string
		name  string
	}{
		{"format", "format"},
		{"--dry-run", "dry-run"},
		{"-dry-run", "dry-run"},
		{"stdin", "option-stdin"},
		{"--stdin", "option-stdin"},
		{"rollback", "rollback"},
		{"deep", "deep"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.name, topic.Name)
		})
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestTopicManager_ListTopicsSorted(t *testing.T) {
	tm := New(testSource())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"deep", "dry-run", "format", "option-stdin", "rollback"}, tm.ListTopics())
}

func TestTopicManager_NilSource(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string { return format + ":" + content }

func TestTopicManager_RenderUsesExtension(t *testing.T) {
	tm := NewWithOptions(testSource(), Options{Renderer: upperRenderer{}})
	require.NoError(t, tm.scanTopics())

	topic, ok := tm.GetTopic("format")
	require.True(t, ok)
	assert.Equal(t, ".md:# Format\n\nOne pair per line", tm.Render(topic))
}

func TestGlamourRenderer_PassesThroughNonMarkdown(t *testing.T) {
	r := NewPlainGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRenderer_RendersMarkdown(t *testing.T) {
	r := NewPlainGlamourRenderer()
	out := r.Render("# Title\n\nBody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text")
}

func newRoot(out *bytes.Buffer) *cobra.Command {
	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})
	root.SetOut(out)
	root.SetErr(out)
	return root
}

func TestIntegration_HelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		var out bytes.Buffer
		root := newRoot(&out)
		_, err := Initialize(root, testSource())
		require.NoError(t, err)

		root.SetArgs([]string{"help", "dry-run"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Information about dry-run mode", out.String())
	})

	t.Run("topic list", func(t *testing.T) {
		var out bytes.Buffer
		root := newRoot(&out)
		_, err := Initialize(root, testSource())
		require.NoError(t, err)

		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "General topics:")
		assert.Contains(t, out.String(), "  format\n")
		assert.Contains(t, out.String(), "Option topics:")
		assert.Contains(t, out.String(), "  --stdin\n")
		assert.Contains(t, out.String(), "Use 'app help <topic>'")
	})

	t.Run("command falls back to command help", func(t *testing.T) {
		var out bytes.Buffer
		root := newRoot(&out)
		_, err := Initialize(root, testSource())
		require.NoError(t, err)

		root.SetArgs([]string{"help", "sub"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "A subcommand")
	})

	t.Run("empty source", func(t *testing.T) {
		var out bytes.Buffer
		root := newRoot(&out)
		_, err := Initialize(root, fstest.MapFS{})
		require.NoError(t, err)

		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "No help topics available.")
	})
}
