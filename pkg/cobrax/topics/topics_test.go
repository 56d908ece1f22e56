package topics_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/drupal-settings/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"parameters.md":          {Data: []byte("# Parameters\n\nParameter files are YAML.")},
		"templates.txt":          {Data: []byte("Templates use Twig syntax.")},
		"option-strict.md":       {Data: []byte("# --strict\n\nExit 2 when nothing is generated.")},
		"nested/composer.md":     {Data: []byte("# composer.json")},
		"notes.json":             {Data: []byte("{}")},
		"nested/ignored.unknown": {Data: []byte("x")},
	}
}

func TestScan_DefaultExtensions(t *testing.T) {
	tm := topics.New(topicFS(), topics.Options{})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"composer", "option-strict", "parameters", "templates"}, tm.ListTopics())

	topic, ok := tm.GetTopic("parameters")
	require.True(t, ok)
	assert.Equal(t, "parameters.md", topic.FilePath)
	assert.Equal(t, "# Parameters\n\nParameter files are YAML.", topic.Content)
}

func TestScan_CustomExtensions(t *testing.T) {
	tm := topics.New(topicFS(), topics.Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func TestGetTopic_FlagStyle(t *testing.T) {
	tm := topics.New(topicFS(), topics.Options{})
	require.NoError(t, tm.Scan())

	for _, name := range []string{"--strict", "-strict", "strict", "option-strict"} {
		t.Run(name, func(t *testing.T) {
			topic, ok := tm.GetTopic(name)
			require.True(t, ok)
			assert.Equal(t, "option-strict", topic.Name)
		})
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestWriteTopicList(t *testing.T) {
	tm := topics.New(topicFS(), topics.Options{})
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.WriteTopicList(&buf, "drupal-settings")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  composer\n  parameters\n  templates\n")
	assert.Contains(t, out, "Option topics:\n  --strict\n")
	assert.Contains(t, out, "Use 'drupal-settings help <topic>'")
}

func TestWriteTopicList_Empty(t *testing.T) {
	tm := topics.New(fstest.MapFS{}, topics.Options{})
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.WriteTopicList(&buf, "drupal-settings")

	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "drupal-settings", Short: "root short"}
	root.AddCommand(&cobra.Command{Use: "generate", Short: "generate short", Run: func(*cobra.Command, []string) {}})
	return root
}

func runHelp(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestInitialize_HelpCommand(t *testing.T) {
	root := newRoot()
	_, err := topics.Initialize(root, topicFS(), topics.Options{})
	require.NoError(t, err)

	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "Templates use Twig syntax.", runHelp(t, root, "templates"))
	})

	t.Run("topic list", func(t *testing.T) {
		assert.Contains(t, runHelp(t, root, "topics"), "Available help topics:")
	})

	t.Run("command", func(t *testing.T) {
		assert.Contains(t, runHelp(t, root, "generate"), "generate short")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &topics.PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer(t *testing.T) {
	r := &topics.GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nSome *body* text.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
	assert.NotEqual(t, "# Title\n\nSome *body* text.", out)
}

func TestInitialize_FlagStyleTopic(t *testing.T) {
	root := newRoot()
	_, err := topics.Initialize(root, topicFS(), topics.Options{})
	require.NoError(t, err)

	assert.Contains(t, runHelp(t, root, "--strict"), "Exit 2 when nothing is generated.")
}
