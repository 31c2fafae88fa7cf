package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/folderchat/internal/config"
	apierrors "github.com/diogo/folderchat/internal/errors"
	"github.com/diogo/folderchat/internal/models"
	"github.com/diogo/folderchat/internal/render"
)

const envelope = `{
  "success": true,
  "folder_id": "f-42",
  "messages": [
    {"id": "1", "type": "user", "content": "summarise **chapter 2**", "timestamp": "2024-03-01T09:30:00.123456"},
    {"id": "2", "type": "assistant", "content": "## Summary\n\n- point *one*\n- point two", "timestamp": "2024-03-01T09:30:05Z", "ai_provider": "anthropic"}
  ]
}`

func TestParse_Envelope(t *testing.T) {
	tr, err := Parse([]byte(envelope), "")
	require.NoError(t, err)

	assert.Equal(t, "f-42", tr.FolderID)
	require.Equal(t, 2, tr.Len())

	user := tr.Messages[0]
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "summarise **chapter 2**", user.Content)
	assert.True(t, user.Timestamp.Equal(time.Date(2024, 3, 1, 9, 30, 0, 123456000, time.UTC)))
	assert.Empty(t, user.Provider)

	assistant := tr.Messages[1]
	assert.Equal(t, models.RoleAssistant, assistant.Role)
	assert.Equal(t, models.ProviderAnthropic, assistant.Provider)
	assert.Equal(t, "2", assistant.ID)
	assert.True(t, assistant.Timestamp.Equal(time.Date(2024, 3, 1, 9, 30, 5, 0, time.UTC)))
}

func TestParse_ExplicitFolderWins(t *testing.T) {
	tr, err := Parse([]byte(envelope), "mine")
	require.NoError(t, err)
	assert.Equal(t, "mine", tr.FolderID)
}

func TestParse_BareArray(t *testing.T) {
	data := `[{"role": "User", "content": "hi"}, {"role": "assistant", "content": "hello", "provider": "openai"}]`

	tr, err := Parse([]byte(data), "abc")
	require.NoError(t, err)
	require.Equal(t, 2, tr.Len())
	assert.Equal(t, models.RoleUser, tr.Messages[0].Role)
	assert.True(t, tr.Messages[0].Timestamp.IsZero())
	assert.Equal(t, models.ProviderOpenAI, tr.Messages[1].Provider)
}

func TestParse_EmptyMessages(t *testing.T) {
	tr, err := Parse([]byte(`{"success": true, "messages": []}`), "x")
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
	assert.NotNil(t, tr.Messages)
}

func TestParse_BackendFailure(t *testing.T) {
	_, err := Parse([]byte(`{"success": false, "error": "Folder not found"}`), "f-1")
	require.Error(t, err)

	assert.True(t, errors.Is(err, apierrors.ErrHistoryFailed))
	assert.True(t, apierrors.IsAPIError(err))
	assert.Equal(t, HistoryEndpoint+"f-1", apierrors.GetEndpoint(err))
	assert.Contains(t, err.Error(), "Folder not found")

	_, err = Parse([]byte(`{"success": false}`), "f-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), defaultHistoryError)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{"invalid json", `{"messages": [`, ""},
		{"scalar root", `"text"`, ""},
		{"missing messages", `{"success": true}`, "messages"},
		{"message not object", `{"messages": ["hi"]}`, "messages.0"},
		{"unknown role", `{"messages": [{"type": "user"}, {"type": "system", "content": "x"}]}`, "messages.1.type"},
		{"missing role", `[{"content": "x"}]`, "0.type"},
		{"bad timestamp", `[{"type": "user", "timestamp": "yesterday"}]`, "0.timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "f")
			require.Error(t, err)
			assert.True(t, errors.Is(err, apierrors.ErrInvalidTranscript))
			assert.Equal(t, tt.path, apierrors.GetParsePath(err))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "folder-7.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "user", "content": "hi"}]`), 0o600))

	tr, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "folder-7", tr.FolderID)

	tr, err = Load(path, "override")
	require.NoError(t, err)
	assert.Equal(t, "override", tr.FolderID)

	_, err = Load(filepath.Join(dir, "missing.json"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExport_HTML(t *testing.T) {
	tr, err := Parse([]byte(envelope), "")
	require.NoError(t, err)
	tr.Messages[0].Content = "<script>x</script> **hi**"

	var buf bytes.Buffer
	opts := DefaultExportOptions()
	opts.Format = config.FormatHTML
	require.NoError(t, Export(&buf, tr, opts))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<section class="chat-history" data-folder="f-42">`))
	assert.Contains(t, out, `<article class="message message-user"><div class="prose max-w-none text-white prose-invert"><p>&lt;script&gt;x&lt;/script&gt; <strong>hi</strong></p></div></article>`)
	assert.Contains(t, out, `<h2>Summary</h2><ul><li>point <em>one</em></li><li>point two</li></ul>`)
	assert.NotContains(t, out, "<script>")
}

func TestExport_Markdown(t *testing.T) {
	tr, err := Parse([]byte(envelope), "")
	require.NoError(t, err)

	var buf bytes.Buffer
	opts := DefaultExportOptions()
	opts.Format = config.FormatMarkdown
	require.NoError(t, Export(&buf, tr, opts))

	out := buf.String()
	assert.Contains(t, out, "# Folder f-42")
	assert.Contains(t, out, "**Messages:** 2")
	assert.Contains(t, out, "## You (2024-03-01 09:30:00)")
	assert.Contains(t, out, "## Assistant (2024-03-01 09:30:05)")
	assert.Contains(t, out, "## Summary\n\n- point *one*\n- point two")
	assert.Equal(t, 2, strings.Count(out, "\n---\n\n"), "metadata rule plus one separator")
}

func TestExport_JSON(t *testing.T) {
	tr, err := Parse([]byte(envelope), "")
	require.NoError(t, err)

	var buf bytes.Buffer
	opts := DefaultExportOptions()
	opts.Format = config.FormatJSON
	require.NoError(t, Export(&buf, tr, opts))

	var decoded struct {
		FolderID string `json:"folder_id"`
		Messages []struct {
			Role     string `json:"type"`
			Document struct {
				Blocks []struct {
					Kind  string `json:"kind"`
					Level int    `json:"level"`
				} `json:"blocks"`
			} `json:"document"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "f-42", decoded.FolderID)
	require.Len(t, decoded.Messages, 2)
	assert.Equal(t, "assistant", decoded.Messages[1].Role)

	blocks := decoded.Messages[1].Document.Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, "header", blocks[0].Kind)
	assert.Equal(t, 2, blocks[0].Level)
	assert.Equal(t, "unordered_list", blocks[1].Kind)
}

func TestExport_Terminal(t *testing.T) {
	tr, err := Parse([]byte(envelope), "")
	require.NoError(t, err)

	var buf bytes.Buffer
	opts := DefaultExportOptions()
	opts.Terminal = render.DefaultOptions().WithStyle(render.ThemeNoTTY)
	require.NoError(t, Export(&buf, tr, opts))

	out := buf.String()
	for _, want := range []string{"You", "Assistant", "anthropic", "chapter 2", "Summary", "point two"} {
		assert.Contains(t, out, want)
	}
}

func TestExport_Errors(t *testing.T) {
	var buf bytes.Buffer

	assert.Error(t, Export(&buf, nil, DefaultExportOptions()))

	opts := DefaultExportOptions()
	opts.Format = "pdf"
	assert.Error(t, Export(&buf, &models.Transcript{}, opts))

	opts.Format = config.FormatTerminal
	require.NoError(t, Export(&buf, &models.Transcript{}, opts))
	assert.Empty(t, buf.String())
}
