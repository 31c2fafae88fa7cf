// Package transcript reads folder chat histories saved from the backend's
// /api/chat/history/<folder> endpoint and writes them out formatted.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/folderchat/internal/errors"
	"github.com/diogo/folderchat/internal/models"
)

// HistoryEndpoint is the backend path the saved responses come from
const HistoryEndpoint = "/api/chat/history/"

const defaultHistoryError = "Failed to load chat history"

// Parse decodes a saved history response.
//
// Accepted shapes are the backend envelope {"success": true, "messages": [...]}
// and a bare array of messages. An envelope with success=false yields an
// APIError carrying the backend's error text. When folderID is empty the
// envelope's folder_id/folderId is used.
func Parse(data []byte, folderID string) (*models.Transcript, error) {
	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("invalid JSON", "")
	}

	root := gjson.ParseBytes(data)

	var (
		list   gjson.Result
		prefix string
	)
	switch {
	case root.IsArray():
		list = root
	case root.IsObject():
		if folderID == "" {
			folderID = firstString(root, "folder_id", "folderId")
		}
		if success := root.Get("success"); success.Exists() && !success.Bool() {
			msg := root.Get("error").String()
			if msg == "" {
				msg = defaultHistoryError
			}
			return nil, apierrors.NewAPIError(0, HistoryEndpoint+folderID, msg)
		}
		list = root.Get("messages")
		if !list.IsArray() {
			return nil, apierrors.NewParseError("missing messages array", "messages")
		}
		prefix = "messages."
	default:
		return nil, apierrors.NewParseError("expected a JSON object or array", "")
	}

	items := list.Array()
	t := &models.Transcript{
		FolderID: folderID,
		Messages: make([]models.Message, 0, len(items)),
	}
	for i, item := range items {
		msg, err := parseMessage(item, fmt.Sprintf("%s%d", prefix, i))
		if err != nil {
			return nil, err
		}
		t.Messages = append(t.Messages, msg)
	}

	return t, nil
}

// Load reads and parses a saved history file. Without an explicit folderID
// the envelope's folder id is used, then the file name without extension.
func Load(path, folderID string) (*models.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	t, err := Parse(data, folderID)
	if err != nil {
		return nil, err
	}
	if t.FolderID == "" {
		t.FolderID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

func parseMessage(item gjson.Result, path string) (models.Message, error) {
	if !item.IsObject() {
		return models.Message{}, apierrors.NewParseError("message must be an object", path)
	}

	rawRole := firstString(item, "type", "role")
	role, err := models.ParseRole(rawRole)
	if err != nil {
		return models.Message{}, apierrors.NewParseError(fmt.Sprintf("unknown role %q", rawRole), path+".type")
	}

	ts, err := models.ParseTime(item.Get("timestamp").String())
	if err != nil {
		return models.Message{}, apierrors.NewParseError(err.Error(), path+".timestamp")
	}

	return models.Message{
		ID:        item.Get("id").String(),
		Role:      role,
		Content:   item.Get("content").String(),
		Timestamp: ts,
		Provider:  firstString(item, "ai_provider", "provider"),
	}, nil
}

func firstString(r gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v.Exists() && v.Type != gjson.Null {
			return v.String()
		}
	}
	return ""
}
