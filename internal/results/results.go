// Package results reads the saved contents of a folder, as returned by the
// backend's /api/folders/<folder>/results endpoint, and writes them out with
// summaries and notes formatted.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/folderchat/internal/errors"
	"github.com/diogo/folderchat/internal/models"
)

const defaultResultsError = "Failed to load folder results"

// Endpoint returns the backend path folder results are read from
func Endpoint(folderID string) string {
	return "/api/folders/" + folderID + "/results"
}

// Parse decodes a saved folder results response.
//
// Accepted shapes are the backend envelope {"success": true, "results": [...]}
// and a bare array of results. success=false yields an APIError. When
// folderID is empty the envelope's folder_id is used, then the folder_id
// the backend stamps on each result.
func Parse(data []byte, folderID string) (*models.FolderResults, error) {
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
			folderID = root.Get("folder_id").String()
		}
		if success := root.Get("success"); success.Exists() && !success.Bool() {
			msg := root.Get("error").String()
			if msg == "" {
				msg = defaultResultsError
			}
			return nil, apierrors.NewAPIError(0, Endpoint(folderID), msg)
		}
		list = root.Get("results")
		if !list.IsArray() {
			return nil, apierrors.NewParseError("missing results array", "results")
		}
		prefix = "results."
	default:
		return nil, apierrors.NewParseError("expected a JSON object or array", "")
	}

	items := list.Array()
	f := &models.FolderResults{
		FolderID: folderID,
		Results:  make([]models.SavedResult, 0, len(items)),
	}
	for i, item := range items {
		r, err := parseResult(item, fmt.Sprintf("%s%d", prefix, i))
		if err != nil {
			return nil, err
		}
		if f.FolderID == "" {
			f.FolderID = r.FolderID
		}
		f.Results = append(f.Results, r)
	}

	return f, nil
}

// Load reads and parses a saved results file, falling back to the file
// name without extension for the folder id.
func Load(path, folderID string) (*models.FolderResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	f, err := Parse(data, folderID)
	if err != nil {
		return nil, err
	}
	if f.FolderID == "" {
		f.FolderID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

func parseResult(item gjson.Result, path string) (models.SavedResult, error) {
	if !item.IsObject() {
		return models.SavedResult{}, apierrors.NewParseError("result must be an object", path)
	}

	savedAt, err := models.ParseTime(item.Get("saved_at").String())
	if err != nil {
		return models.SavedResult{}, apierrors.NewParseError(err.Error(), path+".saved_at")
	}

	return models.SavedResult{
		ID:          item.Get("id").String(),
		FolderID:    item.Get("folder_id").String(),
		Title:       item.Get("title").String(),
		URL:         item.Get("url").String(),
		Description: item.Get("description").String(),
		Summary:     item.Get("ai_summary").String(),
		Notes:       item.Get("custom_notes").String(),
		Engine:      item.Get("engine").String(),
		SavedAt:     savedAt,
	}, nil
}
