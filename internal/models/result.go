package models

import "time"

// SavedResult is a search result saved into a folder together with its
// AI summary and the user's notes. Summary and Notes use the same
// lightweight markdown as chat messages.
type SavedResult struct {
	ID          string    `json:"id,omitempty"`
	FolderID    string    `json:"folder_id,omitempty"`
	Title       string    `json:"title"`
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description,omitempty"`
	Summary     string    `json:"ai_summary,omitempty"`
	Notes       string    `json:"custom_notes,omitempty"`
	Engine      string    `json:"engine,omitempty"`
	SavedAt     time.Time `json:"saved_at"`
}

// HasSummary reports whether a summary was generated for the result
func (r *SavedResult) HasSummary() bool {
	return r != nil && r.Summary != ""
}

// FolderResults is the saved content of one folder
type FolderResults struct {
	FolderID string        `json:"folder_id,omitempty"`
	Results  []SavedResult `json:"results"`
}

// Len returns the number of saved results
func (f *FolderResults) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Results)
}
