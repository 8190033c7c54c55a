package models

import "time"

// Project is a normalized cursus project. ProjectID is the upstream
// identifier and the sole external identity: re-ingesting the same
// ProjectID overwrites the derived fields and never creates a second row.
type Project struct {
	ID                 int64     `json:"id"`
	ProjectID          int64     `json:"project_id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	Difficulty         *int      `json:"difficulty"`
	ParentName         *string   `json:"parent_name"`
	Objectives         []string  `json:"objectives"`
	EstimateTime       int       `json:"estimate_time"`
	Solo               bool      `json:"solo"`
	XPPoints           *int      `json:"xp_points"`
	Prerequisites      []string  `json:"prerequisites"`
	SubjectDownloadURL *string   `json:"subject_download_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Tag relations; languages are always manually curated, specializations
	// are manual except the auto-assigned common_core.
	Languages       []Tag `json:"languages"`
	Specializations []Tag `json:"specializations"`
}
