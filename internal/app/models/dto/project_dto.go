package dto

import "time"

// TagResponse represents a language or specialization tag
type TagResponse struct {
	Name        string `json:"name" example:"python"`
	DisplayName string `json:"displayName" example:"Python"`
}

// ProjectResponse represents a project in list and detail responses
type ProjectResponse struct {
	ID                 int64         `json:"id" example:"12"`
	ProjectID          int64         `json:"projectId" example:"1314"`
	Name               string        `json:"name" example:"libft"`
	Slug               string        `json:"slug" example:"42cursus-libft"`
	Description        string        `json:"description"`
	Difficulty         *int          `json:"difficulty" example:"462"`
	ParentName         *string       `json:"parentName"`
	Objectives         []string      `json:"objectives"`
	EstimateTime       int           `json:"estimateTime" example:"70"`
	Solo               bool          `json:"solo" example:"true"`
	XPPoints           *int          `json:"xpPoints" example:"462"`
	Prerequisites      []string      `json:"prerequisites"`
	SubjectDownloadURL *string       `json:"subjectDownloadUrl"`
	Languages          []TagResponse `json:"languages"`
	Specializations    []TagResponse `json:"specializations"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// ProjectListResponse represents a paginated project listing
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// TagListResponse represents the tag catalog
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToggleTagResponse reports the tag assignment state after a toggle
type ToggleTagResponse struct {
	ProjectID int64  `json:"projectId" example:"12"`
	Tag       string `json:"tag" example:"python"`
	Assigned  bool   `json:"assigned" example:"true"`
}
