package ingest

import (
	"strconv"
	"strings"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/intra"
)

// Field extraction. All functions are total over a raw record: an absent or
// empty session list yields the documented safe default.

// EstimateTimeHours parses the first session's estimate_time string
// ("48 hours") into integer hours. Malformed or missing input yields 0.
func EstimateTimeHours(p *intra.Project) int {
	if len(p.Sessions) == 0 {
		return 0
	}

	fields := strings.Fields(p.Sessions[0].EstimateTime)
	if len(fields) == 0 {
		return 0
	}

	hours, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return hours
}

// Description returns the first session's description, or ""
func Description(p *intra.Project) string {
	if len(p.Sessions) == 0 {
		return ""
	}
	return p.Sessions[0].Description
}

// Solo returns the first session's solo flag, or false
func Solo(p *intra.Project) bool {
	if len(p.Sessions) == 0 {
		return false
	}
	return p.Sessions[0].Solo
}

// Objectives returns the first session's objectives, or an empty list
func Objectives(p *intra.Project) []string {
	if len(p.Sessions) == 0 || p.Sessions[0].Objectives == nil {
		return []string{}
	}
	return p.Sessions[0].Objectives
}

// XPPoints mirrors difficulty. This is a known simplification kept until a
// real XP formula exists upstream.
func XPPoints(p *intra.Project) *int {
	return p.Difficulty
}

// Prerequisites is a placeholder for future enrichment and always empty
func Prerequisites(p *intra.Project) []string {
	return []string{}
}

// SubjectDownloadURL returns the URL of the first attachment whose name
// ends in ".pdf", or nil when none exists.
func SubjectDownloadURL(p *intra.Project) *string {
	for _, attachment := range p.Attachments {
		if strings.HasSuffix(attachment.Name, ".pdf") {
			url := attachment.URL
			return &url
		}
	}
	return nil
}

// IsSubscriptable reports whether any session is open for enrollment.
// Unlike the first-session extraction rules this is an OR across all
// sessions.
func IsSubscriptable(p *intra.Project) bool {
	for _, session := range p.Sessions {
		if session.IsSubscriptable {
			return true
		}
	}
	return false
}

// NewProject assembles a normalized project from a raw record
func NewProject(p *intra.Project) *models.Project {
	var parentName *string
	if p.Parent != nil {
		name := p.Parent.Name
		parentName = &name
	}

	return &models.Project{
		ProjectID:          p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Description:        Description(p),
		Difficulty:         p.Difficulty,
		ParentName:         parentName,
		Objectives:         Objectives(p),
		EstimateTime:       EstimateTimeHours(p),
		Solo:               Solo(p),
		XPPoints:           XPPoints(p),
		Prerequisites:      Prerequisites(p),
		SubjectDownloadURL: SubjectDownloadURL(p),
	}
}
