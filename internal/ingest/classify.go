package ingest

import (
	"strings"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/intra"
)

// Category identifies a diagnostic bucket a rejected (or notable) record
// falls into. Categories feed the optional diagnostic sink only.
type Category string

const (
	// CategoryLowCampus is a project rolled out to fewer campuses than the
	// threshold and not subscriptable anywhere.
	CategoryLowCampus Category = "low_campus"
	// CategoryMaybeBeta is below the campus threshold but subscriptable,
	// which usually means a staged rollout.
	CategoryMaybeBeta Category = "maybe_beta"
	// CategoryNotSubscriptable passed the campus gate but has no open session.
	CategoryNotSubscriptable Category = "not_subscriptable"
	// CategoryForbiddenKeyword matched the curated keyword denylist.
	CategoryForbiddenKeyword Category = "forbidden_keyword"
	// CategoryNotExcludedCampus lists records with no deprecated campus.
	// Informational only, recorded for every raw record regardless of gates.
	CategoryNotExcludedCampus Category = "not_excluded_campus"
)

// Classify runs the gate chain over a raw record and decides whether it is
// eligible for ingestion. Gate order matters and each stage short-circuits:
// campus size, then keyword denylist, then subscriptability. The returned
// category is only meaningful when accepted is false.
func Classify(p *intra.Project) (accepted bool, category Category) {
	if len(p.Campus) < CampusThreshold {
		if IsSubscriptable(p) {
			return false, CategoryMaybeBeta
		}
		return false, CategoryLowCampus
	}

	if HasForbiddenKeyword(p.Name, p.Slug) {
		return false, CategoryForbiddenKeyword
	}

	if !IsSubscriptable(p) {
		return false, CategoryNotSubscriptable
	}

	return true, ""
}

// HasForbiddenKeyword reports whether name or slug contains any denylisted
// keyword, case-insensitively.
func HasForbiddenKeyword(name, slug string) bool {
	name = strings.ToUpper(name)
	slug = strings.ToUpper(slug)

	for _, keyword := range ExcludedKeywords {
		kw := strings.ToUpper(keyword)
		if strings.Contains(name, kw) || strings.Contains(slug, kw) {
			return true
		}
	}
	return false
}

// HasExcludedCampus reports whether any of the record's campuses is a
// deprecated site. Diagnostic only; never used for filtering.
func HasExcludedCampus(p *intra.Project) bool {
	for _, campus := range p.Campus {
		for _, excluded := range ExcludedCampusIDs {
			if campus.ID == excluded {
				return true
			}
		}
	}
	return false
}

// DeriveSpecialization scans the slug against the curated common-core slug
// list (case-sensitive substring match). A match yields the common_core
// specialization name; otherwise no automatic specialization is assigned.
func DeriveSpecialization(slug string) (string, bool) {
	for _, core := range CommonCoreSlugs {
		if strings.Contains(slug, core) {
			return models.SpecializationCommonCore, true
		}
	}
	return "", false
}
