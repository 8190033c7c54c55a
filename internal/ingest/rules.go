// Package ingest implements the cursus project ingestion pipeline:
// paginated fetch from the intra API, multi-stage filtering, derived-field
// extraction and idempotent upsert into the project store.
package ingest

// Curated rule data. These lists are maintained by hand and intentionally
// live here as plain ordered data so they can be updated without touching
// the pipeline logic, and so tests can assert against them directly.

// CampusThreshold is the minimum number of campuses a project must be
// rolled out to before it is considered broadly available. 9 is the campus
// count of the reference project set; anything below is treated as a
// beta-only or locally piloted project.
const CampusThreshold = 9

// ExcludedCampusIDs are deprecated sites (38: Lisboa, 58: Porto). Presence
// of one of these campuses is diagnostic-only and never rejects a record.
var ExcludedCampusIDs = []int64{38, 58}

// ExcludedKeywords is the denylist of name/slug substrings identifying
// test, administrative, deprecated or otherwise irrelevant project
// variants. Matching is case-insensitive.
var ExcludedKeywords = []string{
	"TEST",
	"RNCP",
	"Apprentissage",
	"Internship",
	"startup",
	"work-experience",
	"exam",
	"Rushes",
	"hive",
	"maillard",
	"42Qu√©bec",
	"42_collaborative_resume",
	"deprecated",
	"java",
	"part_time",
	"old",
	"Electronique",
	"abstract-vm",
	"ft_containers",
	"ft_script",
	"ft_select",
	"ft_server",
	"tinky-winkey",
	"gbmu",
}

// CommonCoreSlugs are slug substrings identifying foundational-curriculum
// projects. Matching is case-sensitive; any match assigns the common_core
// specialization at ingestion time.
var CommonCoreSlugs = []string{
	"libft",
	"get_next_line",
	"fractol",
	"FdF",
	"minitalk",
	"miniRT",
	"ft_printf",
	"born2beroot",
	"pipex",
	"minishell",
	"philosophers",
	"cub3d",
	"so-long",
	"netpractice",
	"cpp-module",
	"inception",
	"webserv",
	"ft_irc",
	"transcendence",
}
