package intra

// Project is a raw cursus project as returned by the intra API.
// Only the fields the ingestion pipeline reads are mapped; the upstream
// payload carries far more.
type Project struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Difficulty  *int         `json:"difficulty"`
	Campus      []Campus     `json:"campus"`
	Parent      *Parent      `json:"parent"`
	Sessions    []Session    `json:"project_sessions"`
	Attachments []Attachment `json:"attachments"`
}

// Campus identifies one campus a project is rolled out to
type Campus struct {
	ID int64 `json:"id"`
}

// Parent is the parent project reference, present for sub-projects
type Parent struct {
	Name string `json:"name"`
}

// Session is one project session. EstimateTime is a free-form string
// like "48 hours".
type Session struct {
	Description     string   `json:"description"`
	EstimateTime    string   `json:"estimate_time"`
	Solo            bool     `json:"solo"`
	IsSubscriptable bool     `json:"is_subscriptable"`
	Objectives      []string `json:"objectives"`
}

// Attachment is an attached file, typically the subject PDF
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// tokenResponse is the OAuth client-credentials exchange response
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
