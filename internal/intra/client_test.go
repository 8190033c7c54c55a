package intra

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://api.intra.test"

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient(testBaseURL, "uid", "secret")
	httpmock.ActivateNonDefault(c.HTTP)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestAuthenticate(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("POST", testBaseURL+"/oauth/token",
		httpmock.NewStringResponder(200, `{"access_token":"tok-1","token_type":"bearer","expires_in":7200}`))

	err := c.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", c.token)
}

func TestAuthenticateNoToken(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("POST", testBaseURL+"/oauth/token",
		httpmock.NewStringResponder(200, `{"token_type":"bearer"}`))

	err := c.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrNoAccessToken)
}

func TestAuthenticateNon2xx(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("POST", testBaseURL+"/oauth/token",
		httpmock.NewStringResponder(401, `{"error":"invalid_client"}`))

	err := c.Authenticate(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 401, statusErr.StatusCode)
}

func TestFetchProjectsAuthenticatesLazilyOnce(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder("POST", testBaseURL+"/oauth/token",
		httpmock.NewStringResponder(200, `{"access_token":"tok-lazy"}`))
	httpmock.RegisterResponder("GET", testBaseURL+"/v2/cursus/21/projects",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer tok-lazy", req.Header.Get("Authorization"))
			assert.Equal(t, "1", req.URL.Query().Get("page"))
			assert.Equal(t, "100", req.URL.Query().Get("per_page"))
			return httpmock.NewStringResponse(200, `[{"id":42,"name":"libft","slug":"42cursus-libft"}]`), nil
		})

	projects, err := c.FetchProjects(context.Background(), 21, 1, 100)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, int64(42), projects[0].ID)
	assert.Equal(t, "42cursus-libft", projects[0].Slug)

	// Second page must reuse the cached token
	_, err = c.FetchProjects(context.Background(), 21, 2, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["POST "+testBaseURL+"/oauth/token"])
}

func TestFetchProjectsNon2xx(t *testing.T) {
	c := newTestClient(t)
	c.token = "tok"

	httpmock.RegisterResponder("GET", testBaseURL+"/v2/cursus/21/projects",
		httpmock.NewStringResponder(500, `{"error":"server"}`))

	_, err := c.FetchProjects(context.Background(), 21, 1, 100)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 500, statusErr.StatusCode)
}

func TestFetchProjectsDecodesSessions(t *testing.T) {
	c := newTestClient(t)
	c.token = "tok"

	payload := `[{
		"id": 7,
		"name": "minishell",
		"slug": "42cursus-minishell",
		"difficulty": 1260,
		"campus": [{"id": 1}, {"id": 38}],
		"parent": {"name": "unix-branch"},
		"project_sessions": [{
			"description": "As beautiful as a shell",
			"estimate_time": "210 hours",
			"solo": false,
			"is_subscriptable": true,
			"objectives": ["Unix", "Rigor"]
		}],
		"attachments": [{"name": "subject.pdf", "url": "https://cdn.intra.test/subject.pdf"}]
	}]`

	httpmock.RegisterResponder("GET", testBaseURL+"/v2/cursus/21/projects",
		httpmock.NewStringResponder(200, payload))

	projects, err := c.FetchProjects(context.Background(), 21, 1, 100)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	require.NotNil(t, p.Difficulty)
	assert.Equal(t, 1260, *p.Difficulty)
	require.NotNil(t, p.Parent)
	assert.Equal(t, "unix-branch", p.Parent.Name)
	require.Len(t, p.Sessions, 1)
	assert.Equal(t, "210 hours", p.Sessions[0].EstimateTime)
	assert.True(t, p.Sessions[0].IsSubscriptable)
	assert.Equal(t, []string{"Unix", "Rigor"}, p.Sessions[0].Objectives)
	require.Len(t, p.Attachments, 1)
	assert.Equal(t, "subject.pdf", p.Attachments[0].Name)
}
