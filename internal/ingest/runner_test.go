package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/intra"
	"github.com/deniz/campushub/internal/pkg/apperrors"
)

type fakeSource struct {
	pages    [][]intra.Project
	err      error
	errPage  int
	requests []int
}

func (f *fakeSource) FetchProjects(ctx context.Context, cursusID, page, perPage int) ([]intra.Project, error) {
	f.requests = append(f.requests, page)
	if f.err != nil && page == f.errPage {
		return nil, f.err
	}
	if page-1 < len(f.pages) {
		return f.pages[page-1], nil
	}
	return nil, nil
}

type fakeStore struct {
	projects       map[int64]*models.Project
	upsertOrder    []string
	specAssigned   map[int64]string
	missingCatalog bool
	upsertErr      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects:     make(map[int64]*models.Project),
		specAssigned: make(map[int64]string),
	}
}

func (f *fakeStore) Upsert(ctx context.Context, project *models.Project) (bool, error) {
	if f.upsertErr != nil {
		return false, f.upsertErr
	}
	f.upsertOrder = append(f.upsertOrder, project.Slug)
	_, exists := f.projects[project.ProjectID]
	f.projects[project.ProjectID] = project
	return !exists, nil
}

func (f *fakeStore) SetAutoSpecialization(ctx context.Context, externalProjectID int64, name string) error {
	if f.missingCatalog {
		return apperrors.ErrTagNotFound
	}
	f.specAssigned[externalProjectID] = name
	return nil
}

type memorySink struct {
	lines map[Category][]string
}

func newMemorySink() *memorySink {
	return &memorySink{lines: make(map[Category][]string)}
}

func (s *memorySink) Record(category Category, line string) {
	s.lines[category] = append(s.lines[category], line)
}

func testRunner(source ProjectSource, store ProjectStore, sink DiagnosticSink) *Runner {
	return NewRunner(source, store, sink, zerolog.Nop())
}

func TestRunIngestsEligibleProjects(t *testing.T) {
	source := &fakeSource{pages: [][]intra.Project{{
		eligibleProject(1, "Libft", "42cursus-libft"),
		eligibleProject(2, "Unrelated", "unrelated-thing"),
	}}}
	store := newFakeStore()

	res, err := testRunner(source, store, nil).Run(context.Background(), Config{CursusID: 21})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, []string{"42cursus-libft", "unrelated-thing"}, store.upsertOrder)
	// libft is common core, unrelated-thing gets no automatic specialization
	assert.Equal(t, models.SpecializationCommonCore, store.specAssigned[1])
	_, assigned := store.specAssigned[2]
	assert.False(t, assigned)
}

func TestRunSecondIngestionUpdates(t *testing.T) {
	page := []intra.Project{eligibleProject(1, "Libft", "42cursus-libft")}
	store := newFakeStore()

	res, err := testRunner(&fakeSource{pages: [][]intra.Project{page}}, store, nil).
		Run(context.Background(), Config{CursusID: 21})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 0, res.Updated)

	res, err = testRunner(&fakeSource{pages: [][]intra.Project{page}}, store, nil).
		Run(context.Background(), Config{CursusID: 21})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Len(t, store.projects, 1)
}

func TestRunLimitStopsMidPage(t *testing.T) {
	// Page 1 carries 100 eligible items, page 2 carries 3; with limit 101
	// processing must halt after the first item of page 2.
	page1 := make([]intra.Project, 100)
	for i := range page1 {
		page1[i] = eligibleProject(int64(i+1), fmt.Sprintf("P%d", i+1), fmt.Sprintf("project-%d", i+1))
	}
	page2 := []intra.Project{
		eligibleProject(101, "P101", "project-101"),
		eligibleProject(102, "P102", "project-102"),
		eligibleProject(103, "P103", "project-103"),
	}
	source := &fakeSource{pages: [][]intra.Project{page1, page2}}
	store := newFakeStore()

	res, err := testRunner(source, store, nil).Run(context.Background(), Config{CursusID: 21, Limit: 101})
	require.NoError(t, err)

	assert.Equal(t, 101, res.Total())
	assert.Len(t, store.upsertOrder, 101)
	assert.Equal(t, "project-101", store.upsertOrder[100])
	assert.Equal(t, []int{1, 2}, source.requests, "no page 3 fetch after the limit")
}

func TestRunStopsOnEmptyPage(t *testing.T) {
	source := &fakeSource{pages: [][]intra.Project{
		{eligibleProject(1, "Libft", "42cursus-libft")},
		{},
	}}
	store := newFakeStore()

	res, err := testRunner(source, store, nil).Run(context.Background(), Config{CursusID: 21})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, []int{1, 2}, source.requests)
}

func TestRunAbortsOnSourceError(t *testing.T) {
	source := &fakeSource{
		pages: [][]intra.Project{
			{eligibleProject(1, "Libft", "42cursus-libft")},
		},
		err:     &intra.StatusError{Method: "GET", URL: "u", StatusCode: 500},
		errPage: 2,
	}
	store := newFakeStore()

	res, err := testRunner(source, store, nil).Run(context.Background(), Config{CursusID: 21})

	var statusErr *intra.StatusError
	require.True(t, errors.As(err, &statusErr))
	// The committed upsert from page 1 stays committed
	assert.Equal(t, 1, res.Created)
	assert.Len(t, store.projects, 1)
}

func TestRunAbortsOnStoreError(t *testing.T) {
	source := &fakeSource{pages: [][]intra.Project{
		{eligibleProject(1, "Libft", "42cursus-libft")},
	}}
	store := newFakeStore()
	store.upsertErr = errors.New("connection reset")

	_, err := testRunner(source, store, nil).Run(context.Background(), Config{CursusID: 21})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "42cursus-libft")
}

func TestRunMissingSpecializationCatalogIsNotFatal(t *testing.T) {
	source := &fakeSource{pages: [][]intra.Project{
		{eligibleProject(1, "Libft", "42cursus-libft")},
	}}
	store := newFakeStore()
	store.missingCatalog = true

	res, err := testRunner(source, store, nil).Run(context.Background(), Config{CursusID: 21})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Empty(t, store.specAssigned)
}

func TestRunAcceptsSecondSessionSubscriptableButExtractsFirst(t *testing.T) {
	p := eligibleProject(1, "Libft", "42cursus-libft")
	p.Sessions = []intra.Session{
		{Description: "first desc", Solo: true, Objectives: []string{"a"}, IsSubscriptable: false},
		{Description: "second desc", Solo: false, Objectives: []string{"b"}, IsSubscriptable: true},
	}
	source := &fakeSource{pages: [][]intra.Project{{p}}}
	store := newFakeStore()

	res, err := testRunner(source, store, nil).Run(context.Background(), Config{CursusID: 21})
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)

	saved := store.projects[1]
	require.NotNil(t, saved)
	assert.Equal(t, "first desc", saved.Description)
	assert.True(t, saved.Solo)
	assert.Equal(t, []string{"a"}, saved.Objectives)
}

func TestRunRecordsDiagnostics(t *testing.T) {
	low := eligibleProject(1, "Small", "small-thing")
	low.Campus = campuses(2)
	low.Sessions[0].IsSubscriptable = false

	beta := eligibleProject(2, "Beta", "beta-thing")
	beta.Campus = campuses(4)

	keyword := eligibleProject(3, "Old Stuff", "old-stuff")

	closed := eligibleProject(4, "Closed", "closed-thing")
	closed.Sessions[0].IsSubscriptable = false

	excluded := eligibleProject(5, "Lisboa Only", "lisboa-thing")
	excluded.Campus = append(excluded.Campus, intra.Campus{ID: 38})

	source := &fakeSource{pages: [][]intra.Project{{low, beta, keyword, closed, excluded}}}
	store := newFakeStore()
	sink := newMemorySink()

	_, err := testRunner(source, store, sink).Run(context.Background(), Config{CursusID: 21})
	require.NoError(t, err)

	assert.Equal(t, []string{"small-thing, 2"}, sink.lines[CategoryLowCampus])
	assert.Equal(t, []string{"beta-thing"}, sink.lines[CategoryMaybeBeta])
	assert.Equal(t, []string{"old-stuff, forbidden keyword"}, sink.lines[CategoryForbiddenKeyword])
	assert.Equal(t, []string{"closed-thing, not subscritable"}, sink.lines[CategoryNotSubscriptable])
	// every record without a deprecated campus is listed
	assert.Equal(t,
		[]string{"small-thing", "beta-thing", "old-stuff", "closed-thing"},
		sink.lines[CategoryNotExcludedCampus])
}
