package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*CorpusRepo, *ConversationsRepo, *ProjectsRepo) {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCorpusRepo(db), NewConversationsRepo(db), NewProjectsRepo(db)
}

func date(year, month, day int) *time.Time {
	ts := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &ts
}

func seedCorpus(t *testing.T, repo *CorpusRepo) {
	t.Helper()
	ctx := context.Background()

	records := []struct {
		rec         core.CorpusRecord
		interesting bool
		analysis    string
	}{
		{
			rec: core.CorpusRecord{
				Title: `"Councilman Vanishes" On Way To Meeting`, Excerpt: "No body, no note.",
				PublishedAt: date(1948, 3, 14), Relevance: 0.92, NarrativeStrength: 0.88,
				Potential: core.PotentialYes, StoryTypes: "missing_persons,mystery",
			},
			interesting: true,
			analysis:    "strong disappearance narrative",
		},
		{
			rec: core.CorpusRecord{
				Title: "Murder Trial Opens Downtown", Excerpt: "The accused stood silent.",
				PublishedAt: date(1951, 7, 2), Relevance: 0.85, NarrativeStrength: 0.60,
				Potential: core.PotentialMaybe, StoryTypes: "crime",
			},
			interesting: true,
			analysis:    "courtroom drama",
		},
		{
			rec: core.CorpusRecord{
				Title: "City Budget Approved", Excerpt: "Routine session.",
				PublishedAt: date(1950, 1, 10), Relevance: 0.95, NarrativeStrength: 0.10,
				Potential: core.PotentialNo, StoryTypes: "politics",
			},
			interesting: false,
			analysis:    "",
		},
	}

	for _, r := range records {
		require.NoError(t, repo.Insert(ctx, r.rec, r.interesting, r.analysis))
	}
}

func TestCorpusSearch_Keywords(t *testing.T) {
	corpus, _, _ := newTestDB(t)
	seedCorpus(t, corpus)
	ctx := context.Background()

	records, err := corpus.Search(ctx, core.CorpusQuery{Keywords: []string{"MURDER"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Murder Trial Opens Downtown", records[0].Title)

	// OR semantics: either keyword may hit, across title or analysis notes.
	records, err = corpus.Search(ctx, core.CorpusQuery{Keywords: []string{"zoology", "disappearance"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Contains(t, records[0].Title, "Councilman")
}

func TestCorpusSearch_NoMatchesIsNotAnError(t *testing.T) {
	corpus, _, _ := newTestDB(t)
	seedCorpus(t, corpus)

	records, err := corpus.Search(context.Background(), core.CorpusQuery{Keywords: []string{"zoology"}})
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestCorpusSearch_DiverseSample(t *testing.T) {
	corpus, _, _ := newTestDB(t)
	seedCorpus(t, corpus)

	records, err := corpus.Search(context.Background(), core.CorpusQuery{})
	require.NoError(t, err)

	// Only interesting YES/MAYBE records qualify; the high-relevance NO
	// record stays out. Ordered by relevance, then narrative strength.
	require.Len(t, records, 2)
	require.Contains(t, records[0].Title, "Councilman")
	require.Contains(t, records[1].Title, "Murder Trial")
	require.NotNil(t, records[0].PublishedAt)
	require.Equal(t, 1948, records[0].PublishedAt.Year())
}

func TestCorpusFiltered(t *testing.T) {
	corpus, _, _ := newTestDB(t)
	seedCorpus(t, corpus)
	ctx := context.Background()

	records, err := corpus.Filtered(ctx, core.CorpusFilter{Potential: core.PotentialYes})
	require.NoError(t, err)
	require.Len(t, records, 1)

	records, err = corpus.Filtered(ctx, core.CorpusFilter{Query: "trial", MinRelevance: 0.9})
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestCorpusStats(t *testing.T) {
	corpus, _, _ := newTestDB(t)
	seedCorpus(t, corpus)

	stats, err := corpus.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalRecords)
	require.Equal(t, 2, stats.Interesting)
	require.Equal(t, 1, stats.ByPotential[core.PotentialYes])
	require.Equal(t, 1, stats.ByPotential[core.PotentialMaybe])
	require.Equal(t, 1, stats.ByPotential[core.PotentialNo])
}

func TestConversations_UpsertLoadDelete(t *testing.T) {
	_, convs, _ := newTestDB(t)
	ctx := context.Background()

	messages := []core.Message{
		{Role: core.RoleUser, Content: "what about murder", Timestamp: time.Now().UTC()},
		{Role: core.RoleAssistant, Content: "That opens up a lot of possibilities.", Timestamp: time.Now().UTC()},
	}

	require.NoError(t, convs.Upsert(ctx, "p1", "u1", messages))
	require.NoError(t, convs.Upsert(ctx, "p1", "u1", messages)) // idempotent overwrite

	loaded, err := convs.Load(ctx, "p1", "u1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, core.RoleUser, loaded[0].Role)

	require.NoError(t, convs.Delete(ctx, "p1"))
	loaded, err = convs.Load(ctx, "p1", "u1")
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestProjects_GetMissing(t *testing.T) {
	_, _, projects := newTestDB(t)

	_, err := projects.Get(context.Background(), "nope")
	require.True(t, errors.Is(err, core.ErrProjectNotFound))

	require.NoError(t, projects.Upsert(context.Background(), core.ProjectMetadata{
		ID: "p1", Name: "Cold Cases", ResearchGoals: []string{"unsolved disappearances"},
	}))
	meta, err := projects.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "Cold Cases", meta.Name)
	require.Equal(t, []string{"unsolved disappearances"}, meta.ResearchGoals)
}
