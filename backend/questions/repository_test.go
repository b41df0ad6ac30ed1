package questions

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizbank/backend/apperr"
	"quizbank/backend/models"
	"quizbank/backend/storage"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	s, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "quiz.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return NewRepository(s.DB())
}

func ptr[T any](v T) *T { return &v }

func mustCreate(t *testing.T, repo *Repository, text, category string, difficulty models.Difficulty) models.Question {
	t.Helper()
	q, err := repo.Create(context.Background(), Input{
		Question:      text,
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: 1,
		Category:      category,
		Difficulty:    difficulty,
	})
	require.NoError(t, err)
	return q
}

func TestCreateRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, Input{
		Question:      "2+2?",
		Options:       []string{"3", "4", "5"},
		CorrectAnswer: 1,
		Category:      "math",
		Difficulty:    models.DifficultyEasy,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2+2?", got.Question)
	assert.Equal(t, []string{"3", "4", "5"}, got.Options)
	assert.Equal(t, 1, got.CorrectAnswer)
	assert.Equal(t, "math", got.Category)
	assert.Equal(t, models.DifficultyEasy, got.Difficulty)
}

func TestCreateRejectsInvalidAndWritesNothing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	inputs := []Input{
		{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 2, Category: "c", Difficulty: "easy"},
		{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: -1, Category: "c", Difficulty: "easy"},
		{Question: "q", Options: []string{"a"}, CorrectAnswer: 0, Category: "c", Difficulty: "easy"},
		{Question: "", Options: []string{"a", "b"}, CorrectAnswer: 0, Category: "c", Difficulty: "easy"},
		{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 0, Category: "", Difficulty: "easy"},
		{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 0, Category: "c", Difficulty: ""},
	}
	for _, in := range inputs {
		_, err := repo.Create(ctx, in)
		assert.True(t, apperr.IsValidation(err), "input %+v: %v", in, err)
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateNormalizesDifficulty(t *testing.T) {
	repo := newTestRepository(t)
	q := mustCreate(t, repo, "case", " History ", " HARD ")
	assert.Equal(t, models.DifficultyHard, q.Difficulty)
	assert.Equal(t, "History", q.Category)
}

func TestListRespectsLimit(t *testing.T) {
	repo := newTestRepository(t)
	for i := 0; i < 5; i++ {
		mustCreate(t, repo, string(rune('A'+i)), "letters", models.DifficultyEasy)
	}

	got, err := repo.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Less(t, got[0].ID, got[1].ID)
}

func TestGetQuestionsFiltersAndLimits(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		mustCreate(t, repo, "math easy "+string(rune('a'+i)), "math", models.DifficultyEasy)
	}
	for i := 0; i < 3; i++ {
		mustCreate(t, repo, "math hard "+string(rune('a'+i)), "math", models.DifficultyHard)
	}
	for i := 0; i < 4; i++ {
		mustCreate(t, repo, "science easy "+string(rune('a'+i)), "science", models.DifficultyEasy)
	}

	tests := []struct {
		name   string
		filter Filter
		limit  int
		want   int
	}{
		{"no filter", Filter{}, 100, 13},
		{"category", Filter{Category: ptr("math")}, 100, 9},
		{"difficulty", Filter{Difficulty: ptr(models.DifficultyEasy)}, 100, 10},
		{"both", Filter{Category: ptr("math"), Difficulty: ptr(models.DifficultyHard)}, 100, 3},
		{"limit below matches", Filter{Category: ptr("math")}, 4, 4},
		{"no matches", Filter{Category: ptr("art")}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetQuestions(ctx, tt.filter, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)

			seen := map[uint]bool{}
			for _, q := range got {
				assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
				seen[q.ID] = true
				if tt.filter.Category != nil {
					assert.Equal(t, *tt.filter.Category, q.Category)
				}
				if tt.filter.Difficulty != nil {
					assert.Equal(t, *tt.filter.Difficulty, q.Difficulty)
				}
			}
		})
	}
}

func TestGetQuestionsRejectsNonPositiveLimit(t *testing.T) {
	repo := newTestRepository(t)
	_, err := repo.GetQuestions(context.Background(), Filter{}, 0)
	assert.True(t, apperr.IsValidation(err))
}

func TestGetQuestionsIsRandomized(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		mustCreate(t, repo, "q"+string(rune('a'+i)), "pool", models.DifficultyMedium)
	}

	selections := map[string]bool{}
	hitIDs := map[uint]bool{}
	for i := 0; i < 30; i++ {
		got, err := repo.GetQuestions(ctx, Filter{Category: ptr("pool")}, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)

		ids := make([]uint, 0, len(got))
		for _, q := range got {
			ids = append(ids, q.ID)
			hitIDs[q.ID] = true
		}
		selections[fmt.Sprint(ids)] = true
	}

	assert.Greater(t, len(selections), 1, "30 samples of 3 out of 20 should not all be identical")
	assert.Greater(t, len(hitIDs), 3, "selection should reach beyond the first rows")
}

func TestCategories(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	got, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	mustCreate(t, repo, "one", "science", models.DifficultyEasy)
	mustCreate(t, repo, "two", "math", models.DifficultyEasy)
	mustCreate(t, repo, "three", "science", models.DifficultyHard)

	got, err = repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "science"}, got)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	keep := mustCreate(t, repo, "keep", "c", models.DifficultyEasy)
	drop := mustCreate(t, repo, "drop", "c", models.DifficultyEasy)

	require.NoError(t, repo.Delete(ctx, drop.ID))

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	_, err = repo.Get(ctx, drop.ID)
	assert.True(t, apperr.IsNotFound(err))

	assert.True(t, apperr.IsNotFound(repo.Delete(ctx, drop.ID)), "second delete of the same id")
	assert.True(t, apperr.IsNotFound(repo.Delete(ctx, 9999)))
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := mustCreate(t, repo, "first", "c", models.DifficultyEasy)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := mustCreate(t, repo, "second", "c", models.DifficultyEasy)
	assert.Greater(t, second.ID, first.ID)
}
