package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizbank/backend/apperr"
	"quizbank/backend/results"
	"quizbank/backend/storage"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInitAndListQuestions(t *testing.T) {
	db := filepath.Join(t.TempDir(), "quiz.db")

	out, err := run(t, "--db", db, "--driver", "sqlite", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "18 sample questions added")

	out, err = run(t, "--db", db, "--driver", "sqlite", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "0 sample questions added")

	out, err = run(t, "--db", db, "--driver", "sqlite", "questions", "list", "--limit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3 questions")

	out, err = run(t, "--db", db, "--driver", "sqlite", "categories")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(distinctCategories()))
	assert.IsIncreasing(t, lines)
}

func distinctCategories() map[string]struct{} {
	set := map[string]struct{}{}
	for _, q := range storage.SampleQuestions() {
		set[q.Category] = struct{}{}
	}
	return set
}

func TestAddAndDeleteQuestion(t *testing.T) {
	db := filepath.Join(t.TempDir(), "quiz.db")
	base := []string{"--db", db, "--driver", "sqlite"}

	out, err := run(t, append(base, "questions", "add",
		"--question", "2+2?",
		"--option", "3", "--option", "4", "--option", "5",
		"--correct", "1",
		"--category", "Math",
		"--difficulty", "easy",
	)...)
	require.NoError(t, err)
	assert.Equal(t, "Added question 1.\n", out)

	_, err = run(t, append(base, "questions", "add",
		"--question", "Broken",
		"--option", "a", "--option", "b",
		"--correct", "2",
		"--category", "Math",
	)...)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	out, err = run(t, append(base, "questions", "list")...)
	require.NoError(t, err)
	assert.Contains(t, out, "2+2?")
	assert.Contains(t, out, "1 questions")

	_, err = run(t, append(base, "questions", "delete", "abc")...)
	require.Error(t, err)

	out, err = run(t, append(base, "questions", "delete", "1")...)
	require.NoError(t, err)
	assert.Equal(t, "Deleted question 1.\n", out)

	_, err = run(t, append(base, "questions", "delete", "1")...)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestResultsAndHistoryEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "quiz.db")

	out, err := run(t, "--db", db, "--driver", "sqlite", "results")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")

	out, err = run(t, "--db", db, "--driver", "sqlite", "history", "--user", "user_1")
	require.NoError(t, err)
	assert.Contains(t, out, "Attempts:  0")
	assert.Contains(t, out, "Accuracy:  0%")

	_, err = run(t, "--db", db, "--driver", "sqlite", "history")
	assert.Error(t, err, "--user is required")
}

func TestTokenCarriesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "clisecret")

	out, err := run(t, "token", "--user", "user_7", "--admin")
	require.NoError(t, err)

	parsed, err := jwt.Parse(strings.TrimSpace(out), func(token *jwt.Token) (interface{}, error) {
		return []byte("clisecret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "user_7", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestResultsSummarizesShownPage(t *testing.T) {
	db := filepath.Join(t.TempDir(), "quiz.db")
	s, err := storage.OpenSQLite(db, nil)
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	ledger := results.NewLedger(s.DB())
	_, err = ledger.Save(context.Background(), "user_1", 1, 2)
	require.NoError(t, err)
	_, err = ledger.Save(context.Background(), "user_1", 1, 10)
	require.NoError(t, err)
	_, err = ledger.Save(context.Background(), "user_2", 3, 3)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	out, err := run(t, "--db", db, "--driver", "sqlite", "results", "--user", "user_1")
	require.NoError(t, err)
	assert.Contains(t, out, "2 results, 2 / 12 correct (17%)")
	assert.NotContains(t, out, "user_2")

	out, err = run(t, "--db", db, "--driver", "sqlite", "results")
	require.NoError(t, err)
	assert.Contains(t, out, "3 results, 5 / 15 correct (33%)")
}
