package signup

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwise/backend/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "signup.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	profile := &domain.SignupProfile{
		FullName:        "Ada Lovelace",
		Email:           "ada@university.edu",
		PasswordHash:    "deadbeef",
		Organization:    "Math Club",
		Major:           "Mathematics",
		University:      "Analytical University",
		Location:        "London",
		PurposeChoices:  []string{"textbooks", "electronics"},
		PurposeText:     "Comparing textbook prices",
		TermsAccepted:   true,
		PrivacyAccepted: true,
	}

	id, err := store.Save(ctx, profile)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSave_NilProfile(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Save(context.Background(), nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestSave_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	first, err := store.Save(ctx, &domain.SignupProfile{FullName: "A", Email: "a@x.edu"})
	require.NoError(t, err)
	second, err := store.Save(ctx, &domain.SignupProfile{FullName: "B", Email: "b@x.edu"})
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}
