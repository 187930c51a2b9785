package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/commissioner/internal/models"
	"github.com/mmynk/commissioner/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("LoadRoster returns ErrNotFound before first save", func(t *testing.T) {
		_, err := store.LoadRoster(ctx, storage.RosterKey)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("SaveRoster then LoadRoster round-trips in order", func(t *testing.T) {
		original := &models.Snapshot{
			People: []models.Person{
				{ID: "b", Name: "Zhang Wei", Profit: 12500.5, Month: "2026-09"},
				{ID: "a", Name: "", Profit: 0, Month: "2026-10"},
				{ID: "c", Name: "Li Na", Profit: 48000, Month: "2026-10"},
			},
		}
		require.NoError(t, store.SaveRoster(ctx, storage.RosterKey, original))
		require.Equal(t, models.SnapshotVersion, original.Version)

		loaded, err := store.LoadRoster(ctx, storage.RosterKey)
		require.NoError(t, err)
		require.Equal(t, models.SnapshotVersion, loaded.Version)
		require.Equal(t, original.People, loaded.People)
	})

	t.Run("SaveRoster replaces previous snapshot", func(t *testing.T) {
		first := &models.Snapshot{People: []models.Person{{ID: "x", Month: "2026-01"}}}
		second := &models.Snapshot{People: []models.Person{{ID: "y", Name: "Wang Fang", Month: "2026-02"}}}
		require.NoError(t, store.SaveRoster(ctx, "replace", first))
		require.NoError(t, store.SaveRoster(ctx, "replace", second))

		loaded, err := store.LoadRoster(ctx, "replace")
		require.NoError(t, err)
		require.Equal(t, second.People, loaded.People)
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.SaveRoster(ctx, "other", &models.Snapshot{}))

		loaded, err := store.LoadRoster(ctx, "other")
		require.NoError(t, err)
		require.Empty(t, loaded.People)

		_, err = store.LoadRoster(ctx, "missing")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLoadRosterRejectsUnknownVersion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		"INSERT INTO roster_state (key, version, state, updated_at) VALUES (?, ?, ?, ?)",
		storage.RosterKey, 99, `{"version":99,"people":[]}`, 0,
	)
	require.NoError(t, err)

	_, err = store.LoadRoster(ctx, storage.RosterKey)
	require.ErrorIs(t, err, storage.ErrUnsupportedVersion)
}

func TestLoadRosterCorruptState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		"INSERT INTO roster_state (key, version, state, updated_at) VALUES (?, ?, ?, ?)",
		storage.RosterKey, models.SnapshotVersion, `{"people": [`, 0,
	)
	require.NoError(t, err)

	_, err = store.LoadRoster(ctx, storage.RosterKey)
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrNotFound)
	require.Contains(t, err.Error(), "failed to decode snapshot")
}

func TestNewInMemory(t *testing.T) {
	store, err := New(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveRoster(ctx, storage.RosterKey, &models.Snapshot{
		People: []models.Person{{ID: "m", Month: "2026-10"}},
	}))
	loaded, err := store.LoadRoster(ctx, storage.RosterKey)
	require.NoError(t, err)
	require.Len(t, loaded.People, 1)
}
