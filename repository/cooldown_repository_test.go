package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"novabot/infrastructure"
	"novabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownRepository_TryStamp(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()
	repo := NewCooldownRepository(testDB.DB)

	window := 10 * time.Second
	t0 := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("first stamp claims the slot", func(t *testing.T) {
		stamped, err := repo.TryStamp(ctx, 42, t0, window)
		require.NoError(t, err)
		assert.True(t, stamped)
	})

	t.Run("inside the window is refused", func(t *testing.T) {
		stamped, err := repo.TryStamp(ctx, 42, t0.Add(3*time.Second), window)
		require.NoError(t, err)
		assert.False(t, stamped)
	})

	t.Run("exactly one window later qualifies", func(t *testing.T) {
		stamped, err := repo.TryStamp(ctx, 42, t0.Add(window), window)
		require.NoError(t, err)
		assert.True(t, stamped)
	})

	t.Run("refused attempt does not move the stamp", func(t *testing.T) {
		// The refused attempt at t0+window+3s must not reset the clock:
		// t0+2*window is still a full window after the last accepted stamp.
		stamped, err := repo.TryStamp(ctx, 42, t0.Add(window+3*time.Second), window)
		require.NoError(t, err)
		assert.False(t, stamped)

		stamped, err = repo.TryStamp(ctx, 42, t0.Add(2*window), window)
		require.NoError(t, err)
		assert.True(t, stamped)
	})
}

func TestCooldownRepository_ConcurrentFirstStamp_OnlyOneWins(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB, infrastructure.NewEventDispatcher())
	now := time.Now().UTC()
	window := 10 * time.Second

	// Two transactions race to stamp a user with no cooldowns row. The
	// second blocks on the first's uncommitted insert; once the first
	// commits it must see the fresh stamp and be refused.
	first := factory.Create()
	require.NoError(t, first.Begin(ctx))

	firstStamped, err := first.CooldownRepository().TryStamp(ctx, 42, now, window)
	require.NoError(t, err)
	require.True(t, firstStamped)

	second := factory.Create()
	require.NoError(t, second.Begin(ctx))
	defer second.Rollback()

	var wg sync.WaitGroup
	var secondStamped bool
	var secondErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		secondStamped, secondErr = second.CooldownRepository().TryStamp(ctx, 42, now.Add(time.Millisecond), window)
	}()

	// Let the second transaction reach the row lock before releasing it.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, first.Commit())
	wg.Wait()

	require.NoError(t, secondErr)
	assert.False(t, secondStamped)
}
