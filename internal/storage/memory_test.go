package storage

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardex/internal/models"
)

func TestMemoryAdjustCollection_ConcurrentDeltasConverge(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	idUser := newObjectID()
	idCard := newObjectID()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.AdjustCollection(ctx, idUser, idCard, 1, 0)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entry, err := store.GetCollectionByUserAndCard(ctx, idUser, idCard)
	require.NoError(t, err)
	assert.Equal(t, workers, entry.Amount)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.AdjustCollection(ctx, idUser, idCard, -1, 0)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entry, err = store.GetCollectionByUserAndCard(ctx, idUser, idCard)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Amount)
}

func TestMemoryAdjustCollection_CheckConstraints(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	idUser := newObjectID()
	idCard := newObjectID()

	_, err := store.AdjustCollection(ctx, idUser, idCard, -1, 0)
	var pgError *pgconn.PgError
	require.ErrorAs(t, err, &pgError)
	assert.Equal(t, pgerrcode.CheckViolation, pgError.Code)
	assert.Equal(t, "collections_amount_check", pgError.ConstraintName)

	_, err = store.AdjustCollection(ctx, idUser, idCard, 1, 0)
	require.NoError(t, err)

	_, err = store.AdjustCollection(ctx, idUser, idCard, 0, -1)
	require.ErrorAs(t, err, &pgError)
	assert.Equal(t, "collections_waiting_check", pgError.ConstraintName)

	_, err = store.AdjustCollection(ctx, idUser, idCard, 0, 2)
	require.ErrorAs(t, err, &pgError)
	assert.Equal(t, "collections_waiting_le_amount_check", pgError.ConstraintName)
}

func TestMemoryClaimRoll_SingleWinner(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, &models.User{Username: "collector", Email: "c@example.com"})
	require.NoError(t, err)

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ok, err := store.ClaimRoll(ctx, user.ID, now, cutoff)
			assert.NoError(t, err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for ok := range results {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	ok, err := store.ClaimRoll(ctx, user.ID, now.Add(25*time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCreateTrade_SharedRowEscrowsSequentially(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, &models.User{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)
	card, err := store.CreateCard(ctx, &models.Card{Name: "card", Level: 1})
	require.NoError(t, err)

	_, err = store.AdjustCollection(ctx, alice.ID, card.ID, 1, 0)
	require.NoError(t, err)

	// Both legs land on the same (user, card) row; the single free copy
	// covers the first leg and the second must see waiting already taken.
	selfTrade := &models.Trade{
		IDUserWaiting: alice.ID,
		IDUser:        alice.ID,
		IDCard:        card.ID,
		IDCardWanted:  card.ID,
	}
	_, err = store.CreateTrade(ctx, selfTrade)
	assert.ErrorIs(t, err, ErrNotTradable)

	entry, err := store.GetCollectionByUserAndCard(ctx, alice.ID, card.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Amount)
	assert.Equal(t, 0, entry.Waiting)

	_, err = store.AdjustCollection(ctx, alice.ID, card.ID, 1, 0)
	require.NoError(t, err)

	_, err = store.CreateTrade(ctx, selfTrade)
	require.NoError(t, err)

	entry, err = store.GetCollectionByUserAndCard(ctx, alice.ID, card.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Amount)
	assert.Equal(t, 2, entry.Waiting)
}

func TestMemoryDeclineTrade_OnlyPendingReleasesEscrow(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, &models.User{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, &models.User{Username: "bob", Email: "b@example.com"})
	require.NoError(t, err)

	offered, err := store.CreateCard(ctx, &models.Card{Name: "offered", Level: 1})
	require.NoError(t, err)
	wanted, err := store.CreateCard(ctx, &models.Card{Name: "wanted", Level: 1})
	require.NoError(t, err)

	_, err = store.AdjustCollection(ctx, alice.ID, offered.ID, 1, 0)
	require.NoError(t, err)
	_, err = store.AdjustCollection(ctx, bob.ID, wanted.ID, 1, 0)
	require.NoError(t, err)

	trade, err := store.CreateTrade(ctx, &models.Trade{
		IDUserWaiting: alice.ID,
		IDUser:        bob.ID,
		IDCard:        offered.ID,
		IDCardWanted:  wanted.ID,
	})
	require.NoError(t, err)

	accepted, err := store.AcceptTrade(ctx, trade.ID)
	require.NoError(t, err)
	require.True(t, accepted.Accepted)

	// Deleting an accepted trade removes only the record; the swapped
	// ledger entries stay untouched.
	_, err = store.DeclineTrade(ctx, trade.ID)
	require.NoError(t, err)

	entry, err := store.GetCollectionByUserAndCard(ctx, bob.ID, offered.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Amount)
	assert.Equal(t, 0, entry.Waiting)

	_, err = store.DeclineTrade(ctx, trade.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
