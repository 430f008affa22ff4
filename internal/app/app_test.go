package app

import (
	"context"
	"database/sql"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardex/internal/models"
	"cardex/internal/pkg/logger"
	"cardex/internal/storage"
)

func newTestApp(t *testing.T, roll RollConfig) (*App, *storage.Memory) {
	t.Helper()

	l, err := logger.CreateLogger("error")
	require.NoError(t, err)

	store := storage.NewMemory()
	appInstance := NewApp(store, l, roll)
	appInstance.rand = rand.New(rand.NewPCG(1, 2))
	return appInstance, store
}

func defaultRollConfig() RollConfig {
	return RollConfig{Cooldown: 24 * time.Hour, CardCount: 10, LevelMin: 1, LevelMax: 5}
}

func seedUser(t *testing.T, appInstance *App, username string) *models.User {
	t.Helper()

	user, err := appInstance.ProcessCreateUser(context.Background(), models.CreateUserRequest{
		Username: username,
		Password: "pass",
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

// seedCatalog creates count cards of every level in [levelMin, levelMax] and
// returns card id -> level.
func seedCatalog(t *testing.T, appInstance *App, levelMin, levelMax, count int) map[string]int {
	t.Helper()

	levels := make(map[string]int)
	for level := levelMin; level <= levelMax; level++ {
		for i := 0; i < count; i++ {
			card, err := appInstance.ProcessCreateCard(context.Background(), models.CreateCardRequest{
				Name:  "card",
				Level: level,
			})
			require.NoError(t, err)
			levels[card.ID] = level
		}
	}
	return levels
}

func TestProcessLogin(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	user := seedUser(t, appInstance, "collector")

	_, err := appInstance.ProcessLogin(ctx, models.LoginRequest{Username: "ghost", Password: "pass"})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = appInstance.ProcessLogin(ctx, models.LoginRequest{Username: "collector", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := appInstance.ProcessLogin(ctx, models.LoginRequest{Username: "collector", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestProcessRoll_GrantsConfiguredCount(t *testing.T) {
	appInstance, store := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	user := seedUser(t, appInstance, "collector")
	levels := seedCatalog(t, appInstance, 1, 5, 3)

	entries, err := appInstance.ProcessRoll(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 10)

	for _, entry := range entries {
		assert.Equal(t, user.ID, entry.IDUser)
		level, known := levels[entry.IDCard]
		require.True(t, known)
		assert.GreaterOrEqual(t, level, 1)
		assert.LessOrEqual(t, level, 5)
	}

	owned, err := store.GetCollectionsByUserID(ctx, user.ID)
	require.NoError(t, err)
	total := 0
	for _, entry := range owned {
		total += entry.Amount
	}
	assert.Equal(t, 10, total)
}

func TestProcessRoll_LevelBounds(t *testing.T) {
	roll := RollConfig{Cooldown: time.Hour, CardCount: 20, LevelMin: 2, LevelMax: 3}
	appInstance, _ := newTestApp(t, roll)
	ctx := context.Background()

	user := seedUser(t, appInstance, "collector")
	levels := seedCatalog(t, appInstance, 1, 5, 2)

	entries, err := appInstance.ProcessRoll(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 20)

	for _, entry := range entries {
		level := levels[entry.IDCard]
		assert.GreaterOrEqual(t, level, 2)
		assert.LessOrEqual(t, level, 3)
	}
}

func TestProcessRoll_CooldownBlocksSecondRoll(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	user := seedUser(t, appInstance, "collector")
	seedCatalog(t, appInstance, 1, 5, 2)

	base := time.Now()
	appInstance.now = func() time.Time { return base }

	_, err := appInstance.ProcessRoll(ctx, user.ID)
	require.NoError(t, err)

	_, err = appInstance.ProcessRoll(ctx, user.ID)
	assert.ErrorIs(t, err, ErrRollOnCooldown)

	appInstance.now = func() time.Time { return base.Add(23 * time.Hour) }
	_, err = appInstance.ProcessRoll(ctx, user.ID)
	assert.ErrorIs(t, err, ErrRollOnCooldown)

	appInstance.now = func() time.Time { return base.Add(25 * time.Hour) }
	_, err = appInstance.ProcessRoll(ctx, user.ID)
	assert.NoError(t, err)
}

func TestProcessRoll_EmptyLevelAbortsWholeRoll(t *testing.T) {
	roll := RollConfig{Cooldown: time.Hour, CardCount: 10, LevelMin: 3, LevelMax: 3}
	appInstance, store := newTestApp(t, roll)
	ctx := context.Background()

	user := seedUser(t, appInstance, "collector")
	seedCatalog(t, appInstance, 1, 2, 2)

	_, err := appInstance.ProcessRoll(ctx, user.ID)
	assert.ErrorIs(t, err, ErrCatalogEmptyForLevel)

	owned, err := store.GetCollectionsByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestProcessRoll_UnknownUser(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())

	_, err := appInstance.ProcessRoll(context.Background(), "64f1c0ffee0ddba11ca7dfff")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProcessGetCardsByLevel_EmptyLevel(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	seedCatalog(t, appInstance, 1, 2, 1)

	_, err := appInstance.ProcessGetCardsByLevel(ctx, 3)
	assert.ErrorIs(t, err, ErrNoCardsForLevel)

	cards, err := appInstance.ProcessGetCardsByLevel(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestProcessCreateCollection_DuplicatePair(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	user := seedUser(t, appInstance, "collector")
	card, err := appInstance.ProcessCreateCard(ctx, models.CreateCardRequest{Name: "card", Level: 1})
	require.NoError(t, err)

	req := models.CreateCollectionRequest{IDUser: user.ID, IDCard: card.ID, Amount: 1}
	_, err = appInstance.ProcessCreateCollection(ctx, req)
	require.NoError(t, err)

	_, err = appInstance.ProcessCreateCollection(ctx, req)
	var pgError *pgconn.PgError
	require.ErrorAs(t, err, &pgError)
	assert.Equal(t, pgerrcode.UniqueViolation, pgError.Code)
	assert.Equal(t, "collections_user_card_key", pgError.ConstraintName)
}

// tradeFixture seeds two users each owning one copy of their own card and
// returns (proposer, counterpart, offered card id, wanted card id).
func tradeFixture(t *testing.T, appInstance *App) (string, string, string, string) {
	t.Helper()
	ctx := context.Background()

	alice := seedUser(t, appInstance, "alice")
	bob := seedUser(t, appInstance, "bob")

	offered, err := appInstance.ProcessCreateCard(ctx, models.CreateCardRequest{Name: "offered", Level: 1})
	require.NoError(t, err)
	wanted, err := appInstance.ProcessCreateCard(ctx, models.CreateCardRequest{Name: "wanted", Level: 1})
	require.NoError(t, err)

	_, err = appInstance.ProcessCreateCollection(ctx, models.CreateCollectionRequest{
		IDUser: alice.ID, IDCard: offered.ID, Amount: 1,
	})
	require.NoError(t, err)
	_, err = appInstance.ProcessCreateCollection(ctx, models.CreateCollectionRequest{
		IDUser: bob.ID, IDCard: wanted.ID, Amount: 1,
	})
	require.NoError(t, err)

	return alice.ID, bob.ID, offered.ID, wanted.ID
}

func TestTradeLifecycle_AcceptSwapsCards(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	aliceID, bobID, offeredID, wantedID := tradeFixture(t, appInstance)

	trade, err := appInstance.ProcessCreateTrade(ctx, models.CreateTradeRequest{
		IDUserWaiting: aliceID,
		IDUser:        bobID,
		IDCard:        offeredID,
		IDCardWanted:  wantedID,
	})
	require.NoError(t, err)
	assert.False(t, trade.Accepted)

	// Both copies are escrowed while the trade is pending.
	entry, err := appInstance.ProcessGetCollectionByUserAndCard(ctx, aliceID, offeredID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Amount)
	assert.Equal(t, 1, entry.Waiting)

	tradable, err := appInstance.ProcessGetTradableByUser(ctx, aliceID)
	require.NoError(t, err)
	assert.Empty(t, tradable)

	accepted, err := appInstance.ProcessAcceptTrade(ctx, trade.ID)
	require.NoError(t, err)
	assert.True(t, accepted.Accepted)

	// The offered card moved to bob, the wanted card to alice; nothing was
	// duplicated.
	entry, err = appInstance.ProcessGetCollectionByUserAndCard(ctx, aliceID, offeredID)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Amount)
	assert.Equal(t, 0, entry.Waiting)

	entry, err = appInstance.ProcessGetCollectionByUserAndCard(ctx, aliceID, wantedID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Amount)

	entry, err = appInstance.ProcessGetCollectionByUserAndCard(ctx, bobID, offeredID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Amount)

	entry, err = appInstance.ProcessGetCollectionByUserAndCard(ctx, bobID, wantedID)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Amount)

	_, err = appInstance.ProcessAcceptTrade(ctx, trade.ID)
	assert.ErrorIs(t, err, storage.ErrTradeNotPending)

	// The counterpart was told about the offer, the proposer about the accept.
	bobInbox, err := appInstance.ProcessGetNotificationsByUser(ctx, bobID)
	require.NoError(t, err)
	require.Len(t, bobInbox, 1)
	assert.Equal(t, "trade_offer", bobInbox[0].Type)

	aliceInbox, err := appInstance.ProcessGetNotificationsByUser(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, aliceInbox, 1)
	assert.Equal(t, "trade_accepted", aliceInbox[0].Type)
}

func TestTradeDecline_ReleasesEscrow(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	aliceID, bobID, offeredID, wantedID := tradeFixture(t, appInstance)

	trade, err := appInstance.ProcessCreateTrade(ctx, models.CreateTradeRequest{
		IDUserWaiting: aliceID,
		IDUser:        bobID,
		IDCard:        offeredID,
		IDCardWanted:  wantedID,
	})
	require.NoError(t, err)

	declined, err := appInstance.ProcessDeclineTrade(ctx, trade.ID)
	require.NoError(t, err)
	assert.False(t, declined.Accepted)

	_, err = appInstance.ProcessGetTrade(ctx, trade.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	entry, err := appInstance.ProcessGetCollectionByUserAndCard(ctx, aliceID, offeredID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Amount)
	assert.Equal(t, 0, entry.Waiting)

	entry, err = appInstance.ProcessGetCollectionByUserAndCard(ctx, bobID, wantedID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Amount)
	assert.Equal(t, 0, entry.Waiting)

	aliceInbox, err := appInstance.ProcessGetNotificationsByUser(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, aliceInbox, 1)
	assert.Equal(t, "trade_declined", aliceInbox[0].Type)
}

func TestProcessCreateTrade_RequiresFreeCopy(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	aliceID, bobID, offeredID, wantedID := tradeFixture(t, appInstance)

	// First trade escrows alice's only copy; a second offer of the same card
	// must be rejected.
	_, err := appInstance.ProcessCreateTrade(ctx, models.CreateTradeRequest{
		IDUserWaiting: aliceID,
		IDUser:        bobID,
		IDCard:        offeredID,
		IDCardWanted:  wantedID,
	})
	require.NoError(t, err)

	_, err = appInstance.ProcessCreateTrade(ctx, models.CreateTradeRequest{
		IDUserWaiting: aliceID,
		IDUser:        bobID,
		IDCard:        offeredID,
		IDCardWanted:  wantedID,
	})
	assert.ErrorIs(t, err, storage.ErrNotTradable)
}

func TestProcessUpdateUser_KeepsUnsetFields(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	user := seedUser(t, appInstance, "collector")

	updated, err := appInstance.ProcessUpdateUser(ctx, user.ID, models.UpdateUserRequest{
		Firstname: "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, "collector", updated.Username)
	assert.Equal(t, "Ada", updated.Firstname)
	assert.Equal(t, user.Email, updated.Email)

	_, err = appInstance.ProcessUpdateUser(ctx, "64f1c0ffee0ddba11ca7dfff", models.UpdateUserRequest{})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProcessCreateUser_Validation(t *testing.T) {
	appInstance, _ := newTestApp(t, defaultRollConfig())
	ctx := context.Background()

	_, err := appInstance.ProcessCreateUser(ctx, models.CreateUserRequest{Username: "x"})
	assert.ErrorIs(t, err, ErrMissingUserFields)

	_, err = appInstance.ProcessCreateUser(ctx, models.CreateUserRequest{
		Username: "x", Password: "p", Email: "x@example.com", BirthDate: "not-a-date",
	})
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	user, err := appInstance.ProcessCreateUser(ctx, models.CreateUserRequest{
		Username: "x", Password: "p", Email: "x@example.com", BirthDate: "1991-05-23",
	})
	require.NoError(t, err)
	require.NotNil(t, user.BirthDate)
	assert.Equal(t, 1991, user.BirthDate.Year())
	assert.NotEqual(t, "p", user.PasswordHash)

	_, err = appInstance.ProcessCreateUser(ctx, models.CreateUserRequest{
		Username: "x", Password: "p", Email: "other@example.com",
	})
	var pgError *pgconn.PgError
	require.True(t, errors.As(err, &pgError))
	assert.Equal(t, pgerrcode.UniqueViolation, pgError.Code)
	assert.Equal(t, "users_username_key", pgError.ConstraintName)
}
