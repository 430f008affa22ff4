// Package app provides the core business logic for the card game backend.
// It handles user accounts and authentication, the card catalog, the roll
// mechanic, the per-user collection ledger, trades and notifications.
// The package integrates with the storage layer for data persistence and uses
// the auth package for token generation. Logging functionality is provided via
// the logger package.
package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"cardex/internal/models"
	"cardex/internal/pkg/auth"
	"cardex/internal/pkg/logger"
	"cardex/internal/pkg/security"
	"cardex/internal/storage"
)

// Predefined errors for invalid or rejected requests. The service layer maps
// each of them to a fixed HTTP status.
var (
	// ErrMissingUsernameOrPassword indicates that either the username or password is not provided.
	ErrMissingUsernameOrPassword = errors.New("app: missing username or password")
	// ErrInvalidCredentials indicates a wrong password for an existing user.
	ErrInvalidCredentials = errors.New("app: invalid credentials")
	// ErrMissingUserFields indicates that a required user field is not provided.
	ErrMissingUserFields = errors.New("app: missing username, password or email")
	// ErrInvalidBirthDate indicates an unparseable birth date.
	ErrInvalidBirthDate = errors.New("app: invalid birth date")
	// ErrMissingCardFields indicates that a required card field is not provided.
	ErrMissingCardFields = errors.New("app: missing card name")
	// ErrInvalidCardLevel indicates a card level outside the supported range.
	ErrInvalidCardLevel = errors.New("app: card level out of range")
	// ErrMissingCollectionFields indicates that a required collection field is not provided.
	ErrMissingCollectionFields = errors.New("app: missing user or card id")
	// ErrMissingTradeFields indicates that a required trade field is not provided.
	ErrMissingTradeFields = errors.New("app: missing trade participants or cards")
	// ErrMissingNotificationFields indicates that a required notification field is not provided.
	ErrMissingNotificationFields = errors.New("app: missing notification user or type")
	// ErrRollOnCooldown indicates a roll attempt inside the cooldown window.
	ErrRollOnCooldown = errors.New("app: roll is on cooldown")
	// ErrNoCardsForLevel indicates that the catalog holds no cards of the
	// requested level.
	ErrNoCardsForLevel = errors.New("app: no cards for level")
	// ErrCatalogEmptyForLevel indicates that a roll drew a level the catalog
	// cannot serve; the whole roll is aborted.
	ErrCatalogEmptyForLevel = errors.New("app: catalog is empty for drawn level")
)

// RollConfig holds the parameters of the roll mechanic.
type RollConfig struct {
	Cooldown  time.Duration // Minimum interval between two rolls of one user.
	CardCount int           // Number of cards granted per roll.
	LevelMin  int           // Lowest level drawn.
	LevelMax  int           // Highest level drawn.
}

// App encapsulates the application logic and dependencies required to process requests.
// It interacts with the storage layer and uses a logger for error and activity logging.
type App struct {
	db   storage.Storage // Database storage layer for persistent data operations.
	log  *logger.Logger  // Logger for logging application events and errors.
	roll RollConfig      // Roll mechanic parameters.
	rand *rand.Rand      // Source of roll randomness, replaceable in tests.
	now  func() time.Time
}

// NewApp creates and returns a new instance of App with the provided storage,
// logger and roll configuration.
func NewApp(db storage.Storage, log *logger.Logger, roll RollConfig) *App {
	return &App{
		db:   db,
		log:  log,
		roll: roll,
		rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:  time.Now,
	}
}

// ProcessLogin verifies the user's credentials and issues a bearer token.
// An unknown username surfaces as sql.ErrNoRows from the storage layer; a
// wrong password returns ErrInvalidCredentials.
func (app *App) ProcessLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingUsernameOrPassword
	}

	user, err := app.db.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := security.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{User: *user, AccessToken: token}, nil
}
