// Package storage provides primitives for connecting to and interacting with
// data storage systems. It defines the Storage interface along with a
// PostgreSQL implementation that manages users, the card catalog, per-user
// collection ledger rows, trades and notifications.
//
// Every mutation of a ledger row's amount/waiting counts is a single atomic
// increment-by-delta statement, never a find-then-overwrite, so concurrent
// rolls and trade operations on the same (user, card) pair cannot lose
// updates. Multi-row mutations (roll grants, trade escrow/transfer) run
// inside explicit transactions.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cardex/internal/models"
	"cardex/internal/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors reported by conditional updates. The service layer maps
// them to stable HTTP statuses.
var (
	// ErrNotTradable indicates an escrow attempt on a (user, card) pair with
	// no free copies (amount <= waiting), or no ledger row at all.
	ErrNotTradable = errors.New("storage: card is not tradable for this user")
	// ErrTradeNotPending indicates an accept or decline of a trade that has
	// already been resolved.
	ErrTradeNotPending = errors.New("storage: trade is not pending")
)

//go:generate mockgen -source=postgresql.go -destination=mocks/mock_storage.go -package=mocks

// Storage defines the methods required for data storage operations.
type Storage interface {
	// Close closes the database connection.
	Close()

	// User methods.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	// ClaimRoll atomically stamps the user's last roll date if and only if
	// the previous stamp is absent or older than the cutoff. It reports
	// whether the claim succeeded.
	ClaimRoll(ctx context.Context, userID string, now, cutoff time.Time) (bool, error)

	// Card catalog methods.
	CreateCard(ctx context.Context, card *models.Card) (*models.Card, error)
	GetCards(ctx context.Context) ([]models.Card, error)
	GetCardByID(ctx context.Context, id string) (*models.Card, error)
	GetCardsByLevel(ctx context.Context, level int) ([]models.Card, error)
	DeleteCard(ctx context.Context, id string) error

	// Collection ledger methods.
	GetCollections(ctx context.Context) ([]models.Collection, error)
	GetCollectionByID(ctx context.Context, id string) (*models.Collection, error)
	GetCollectionsByUserID(ctx context.Context, idUser string) ([]models.Collection, error)
	GetTradableByUserID(ctx context.Context, idUser string) ([]models.Collection, error)
	GetCollectionByUserAndCard(ctx context.Context, idUser, idCard string) (*models.Collection, error)
	CreateCollection(ctx context.Context, entry *models.Collection) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id string, amount, waiting int) (*models.Collection, error)
	DeleteCollection(ctx context.Context, id string) error
	// AdjustCollection applies amount/waiting deltas to the (idUser, idCard)
	// row as one atomic upsert, creating the row when absent.
	AdjustCollection(ctx context.Context, idUser, idCard string, amountDelta, waitingDelta int) (*models.Collection, error)
	// GrantCards increments the user's amount for every listed card inside a
	// single transaction and returns the updated ledger rows.
	GrantCards(ctx context.Context, idUser string, cardIDs []string) ([]models.Collection, error)

	// Trade methods.
	CreateTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error)
	GetTrades(ctx context.Context) ([]models.Trade, error)
	GetTradeByID(ctx context.Context, id string) (*models.Trade, error)
	GetTradesByWaitingUser(ctx context.Context, idUser string) ([]models.Trade, error)
	GetTradesBySecondUser(ctx context.Context, idUser string) ([]models.Trade, error)
	AcceptTrade(ctx context.Context, id string) (*models.Trade, error)
	DeclineTrade(ctx context.Context, id string) (*models.Trade, error)

	// Notification methods.
	CreateNotification(ctx context.Context, notif *models.Notification) (*models.Notification, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	GetNotificationByID(ctx context.Context, id string) (*models.Notification, error)
	GetNotificationsByUserID(ctx context.Context, idUser string) ([]models.Notification, error)
	UpdateNotification(ctx context.Context, notif *models.Notification) (*models.Notification, error)
	DeleteNotification(ctx context.Context, id string) error
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB        // Connection to the database.
	log *logger.Logger // Logger for recording events and errors.
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection
// string and logger. It opens the connection and pings the database to ensure
// connectivity.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// newObjectID returns a fresh 24-character hex object id. All entity
// identifiers share this format.
func newObjectID() string {
	return primitive.NewObjectID().Hex()
}
