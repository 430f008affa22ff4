// Package models defines the data structures used throughout the application.
// It includes the persisted entities (users, cards, collection entries, trades,
// notifications) and the request and response payloads of the REST API.
package models

import "time"

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// User represents a registered player.
// The password hash is never serialized; LastRollDate gates the roll mechanic.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Email        string     `json:"email"`
	Firstname    string     `json:"firstname"`
	Lastname     string     `json:"lastname"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Photo        string     `json:"photo,omitempty"`
	LastRollDate *time.Time `json:"lastRollDate,omitempty"`
}

// Card represents one catalog card. Catalog data is static reference data:
// the ledger never mutates it.
type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	Image       string `json:"image"`
}

// Collection represents the ledger row for one (user, card) pair.
// Amount counts owned copies, Waiting counts copies escrowed in open trades.
type Collection struct {
	ID      string `json:"id"`
	IDUser  string `json:"idUser"`
	IDCard  string `json:"idCard"`
	Amount  int    `json:"amount"`
	Waiting int    `json:"waiting"`
}

// Trade represents a two-party card swap offer. IDUserWaiting is the proposer,
// IDUser the counterpart; IDCard is the offered card, IDCardWanted the card
// requested in return.
type Trade struct {
	ID            string    `json:"id"`
	IDUserWaiting string    `json:"idUserWaiting"`
	IDUser        string    `json:"idUser"`
	IDCard        string    `json:"idCard"`
	IDCardWanted  string    `json:"idCardWanted"`
	Accepted      bool      `json:"accepted"`
	CreationTime  time.Time `json:"creationTime"`
}

// Notification represents one inbox entry of a user.
type Notification struct {
	ID           string    `json:"id"`
	IDUser       string    `json:"idUser"`
	Type         string    `json:"type"`
	Content      string    `json:"content"`
	Read         bool      `json:"read"`
	Accepted     bool      `json:"accepted"`
	CreationTime time.Time `json:"creationTime"`
}

// LoginRequest represents the authentication request payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the authentication response payload: the user's
// public fields plus the issued bearer token.
type LoginResponse struct {
	User
	AccessToken string `json:"access_token"`
}

// CreateUserRequest represents the payload for registering a new user.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	BirthDate string `json:"birthDate"`
	Photo     string `json:"photo"`
}

// UpdateUserRequest represents the payload for updating a user.
// Empty fields are left unchanged; a non-empty password is re-hashed.
type UpdateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	BirthDate string `json:"birthDate"`
	Photo     string `json:"photo"`
}

// CreateCardRequest represents the payload for adding a card to the catalog.
type CreateCardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	Image       string `json:"image"`
}

// CreateCollectionRequest represents the payload for creating a ledger row
// directly, outside the roll and trade flows.
type CreateCollectionRequest struct {
	IDUser  string `json:"idUser"`
	IDCard  string `json:"idCard"`
	Amount  int    `json:"amount"`
	Waiting int    `json:"waiting"`
}

// UpdateCollectionRequest represents the payload for overwriting the counts
// of an existing ledger row.
type UpdateCollectionRequest struct {
	Amount  int `json:"amount"`
	Waiting int `json:"waiting"`
}

// CreateTradeRequest represents the payload for proposing a trade.
type CreateTradeRequest struct {
	IDUserWaiting string `json:"idUserWaiting"`
	IDUser        string `json:"idUser"`
	IDCard        string `json:"idCard"`
	IDCardWanted  string `json:"idCardWanted"`
}

// PatchTradeRequest represents the payload resolving a pending trade.
// Accepted true accepts the trade, false declines it.
type PatchTradeRequest struct {
	Accepted *bool `json:"accepted"`
}

// CreateNotificationRequest represents the payload for posting a notification.
type CreateNotificationRequest struct {
	IDUser   string `json:"idUser"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Read     bool   `json:"read"`
	Accepted bool   `json:"accepted"`
}

// PatchNotificationRequest represents the payload for flagging or editing a
// notification. Nil fields are left unchanged.
type PatchNotificationRequest struct {
	Type     *string `json:"type"`
	Content  *string `json:"content"`
	Read     *bool   `json:"read"`
	Accepted *bool   `json:"accepted"`
}
