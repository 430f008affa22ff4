// Package service contains HTTP handler implementations for the card game API
// endpoints. It orchestrates request parsing, calls the underlying business
// logic in the app package, handles errors (including database-specific
// errors), and writes appropriate HTTP responses.
package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"time"

	"cardex/internal/app"
	"cardex/internal/models"
	"cardex/internal/pkg/logger"
	"cardex/internal/storage"

	"github.com/go-chi/chi/v5"
	pgconn "github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	pgx_pgconn "github.com/jackc/pgx/v5/pgconn"
)

const requestTimeout = 10 * time.Second

// objectIDPattern matches the 24-character hex ids used for every entity.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

// readJSONBody reads and unmarshals the request body into dst. On failure it
// writes a 400 response and reports false.
func readJSONBody(res http.ResponseWriter, req *http.Request, dst any) bool {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return false
	}
	if err = json.Unmarshal(requestBody, dst); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// objectIDParam extracts a URL parameter and validates it as a 24-hex object
// id. On failure it writes a 400 response and reports false.
func objectIDParam(res http.ResponseWriter, req *http.Request, name string) (string, bool) {
	id := chi.URLParam(req, name)
	if !objectIDPattern.MatchString(id) {
		writeErrorResponse(res, "invalid "+name+" provided", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

// writeJSONResponse marshals payload and writes it with the given status.
func writeJSONResponse(res http.ResponseWriter, payload any, statusCode int) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}

// pgErrorOf extracts the SQLSTATE code and constraint name from a database
// error, regardless of which pgconn version produced it.
func pgErrorOf(err error) (code, constraint string, ok bool) {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code, pgError.ConstraintName, true
	}
	var pgxError *pgx_pgconn.PgError
	if errors.As(err, &pgxError) {
		return pgxError.Code, pgxError.ConstraintName, true
	}
	return "", "", false
}

// writeProcessError maps an app or storage error to its HTTP status.
// notFoundInfo is the message written when the underlying entity is missing.
func writeProcessError(res http.ResponseWriter, err error, notFoundInfo string) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeErrorResponse(res, notFoundInfo, http.StatusNotFound)
	case errors.Is(err, app.ErrNoCardsForLevel):
		writeErrorResponse(res, "no cards exist for the provided level", http.StatusNotFound)
	case errors.Is(err, app.ErrInvalidCredentials):
		writeErrorResponse(res, "incorrect password", http.StatusUnauthorized)
	case errors.Is(err, app.ErrRollOnCooldown):
		writeErrorResponse(res, "roll is still on cooldown", http.StatusTeapot)
	case errors.Is(err, app.ErrCatalogEmptyForLevel):
		writeErrorResponse(res, "catalog has no cards for a drawn level", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrNotTradable):
		writeErrorResponse(res, "not enough free copies of the card to trade", http.StatusConflict)
	case errors.Is(err, storage.ErrTradeNotPending):
		writeErrorResponse(res, "trade has already been resolved", http.StatusConflict)
	case errors.Is(err, app.ErrMissingUsernameOrPassword),
		errors.Is(err, app.ErrMissingUserFields),
		errors.Is(err, app.ErrInvalidBirthDate),
		errors.Is(err, app.ErrMissingCardFields),
		errors.Is(err, app.ErrInvalidCardLevel),
		errors.Is(err, app.ErrMissingCollectionFields),
		errors.Is(err, app.ErrMissingTradeFields),
		errors.Is(err, app.ErrMissingNotificationFields):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	default:
		writePgError(res, err)
	}
}

// writePgError maps database constraint violations to stable statuses and
// falls back to 422 for other storage failures.
func writePgError(res http.ResponseWriter, err error) {
	code, constraint, ok := pgErrorOf(err)
	if !ok {
		writeErrorResponse(res, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	switch code {
	case pgerrcode.UniqueViolation:
		switch constraint {
		case "users_username_key":
			writeErrorResponse(res, "user with provided username already exists", http.StatusConflict)
		case "users_email_key":
			writeErrorResponse(res, "user with provided email already exists", http.StatusConflict)
		case "collections_user_card_key":
			writeErrorResponse(res, "collection entry for this user and card already exists", http.StatusConflict)
		default:
			writeErrorResponse(res, "duplicate value", http.StatusConflict)
		}
	case pgerrcode.CheckViolation:
		switch constraint {
		case "collections_amount_check":
			writeErrorResponse(res, "card amount cannot go below zero", http.StatusConflict)
		case "collections_waiting_check":
			writeErrorResponse(res, "waiting count cannot go below zero", http.StatusConflict)
		case "collections_waiting_le_amount_check":
			writeErrorResponse(res, "waiting count cannot exceed the owned amount", http.StatusConflict)
		case "cards_level_check":
			writeErrorResponse(res, "card level out of range", http.StatusBadRequest)
		default:
			writeErrorResponse(res, "operation violates a data constraint", http.StatusUnprocessableEntity)
		}
	default:
		writeErrorResponse(res, err.Error(), http.StatusUnprocessableEntity)
	}
}
