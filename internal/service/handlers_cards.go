package service

import (
	"context"
	"net/http"
	"strconv"

	"cardex/internal/models"

	"github.com/go-chi/chi/v5"
)

// createCardHandler adds a card to the catalog.
func (handlers *handlers) createCardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var createRequest models.CreateCardRequest
	if !readJSONBody(res, req, &createRequest) {
		return
	}

	card, err := handlers.app.ProcessCreateCard(ctx, createRequest)
	if err != nil {
		writeProcessError(res, err, "card does not exist")
		return
	}

	writeJSONResponse(res, card, http.StatusCreated)
}

// getCardsHandler returns the full catalog.
func (handlers *handlers) getCardsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	cards, err := handlers.app.ProcessGetCards(ctx)
	if err != nil {
		writeProcessError(res, err, "no cards exist")
		return
	}

	writeJSONResponse(res, cards, http.StatusOK)
}

// getCardHandler returns one card by id.
func (handlers *handlers) getCardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	card, err := handlers.app.ProcessGetCard(ctx, id)
	if err != nil {
		writeProcessError(res, err, "card with provided id does not exist")
		return
	}

	writeJSONResponse(res, card, http.StatusOK)
}

// getCardsByLevelHandler returns the cards of one level, 404 when the level
// has none.
func (handlers *handlers) getCardsByLevelHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	level, err := strconv.Atoi(chi.URLParam(req, "level"))
	if err != nil {
		writeErrorResponse(res, "invalid level provided", http.StatusBadRequest)
		return
	}

	cards, err := handlers.app.ProcessGetCardsByLevel(ctx, level)
	if err != nil {
		writeProcessError(res, err, "no cards exist for the provided level")
		return
	}

	writeJSONResponse(res, cards, http.StatusOK)
}

// deleteCardHandler removes a card from the catalog.
func (handlers *handlers) deleteCardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	if err := handlers.app.ProcessDeleteCard(ctx, id); err != nil {
		writeProcessError(res, err, "card with provided id does not exist")
		return
	}

	res.WriteHeader(http.StatusOK)
}

// rollCardsHandler performs one roll for the user and returns the updated
// collection entries.
func (handlers *handlers) rollCardsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	entries, err := handlers.app.ProcessRoll(ctx, userID)
	if err != nil {
		writeProcessError(res, err, "user with provided id does not exist")
		return
	}

	writeJSONResponse(res, entries, http.StatusOK)
}
