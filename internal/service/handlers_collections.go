package service

import (
	"context"
	"net/http"

	"cardex/internal/models"
)

// getCollectionsHandler returns every ledger entry.
func (handlers *handlers) getCollectionsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	entries, err := handlers.app.ProcessGetCollections(ctx)
	if err != nil {
		writeProcessError(res, err, "no collection entries exist")
		return
	}

	writeJSONResponse(res, entries, http.StatusOK)
}

// getCollectionHandler returns one ledger entry by id.
func (handlers *handlers) getCollectionHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	entry, err := handlers.app.ProcessGetCollection(ctx, id)
	if err != nil {
		writeProcessError(res, err, "collection entry with provided id does not exist")
		return
	}

	writeJSONResponse(res, entry, http.StatusOK)
}

// getCollectionsByUserHandler returns all ledger entries of one user.
func (handlers *handlers) getCollectionsByUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	idUser, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	entries, err := handlers.app.ProcessGetCollectionsByUser(ctx, idUser)
	if err != nil {
		writeProcessError(res, err, "user with provided id has no collection entries")
		return
	}

	writeJSONResponse(res, entries, http.StatusOK)
}

// getTradableByUserHandler returns the user's entries with free copies.
func (handlers *handlers) getTradableByUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	idUser, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	entries, err := handlers.app.ProcessGetTradableByUser(ctx, idUser)
	if err != nil {
		writeProcessError(res, err, "user with provided id has no tradable entries")
		return
	}

	writeJSONResponse(res, entries, http.StatusOK)
}

// getCollectionByUserAndCardHandler returns the ledger entry of one
// (user, card) pair.
func (handlers *handlers) getCollectionByUserAndCardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	idUser, ok := objectIDParam(res, req, "idUser")
	if !ok {
		return
	}
	idCard, ok := objectIDParam(res, req, "idCard")
	if !ok {
		return
	}

	entry, err := handlers.app.ProcessGetCollectionByUserAndCard(ctx, idUser, idCard)
	if err != nil {
		writeProcessError(res, err, "collection entry for provided user and card does not exist")
		return
	}

	writeJSONResponse(res, entry, http.StatusOK)
}

// createCollectionHandler creates a ledger entry directly.
func (handlers *handlers) createCollectionHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var createRequest models.CreateCollectionRequest
	if !readJSONBody(res, req, &createRequest) {
		return
	}

	entry, err := handlers.app.ProcessCreateCollection(ctx, createRequest)
	if err != nil {
		writeProcessError(res, err, "collection entry does not exist")
		return
	}

	writeJSONResponse(res, entry, http.StatusCreated)
}

// updateCollectionHandler overwrites the counts of one ledger entry.
func (handlers *handlers) updateCollectionHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	var updateRequest models.UpdateCollectionRequest
	if !readJSONBody(res, req, &updateRequest) {
		return
	}

	entry, err := handlers.app.ProcessUpdateCollection(ctx, id, updateRequest)
	if err != nil {
		writeProcessError(res, err, "collection entry with provided id does not exist")
		return
	}

	writeJSONResponse(res, entry, http.StatusOK)
}

// deleteCollectionHandler removes one ledger entry.
func (handlers *handlers) deleteCollectionHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	if err := handlers.app.ProcessDeleteCollection(ctx, id); err != nil {
		writeProcessError(res, err, "collection entry with provided id does not exist")
		return
	}

	res.WriteHeader(http.StatusOK)
}
