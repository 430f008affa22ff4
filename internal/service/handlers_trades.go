package service

import (
	"context"
	"net/http"

	"cardex/internal/models"
)

// createTradeHandler proposes a trade, escrowing one copy on each side.
func (handlers *handlers) createTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var createRequest models.CreateTradeRequest
	if !readJSONBody(res, req, &createRequest) {
		return
	}

	trade, err := handlers.app.ProcessCreateTrade(ctx, createRequest)
	if err != nil {
		writeProcessError(res, err, "trade does not exist")
		return
	}

	writeJSONResponse(res, trade, http.StatusCreated)
}

// getTradesHandler returns every trade.
func (handlers *handlers) getTradesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	trades, err := handlers.app.ProcessGetTrades(ctx)
	if err != nil {
		writeProcessError(res, err, "no trades exist")
		return
	}

	writeJSONResponse(res, trades, http.StatusOK)
}

// getTradeHandler returns one trade by id.
func (handlers *handlers) getTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	trade, err := handlers.app.ProcessGetTrade(ctx, id)
	if err != nil {
		writeProcessError(res, err, "trade with provided id does not exist")
		return
	}

	writeJSONResponse(res, trade, http.StatusOK)
}

// getTradesByWaitingUserHandler returns the trades proposed by one user.
func (handlers *handlers) getTradesByWaitingUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	idUser, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	trades, err := handlers.app.ProcessGetTradesByWaitingUser(ctx, idUser)
	if err != nil {
		writeProcessError(res, err, "user with provided id has no proposed trades")
		return
	}

	writeJSONResponse(res, trades, http.StatusOK)
}

// getTradesBySecondUserHandler returns the trades where one user is the
// counterpart.
func (handlers *handlers) getTradesBySecondUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	idUser, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	trades, err := handlers.app.ProcessGetTradesBySecondUser(ctx, idUser)
	if err != nil {
		writeProcessError(res, err, "user with provided id has no received trades")
		return
	}

	writeJSONResponse(res, trades, http.StatusOK)
}

// patchTradeHandler resolves a pending trade: accepted true swaps the cards,
// accepted false declines and releases the escrow.
func (handlers *handlers) patchTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	var patchRequest models.PatchTradeRequest
	if !readJSONBody(res, req, &patchRequest) {
		return
	}
	if patchRequest.Accepted == nil {
		writeErrorResponse(res, "missing accepted field", http.StatusBadRequest)
		return
	}

	var trade *models.Trade
	var err error
	if *patchRequest.Accepted {
		trade, err = handlers.app.ProcessAcceptTrade(ctx, id)
	} else {
		trade, err = handlers.app.ProcessDeclineTrade(ctx, id)
	}
	if err != nil {
		writeProcessError(res, err, "trade with provided id does not exist")
		return
	}

	writeJSONResponse(res, trade, http.StatusOK)
}

// deleteTradeHandler withdraws a trade; a still-pending trade has its
// escrowed copies released first.
func (handlers *handlers) deleteTradeHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	if _, err := handlers.app.ProcessDeclineTrade(ctx, id); err != nil {
		writeProcessError(res, err, "trade with provided id does not exist")
		return
	}

	res.WriteHeader(http.StatusOK)
}
