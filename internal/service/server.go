package service

import (
	"cardex/internal/app"
	"cardex/internal/pkg/auth"
	"cardex/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, and a logger for event and error logging.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// It applies logging middleware globally, and JWT authentication middleware for protected routes.
// Reads, user registration, card creation and the roll itself are public; every
// other mutation requires a bearer token.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())

	router.Group(func(r chi.Router) {
		r.Post("/auth/login", service.handlers.loginHandler)

		r.Post("/users", service.handlers.createUserHandler)
		r.Get("/users/{id}", service.handlers.getUserHandler)

		r.Post("/cards", service.handlers.createCardHandler)
		r.Get("/cards", service.handlers.getCardsHandler)
		r.Get("/cards/{id}", service.handlers.getCardHandler)
		r.Get("/cards/level/{level}", service.handlers.getCardsByLevelHandler)
		r.Put("/cards/user/{id}/roll", service.handlers.rollCardsHandler)

		r.Get("/collections", service.handlers.getCollectionsHandler)
		r.Get("/collections/{id}", service.handlers.getCollectionHandler)
		r.Get("/collections/users/{id}", service.handlers.getCollectionsByUserHandler)
		r.Get("/collections/users/tradable/{id}", service.handlers.getTradableByUserHandler)
		r.Get("/collections/{idUser}/{idCard}", service.handlers.getCollectionByUserAndCardHandler)

		r.Get("/trades", service.handlers.getTradesHandler)
		r.Get("/trades/{id}", service.handlers.getTradeHandler)
		r.Get("/trades/users/waiting/{id}", service.handlers.getTradesByWaitingUserHandler)
		r.Get("/trades/users/second/{id}", service.handlers.getTradesBySecondUserHandler)

		r.Get("/notifications", service.handlers.getNotificationsHandler)
		r.Get("/notifications/{id}", service.handlers.getNotificationHandler)
		r.Get("/notifications/users/{id}", service.handlers.getNotificationsByUserHandler)
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())

		r.Put("/users/{id}", service.handlers.updateUserHandler)
		r.Delete("/users/{id}", service.handlers.deleteUserHandler)

		r.Delete("/cards/{id}", service.handlers.deleteCardHandler)

		r.Post("/collections", service.handlers.createCollectionHandler)
		r.Put("/collections/{id}", service.handlers.updateCollectionHandler)
		r.Delete("/collections/{id}", service.handlers.deleteCollectionHandler)

		r.Post("/trades", service.handlers.createTradeHandler)
		r.Patch("/trades/{id}", service.handlers.patchTradeHandler)
		r.Delete("/trades/{id}", service.handlers.deleteTradeHandler)

		r.Post("/notifications", service.handlers.createNotificationHandler)
		r.Patch("/notifications/{id}", service.handlers.patchNotificationHandler)
		r.Delete("/notifications/{id}", service.handlers.deleteNotificationHandler)
	})

	return router
}
