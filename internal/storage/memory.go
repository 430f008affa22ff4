package storage

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"cardex/internal/models"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

// Memory is an in-process Storage implementation backed by maps. It enforces
// the same uniqueness and check constraints as the PostgreSQL schema and
// reports violations with the same error codes, so the layers above behave
// identically against either implementation. A single mutex makes every
// operation atomic, mirroring the per-statement atomicity of the SQL
// implementation.
type Memory struct {
	mu            sync.Mutex
	users         map[string]*models.User
	cards         map[string]*models.Card
	collections   map[string]*models.Collection
	trades        map[string]*models.Trade
	notifications map[string]*models.Notification
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:         make(map[string]*models.User),
		cards:         make(map[string]*models.Card),
		collections:   make(map[string]*models.Collection),
		trades:        make(map[string]*models.Trade),
		notifications: make(map[string]*models.Notification),
	}
}

// Close implements Storage; there is nothing to release.
func (m *Memory) Close() {}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

func checkViolation(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: constraint}
}

// CreateUser registers a user, enforcing the unique username and email
// constraints.
func (m *Memory) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, uniqueViolation("users_username_key")
		}
		if u.Email == user.Email {
			return nil, uniqueViolation("users_email_key")
		}
	}

	user.ID = newObjectID()
	stored := *user
	m.users[user.ID] = &stored
	return user, nil
}

func (m *Memory) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *Memory) UpdateUser(_ context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[user.ID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	for id, u := range m.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return nil, uniqueViolation("users_username_key")
		}
		if u.Email == user.Email {
			return nil, uniqueViolation("users_email_key")
		}
	}

	user.LastRollDate = stored.LastRollDate
	updated := *user
	m.users[user.ID] = &updated
	copied := updated
	return &copied, nil
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.users, id)
	return nil
}

// ClaimRoll stamps the user's last roll date under the store lock, so two
// concurrent claims can never both succeed inside one cooldown window.
func (m *Memory) ClaimRoll(_ context.Context, userID string, now, cutoff time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return false, nil
	}
	if user.LastRollDate != nil && !user.LastRollDate.Before(cutoff) {
		return false, nil
	}
	stamp := now
	user.LastRollDate = &stamp
	return true, nil
}

func (m *Memory) CreateCard(_ context.Context, card *models.Card) (*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if card.Level < 1 || card.Level > 5 {
		return nil, checkViolation("cards_level_check")
	}

	card.ID = newObjectID()
	stored := *card
	m.cards[card.ID] = &stored
	return card, nil
}

func (m *Memory) GetCards(_ context.Context) ([]models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cards := make([]models.Card, 0, len(m.cards))
	for _, card := range m.cards {
		cards = append(cards, *card)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

func (m *Memory) GetCardByID(_ context.Context, id string) (*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *card
	return &copied, nil
}

func (m *Memory) GetCardsByLevel(_ context.Context, level int) ([]models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cards := make([]models.Card, 0)
	for _, card := range m.cards {
		if card.Level == level {
			cards = append(cards, *card)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

func (m *Memory) DeleteCard(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.cards, id)
	return nil
}

func (m *Memory) GetCollections(_ context.Context) ([]models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collectionsWhere(func(*models.Collection) bool { return true }), nil
}

func (m *Memory) GetCollectionByID(_ context.Context, id string) (*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.collections[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *entry
	return &copied, nil
}

func (m *Memory) GetCollectionsByUserID(_ context.Context, idUser string) ([]models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collectionsWhere(func(c *models.Collection) bool { return c.IDUser == idUser }), nil
}

func (m *Memory) GetTradableByUserID(_ context.Context, idUser string) ([]models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collectionsWhere(func(c *models.Collection) bool {
		return c.IDUser == idUser && c.Amount > c.Waiting
	}), nil
}

func (m *Memory) GetCollectionByUserAndCard(_ context.Context, idUser, idCard string) (*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.pairLocked(idUser, idCard)
	if entry == nil {
		return nil, sql.ErrNoRows
	}
	copied := *entry
	return &copied, nil
}

func (m *Memory) CreateCollection(_ context.Context, entry *models.Collection) (*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pairLocked(entry.IDUser, entry.IDCard) != nil {
		return nil, uniqueViolation("collections_user_card_key")
	}
	if err := checkCounts(entry.Amount, entry.Waiting); err != nil {
		return nil, err
	}

	entry.ID = newObjectID()
	stored := *entry
	m.collections[entry.ID] = &stored
	return entry, nil
}

func (m *Memory) UpdateCollection(_ context.Context, id string, amount, waiting int) (*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.collections[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if err := checkCounts(amount, waiting); err != nil {
		return nil, err
	}

	entry.Amount = amount
	entry.Waiting = waiting
	copied := *entry
	return &copied, nil
}

func (m *Memory) DeleteCollection(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.collections, id)
	return nil
}

// AdjustCollection applies deltas to one (user, card) pair atomically under
// the store lock, creating the row when absent, exactly like the SQL upsert.
func (m *Memory) AdjustCollection(_ context.Context, idUser, idCard string, amountDelta, waitingDelta int) (*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.adjustLocked(idUser, idCard, amountDelta, waitingDelta)
}

func (m *Memory) GrantCards(_ context.Context, idUser string, cardIDs []string) ([]models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]models.Collection, 0, len(cardIDs))
	for _, cardID := range cardIDs {
		entry, err := m.adjustLocked(idUser, cardID, 1, 0)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (m *Memory) CreateTrade(_ context.Context, trade *models.Trade) (*models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Legs run in order with the guard re-read between them, matching the
	// sequential escrow updates; a trade whose legs land on the same ledger
	// row cannot escrow one copy twice.
	proposer := m.pairLocked(trade.IDUserWaiting, trade.IDCard)
	if proposer == nil || proposer.Amount <= proposer.Waiting {
		return nil, ErrNotTradable
	}
	proposer.Waiting++

	counterpart := m.pairLocked(trade.IDUser, trade.IDCardWanted)
	if counterpart == nil || counterpart.Amount <= counterpart.Waiting {
		proposer.Waiting--
		return nil, ErrNotTradable
	}
	counterpart.Waiting++

	trade.ID = newObjectID()
	trade.Accepted = false
	trade.CreationTime = time.Now()
	stored := *trade
	m.trades[trade.ID] = &stored
	return trade, nil
}

func (m *Memory) GetTrades(_ context.Context) ([]models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tradesWhere(func(*models.Trade) bool { return true }), nil
}

func (m *Memory) GetTradeByID(_ context.Context, id string) (*models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trade, ok := m.trades[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *trade
	return &copied, nil
}

func (m *Memory) GetTradesByWaitingUser(_ context.Context, idUser string) ([]models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tradesWhere(func(t *models.Trade) bool { return t.IDUserWaiting == idUser }), nil
}

func (m *Memory) GetTradesBySecondUser(_ context.Context, idUser string) ([]models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tradesWhere(func(t *models.Trade) bool { return t.IDUser == idUser }), nil
}

func (m *Memory) AcceptTrade(_ context.Context, id string) (*models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trade, ok := m.trades[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if trade.Accepted {
		return nil, ErrTradeNotPending
	}

	giverOffered := m.pairLocked(trade.IDUserWaiting, trade.IDCard)
	giverWanted := m.pairLocked(trade.IDUser, trade.IDCardWanted)
	if giverOffered == nil || giverWanted == nil {
		return nil, sql.ErrNoRows
	}
	if giverOffered.Amount < 1 || giverOffered.Waiting < 1 ||
		giverWanted.Amount < 1 || giverWanted.Waiting < 1 {
		return nil, checkViolation("collections_amount_check")
	}

	giverOffered.Amount--
	giverOffered.Waiting--
	giverWanted.Amount--
	giverWanted.Waiting--
	if _, err := m.adjustLocked(trade.IDUser, trade.IDCard, 1, 0); err != nil {
		return nil, err
	}
	if _, err := m.adjustLocked(trade.IDUserWaiting, trade.IDCardWanted, 1, 0); err != nil {
		return nil, err
	}

	trade.Accepted = true
	copied := *trade
	return &copied, nil
}

func (m *Memory) DeclineTrade(_ context.Context, id string) (*models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trade, ok := m.trades[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	if !trade.Accepted {
		proposer := m.pairLocked(trade.IDUserWaiting, trade.IDCard)
		counterpart := m.pairLocked(trade.IDUser, trade.IDCardWanted)
		if proposer == nil || counterpart == nil {
			return nil, sql.ErrNoRows
		}
		if proposer.Waiting < 1 || counterpart.Waiting < 1 {
			return nil, checkViolation("collections_waiting_check")
		}
		proposer.Waiting--
		counterpart.Waiting--
	}

	delete(m.trades, id)
	copied := *trade
	return &copied, nil
}

func (m *Memory) CreateNotification(_ context.Context, notif *models.Notification) (*models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notif.ID = newObjectID()
	notif.CreationTime = time.Now()
	stored := *notif
	m.notifications[notif.ID] = &stored
	return notif, nil
}

func (m *Memory) GetNotifications(_ context.Context) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsWhere(func(*models.Notification) bool { return true }), nil
}

func (m *Memory) GetNotificationByID(_ context.Context, id string) (*models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notif, ok := m.notifications[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *notif
	return &copied, nil
}

func (m *Memory) GetNotificationsByUserID(_ context.Context, idUser string) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsWhere(func(n *models.Notification) bool { return n.IDUser == idUser }), nil
}

func (m *Memory) UpdateNotification(_ context.Context, notif *models.Notification) (*models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.notifications[notif.ID]
	if !ok {
		return nil, sql.ErrNoRows
	}

	stored.Type = notif.Type
	stored.Content = notif.Content
	stored.Read = notif.Read
	stored.Accepted = notif.Accepted
	copied := *stored
	return &copied, nil
}

func (m *Memory) DeleteNotification(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notifications[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.notifications, id)
	return nil
}

func checkCounts(amount, waiting int) error {
	if amount < 0 {
		return checkViolation("collections_amount_check")
	}
	if waiting < 0 {
		return checkViolation("collections_waiting_check")
	}
	if waiting > amount {
		return checkViolation("collections_waiting_le_amount_check")
	}
	return nil
}

func (m *Memory) adjustLocked(idUser, idCard string, amountDelta, waitingDelta int) (*models.Collection, error) {
	entry := m.pairLocked(idUser, idCard)
	if entry == nil {
		if err := checkCounts(amountDelta, waitingDelta); err != nil {
			return nil, err
		}
		entry = &models.Collection{
			ID:      newObjectID(),
			IDUser:  idUser,
			IDCard:  idCard,
			Amount:  amountDelta,
			Waiting: waitingDelta,
		}
		m.collections[entry.ID] = entry
		copied := *entry
		return &copied, nil
	}

	if err := checkCounts(entry.Amount+amountDelta, entry.Waiting+waitingDelta); err != nil {
		return nil, err
	}
	entry.Amount += amountDelta
	entry.Waiting += waitingDelta
	copied := *entry
	return &copied, nil
}

func (m *Memory) pairLocked(idUser, idCard string) *models.Collection {
	for _, entry := range m.collections {
		if entry.IDUser == idUser && entry.IDCard == idCard {
			return entry
		}
	}
	return nil
}

func (m *Memory) collectionsWhere(keep func(*models.Collection) bool) []models.Collection {
	entries := make([]models.Collection, 0)
	for _, entry := range m.collections {
		if keep(entry) {
			entries = append(entries, *entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

func (m *Memory) tradesWhere(keep func(*models.Trade) bool) []models.Trade {
	trades := make([]models.Trade, 0)
	for _, trade := range m.trades {
		if keep(trade) {
			trades = append(trades, *trade)
		}
	}
	sort.Slice(trades, func(i, j int) bool { return trades[i].ID < trades[j].ID })
	return trades
}

func (m *Memory) notificationsWhere(keep func(*models.Notification) bool) []models.Notification {
	notifs := make([]models.Notification, 0)
	for _, notif := range m.notifications {
		if keep(notif) {
			notifs = append(notifs, *notif)
		}
	}
	sort.Slice(notifs, func(i, j int) bool { return notifs[i].ID < notifs[j].ID })
	return notifs
}
