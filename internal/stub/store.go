package stub

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned for ids without a matching record.
	ErrNotFound = errors.New("record not found")

	// ErrBadReference is returned when a draft references an id that
	// does not exist, or an account outside the advertisement's
	// user/game pair.
	ErrBadReference = errors.New("invalid reference")
)

// Store is the stub's in-memory system of record. A single id
// sequence spans all entity types; nothing here survives a restart.
type Store struct {
	mu     sync.RWMutex
	nextID int64

	users        map[int64]domain.User
	games        map[int64]domain.Game
	accounts     map[int64]domain.GameAccount
	ads          map[int64]domain.Advertisement
	transactions map[int64]domain.Transaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:        map[int64]domain.User{},
		games:        map[int64]domain.Game{},
		accounts:     map[int64]domain.GameAccount{},
		ads:          map[int64]domain.Advertisement{},
		transactions: map[int64]domain.Transaction{},
	}
}

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

// ---- users ----

// ListUsers returns every user ordered by the sort column.
func (s *Store) ListUsers(sortKey, direction string) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		var less bool
		if sortKey == "name" {
			less = strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		} else {
			less = out[i].ID < out[j].ID
		}
		if strings.EqualFold(direction, "desc") {
			return !less
		}
		return less
	})
	return out
}

// SearchUsers filters users by a case-insensitive substring on one
// display field.
func (s *Store) SearchUsers(field, value string) []domain.User {
	needle := strings.ToLower(value)
	var out []domain.User
	for _, u := range s.ListUsers("name", "asc") {
		var hay string
		if field == "email" {
			hay = u.Email
		} else {
			hay = u.Name
		}
		if strings.Contains(strings.ToLower(hay), needle) {
			out = append(out, u)
		}
	}
	return out
}

// GetUser looks a user up by id.
func (s *Store) GetUser(id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return u, nil
}

// CreateUser stores a new user from a draft.
func (s *Store) CreateUser(d domain.UserDraft) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{
		ID:       s.allocID(),
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
	}
	s.users[u.ID] = u
	return u
}

// UpdateUser applies a draft to an existing user. An empty draft
// password keeps the stored credential.
func (s *Store) UpdateUser(id int64, d domain.UserDraft) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	u.Name = d.Name
	u.Email = d.Email
	if d.Password != "" {
		u.Password = d.Password
	}
	s.users[id] = u
	return u, nil
}

// DeleteUser removes a user.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// ---- games ----

// ListGames returns every game ordered by the sort column.
func (s *Store) ListGames(sortKey, direction string) []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		var less bool
		if sortKey == "name" {
			less = strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		} else {
			less = out[i].ID < out[j].ID
		}
		if strings.EqualFold(direction, "desc") {
			return !less
		}
		return less
	})
	return out
}

// SearchGames filters games by a case-insensitive name substring.
func (s *Store) SearchGames(value string) []domain.Game {
	needle := strings.ToLower(value)
	var out []domain.Game
	for _, g := range s.ListGames("name", "asc") {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			out = append(out, g)
		}
	}
	return out
}

// GetGame looks a game up by id.
func (s *Store) GetGame(id int64) (domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return domain.Game{}, ErrNotFound
	}
	return g, nil
}

// CreateGame stores a new game from a draft.
func (s *Store) CreateGame(d domain.GameDraft) domain.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := domain.Game{
		ID:          s.allocID(),
		Name:        d.Name,
		Platform:    d.Platform,
		Price:       d.Price,
		Description: d.Description,
	}
	s.games[g.ID] = g
	return g
}

// UpdateGame applies a draft to an existing game.
func (s *Store) UpdateGame(id int64, d domain.GameDraft) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return domain.Game{}, ErrNotFound
	}
	g.Name = d.Name
	g.Platform = d.Platform
	g.Price = d.Price
	g.Description = d.Description
	s.games[id] = g
	return g, nil
}

// DeleteGame removes a game.
func (s *Store) DeleteGame(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return ErrNotFound
	}
	delete(s.games, id)
	return nil
}

// ---- game accounts ----

// ListAccounts returns every game account ordered by id.
func (s *Store) ListAccounts() []domain.GameAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GameAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListAccountsByUser returns the accounts owned by one user.
func (s *Store) ListAccountsByUser(userID int64) []domain.GameAccount {
	var out []domain.GameAccount
	for _, a := range s.ListAccounts() {
		if a.User.ID == userID {
			out = append(out, a)
		}
	}
	return out
}

// ListAccountsByGame returns the accounts on one game.
func (s *Store) ListAccountsByGame(gameID int64) []domain.GameAccount {
	var out []domain.GameAccount
	for _, a := range s.ListAccounts() {
		if a.Game.ID == gameID {
			out = append(out, a)
		}
	}
	return out
}

// GetAccount looks a game account up by id.
func (s *Store) GetAccount(id int64) (domain.GameAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return domain.GameAccount{}, ErrNotFound
	}
	return a, nil
}

// CreateAccount stores a new game account, resolving and embedding
// its user and game references.
func (s *Store) CreateAccount(d domain.GameAccountDraft) (domain.GameAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[d.User.ID]
	if !ok {
		return domain.GameAccount{}, ErrBadReference
	}
	game, ok := s.games[d.Game.ID]
	if !ok {
		return domain.GameAccount{}, ErrBadReference
	}

	a := domain.GameAccount{
		ID:            s.allocID(),
		User:          user,
		Game:          game,
		CharacterName: d.CharacterName,
		Level:         d.Level,
		Balance:       d.Balance,
	}
	s.accounts[a.ID] = a
	return a, nil
}

// UpdateAccount applies a draft to an existing game account.
func (s *Store) UpdateAccount(id int64, d domain.GameAccountDraft) (domain.GameAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return domain.GameAccount{}, ErrNotFound
	}
	user, ok := s.users[d.User.ID]
	if !ok {
		return domain.GameAccount{}, ErrBadReference
	}
	game, ok := s.games[d.Game.ID]
	if !ok {
		return domain.GameAccount{}, ErrBadReference
	}

	a.User = user
	a.Game = game
	a.CharacterName = d.CharacterName
	a.Level = d.Level
	a.Balance = d.Balance
	s.accounts[id] = a
	return a, nil
}

// DeleteAccount removes a game account.
func (s *Store) DeleteAccount(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}

// ---- advertisements ----

// ListAds returns every advertisement ordered by id.
func (s *Store) ListAds() []domain.Advertisement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Advertisement, 0, len(s.ads))
	for _, ad := range s.ads {
		out = append(out, ad)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SearchAdsByDescription filters advertisements by a case-insensitive
// description substring.
func (s *Store) SearchAdsByDescription(value string) []domain.Advertisement {
	needle := strings.ToLower(value)
	var out []domain.Advertisement
	for _, ad := range s.ListAds() {
		if strings.Contains(strings.ToLower(ad.Description), needle) {
			out = append(out, ad)
		}
	}
	return out
}

// SearchAdsByPrice filters advertisements by a price bound.
func (s *Store) SearchAdsByPrice(bound decimal.Decimal, max bool) []domain.Advertisement {
	var out []domain.Advertisement
	for _, ad := range s.ListAds() {
		if max && ad.Price.LessThanOrEqual(bound) {
			out = append(out, ad)
		}
		if !max && ad.Price.GreaterThanOrEqual(bound) {
			out = append(out, ad)
		}
	}
	return out
}

// GetAd looks an advertisement up by id.
func (s *Store) GetAd(id int64) (domain.Advertisement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ad, ok := s.ads[id]
	if !ok {
		return domain.Advertisement{}, ErrNotFound
	}
	return ad, nil
}

// resolveAdRefs embeds an ad draft's references, enforcing that an
// attached account belongs to the ad's own user and game.
// Caller holds the lock.
func (s *Store) resolveAdRefs(d domain.AdvertisementDraft) (domain.User, domain.Game, *domain.GameAccount, error) {
	user, ok := s.users[d.User.ID]
	if !ok {
		return domain.User{}, domain.Game{}, nil, ErrBadReference
	}
	game, ok := s.games[d.Game.ID]
	if !ok {
		return domain.User{}, domain.Game{}, nil, ErrBadReference
	}

	var account *domain.GameAccount
	if d.GameAccount != nil {
		a, ok := s.accounts[d.GameAccount.ID]
		if !ok {
			return domain.User{}, domain.Game{}, nil, ErrBadReference
		}
		if a.User.ID != user.ID || a.Game.ID != game.ID {
			return domain.User{}, domain.Game{}, nil, ErrBadReference
		}
		account = &a
	}
	return user, game, account, nil
}

// CreateAd stores a new advertisement from a draft.
func (s *Store) CreateAd(d domain.AdvertisementDraft) (domain.Advertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, game, account, err := s.resolveAdRefs(d)
	if err != nil {
		return domain.Advertisement{}, err
	}

	ad := domain.Advertisement{
		ID:          s.allocID(),
		User:        user,
		Game:        game,
		GameAccount: account,
		Description: d.Description,
		Price:       d.Price,
		Available:   d.Available,
	}
	s.ads[ad.ID] = ad
	return ad, nil
}

// UpdateAd applies a draft to an existing advertisement.
func (s *Store) UpdateAd(id int64, d domain.AdvertisementDraft) (domain.Advertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad, ok := s.ads[id]
	if !ok {
		return domain.Advertisement{}, ErrNotFound
	}
	user, game, account, err := s.resolveAdRefs(d)
	if err != nil {
		return domain.Advertisement{}, err
	}

	ad.User = user
	ad.Game = game
	ad.GameAccount = account
	ad.Description = d.Description
	ad.Price = d.Price
	ad.Available = d.Available
	s.ads[id] = ad
	return ad, nil
}

// DeleteAd removes an advertisement.
func (s *Store) DeleteAd(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[id]; !ok {
		return ErrNotFound
	}
	delete(s.ads, id)
	return nil
}

// ---- transactions ----

// ListTransactions returns every transaction ordered by the sort
// column, date descending by default.
func (s *Store) ListTransactions(sortKey, direction string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		var less bool
		if sortKey == "date" {
			less = out[i].Date.Before(out[j].Date)
		} else {
			less = out[i].ID < out[j].ID
		}
		if strings.EqualFold(direction, "desc") {
			return !less
		}
		return less
	})
	return out
}

// GetTransaction looks a transaction up by id.
func (s *Store) GetTransaction(id int64) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return domain.Transaction{}, ErrNotFound
	}
	return t, nil
}

// resolveTransactionRefs embeds a transaction draft's references.
// Caller holds the lock.
func (s *Store) resolveTransactionRefs(d domain.TransactionDraft) (domain.User, *domain.GameAccount, error) {
	user, ok := s.users[d.User.ID]
	if !ok {
		return domain.User{}, nil, ErrBadReference
	}
	var account *domain.GameAccount
	if d.GameAccount != nil {
		a, ok := s.accounts[d.GameAccount.ID]
		if !ok {
			return domain.User{}, nil, ErrBadReference
		}
		account = &a
	}
	return user, account, nil
}

// CreateTransaction stores a new transaction from a draft.
func (s *Store) CreateTransaction(d domain.TransactionDraft) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, account, err := s.resolveTransactionRefs(d)
	if err != nil {
		return domain.Transaction{}, err
	}

	t := domain.Transaction{
		ID:          s.allocID(),
		User:        user,
		GameAccount: account,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
		Type:        d.Type,
		Status:      d.Status,
	}
	s.transactions[t.ID] = t
	return t, nil
}

// UpdateTransaction applies a draft to an existing transaction.
func (s *Store) UpdateTransaction(id int64, d domain.TransactionDraft) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok {
		return domain.Transaction{}, ErrNotFound
	}
	user, account, err := s.resolveTransactionRefs(d)
	if err != nil {
		return domain.Transaction{}, err
	}

	t.User = user
	t.GameAccount = account
	t.Description = d.Description
	t.Amount = d.Amount
	t.Date = d.Date
	t.Type = d.Type
	t.Status = d.Status
	s.transactions[id] = t
	return t, nil
}

// DeleteTransaction removes a transaction.
func (s *Store) DeleteTransaction(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}
