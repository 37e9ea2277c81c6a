package store

import (
	"sort"
	"sync"

	"sudokuGo/models"
)

// In-memory stores back the unit tests and local development without a
// database. They mirror the Postgres semantics, including the
// delete-reports-removal contract on codes.

type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]models.Account)}
}

func (s *MemoryAccountStore) Create(a models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
	return nil
}

func (s *MemoryAccountStore) GetByID(id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return models.Account{}, ErrNotFound
	}
	return a, nil
}

func (s *MemoryAccountStore) GetByUsername(username string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Account{}, ErrNotFound
}

func (s *MemoryAccountStore) GetByEmail(email string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Account{}, ErrNotFound
}

func (s *MemoryAccountStore) UpdatePasswordHash(id, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	a.PasswordHash = hash
	s.accounts[id] = a
	return nil
}

type MemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]models.GameSession
}

func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{games: make(map[string]models.GameSession)}
}

func (s *MemoryGameStore) Create(g models.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
	return nil
}

func (s *MemoryGameStore) GetByID(id string) (models.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return models.GameSession{}, ErrNotFound
	}
	return g, nil
}

func (s *MemoryGameStore) ListVisibleByUser(userID string) ([]models.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GameSession, 0)
	for _, g := range s.games {
		if g.UserID == userID && !g.IsHidden {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryGameStore) Update(g models.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[g.ID]; !ok {
		return ErrNotFound
	}
	s.games[g.ID] = g
	return nil
}

func (s *MemoryGameStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return ErrNotFound
	}
	delete(s.games, id)
	return nil
}

type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]models.VerificationCode
}

func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{codes: make(map[string]models.VerificationCode)}
}

func codeKey(code, purpose string) string { return purpose + ":" + code }

func (s *MemoryCodeStore) Create(c models.VerificationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[codeKey(c.Code, c.Purpose)] = c
	return nil
}

func (s *MemoryCodeStore) Get(code, purpose string) (models.VerificationCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[codeKey(code, purpose)]
	if !ok {
		return models.VerificationCode{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryCodeStore) Delete(code, purpose string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := codeKey(code, purpose)
	if _, ok := s.codes[key]; !ok {
		return false, nil
	}
	delete(s.codes, key)
	return true, nil
}
