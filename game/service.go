package game

import (
	"errors"
	"time"

	"sudokuGo/models"
	"sudokuGo/store"
	"sudokuGo/sudoku"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("game session not found")
	ErrForbidden = errors.New("not the owner of this game session")
	ErrNoHint    = errors.New("no hint available")
)

// Service owns the game-session flows. Every record-scoped operation
// re-checks ownership against the authenticated account and fails closed.
type Service struct {
	games   store.GameStore
	nowFunc func() time.Time
}

func NewService(games store.GameStore) *Service {
	return &Service{games: games, nowFunc: time.Now}
}

// Authorize is the ownership guard: a session may only be touched by the
// account that created it. Ownership is fixed at creation.
func Authorize(g models.GameSession, accountID string) error {
	if g.UserID != accountID {
		return ErrForbidden
	}
	return nil
}

// CreateParams carries the fields the frontend supplies at puzzle start.
type CreateParams struct {
	UserID        string      `json:"user_id"`
	Board         sudoku.Grid `json:"board"`
	InitialPuzzle sudoku.Grid `json:"initial_puzzle"`
	Solution      sudoku.Grid `json:"solution"`
	TimePlayed    int         `json:"time_played"`
	Level         string      `json:"level"`
	IsHidden      *bool       `json:"is_hidden"`
}

// Create saves a new session for the requesting account. New sessions start
// hidden (the first autosave), a later update makes them visible.
func (s *Service) Create(owner models.Account, p CreateParams) (models.GameSession, error) {
	if p.UserID != owner.ID {
		return models.GameSession{}, ErrForbidden
	}

	hidden := true
	if p.IsHidden != nil {
		hidden = *p.IsHidden
	}
	g := models.GameSession{
		ID:            uuid.New().String(),
		UserID:        owner.ID,
		Board:         p.Board,
		InitialPuzzle: p.InitialPuzzle,
		Solution:      p.Solution,
		TimePlayed:    p.TimePlayed,
		Level:         p.Level,
		CreatedAt:     s.nowFunc().UTC(),
		IsHidden:      hidden,
	}
	if err := s.games.Create(g); err != nil {
		return models.GameSession{}, err
	}
	return g, nil
}

// List returns the visible sessions of one user. Accounts may only list
// their own sessions; hidden ones stay out even for the owner.
func (s *Service) List(owner models.Account, userID string) ([]models.GameSession, error) {
	if userID != owner.ID {
		return nil, ErrForbidden
	}
	return s.games.ListVisibleByUser(userID)
}

// UpdateParams carries the mutable fields of a session.
type UpdateParams struct {
	Board      sudoku.Grid `json:"board"`
	TimePlayed int         `json:"time_played"`
	IsHidden   bool        `json:"is_hidden"`
}

// Update overwrites the session's board, play time and visibility.
// Concurrent updates race last-write-wins at the store.
func (s *Service) Update(owner models.Account, gameID string, p UpdateParams) (models.GameSession, error) {
	g, err := s.get(gameID)
	if err != nil {
		return models.GameSession{}, err
	}
	if err := Authorize(g, owner.ID); err != nil {
		return models.GameSession{}, err
	}

	g.Board = p.Board
	g.TimePlayed = p.TimePlayed
	g.IsHidden = p.IsHidden
	if err := s.games.Update(g); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.GameSession{}, ErrNotFound
		}
		return models.GameSession{}, err
	}
	return g, nil
}

// Delete removes the session.
func (s *Service) Delete(owner models.Account, gameID string) error {
	g, err := s.get(gameID)
	if err != nil {
		return err
	}
	if err := Authorize(g, owner.ID); err != nil {
		return err
	}
	if err := s.games.Delete(gameID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// HintResult is a hint plus its rendered justification.
type HintResult struct {
	Row          int    `json:"row"`
	Col          int    `json:"col"`
	Value        int    `json:"value"`
	Explanation  string `json:"explanation"`
	WasIncorrect bool   `json:"is_incorrect"`
}

// Hint advises on one cell of the session's board: the first incorrect entry
// if any, otherwise the most constrained empty cell.
func (s *Service) Hint(owner models.Account, gameID string) (HintResult, error) {
	g, err := s.get(gameID)
	if err != nil {
		return HintResult{}, err
	}
	if err := Authorize(g, owner.ID); err != nil {
		return HintResult{}, err
	}

	h, ok := sudoku.SelectHint(g.Board, g.Solution)
	if !ok {
		return HintResult{}, ErrNoHint
	}
	return HintResult{
		Row:          h.Row,
		Col:          h.Col,
		Value:        h.Value,
		Explanation:  sudoku.Explain(g.Board, h),
		WasIncorrect: h.WasIncorrect,
	}, nil
}

func (s *Service) get(gameID string) (models.GameSession, error) {
	g, err := s.games.GetByID(gameID)
	if errors.Is(err, store.ErrNotFound) {
		return models.GameSession{}, ErrNotFound
	}
	if err != nil {
		return models.GameSession{}, err
	}
	return g, nil
}
