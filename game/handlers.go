package game

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sudokuGo/cache"
	"sudokuGo/models"
	"sudokuGo/utils"
)

// Handlers exposes the game-session flows over HTTP/JSON. All routes run
// behind the auth middleware, which supplies the verified account.
type Handlers struct {
	svc *Service
}

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// Create Game Handler
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request, account models.Account) {
	var req CreateParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	g, err := h.svc.Create(account, req)
	if err != nil {
		writeGameError(w, err)
		return
	}
	cache.Invalidate(cache.ListKey(account.ID))
	utils.WriteJSONResponse(w, http.StatusOK, g)
}

// List Games Handler
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, account models.Account) {
	userID := r.PathValue("userID")

	// Authorize before consulting the cache so a cached listing is never
	// served to anyone but its owner.
	if userID != account.ID {
		writeGameError(w, ErrForbidden)
		return
	}

	// The listing is the hot path for the dashboard, so cache it per owner.
	result, isCached, err := cache.FetchOrExecute(cache.ListKey(userID), func() ([]byte, error) {
		games, err := h.svc.List(account, userID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(games)
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	if isCached {
		log.Printf("Cache hit for game list of user %s", userID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(result)
}

// Update Game Handler
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request, account models.Account) {
	gameID := r.PathValue("gameID")

	var req UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	g, err := h.svc.Update(account, gameID, req)
	if err != nil {
		writeGameError(w, err)
		return
	}
	cache.Invalidate(cache.ListKey(account.ID))
	utils.WriteJSONResponse(w, http.StatusOK, g)
}

// Delete Game Handler
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request, account models.Account) {
	gameID := r.PathValue("gameID")

	if err := h.svc.Delete(account, gameID); err != nil {
		writeGameError(w, err)
		return
	}
	cache.Invalidate(cache.ListKey(account.ID))
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Game deleted"})
}

// Hint Handler
func (h *Handlers) Hint(w http.ResponseWriter, r *http.Request, account models.Account) {
	gameID := r.PathValue("gameID")

	hint, err := h.svc.Hint(account, gameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, hint)
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		utils.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		utils.WriteJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNoHint):
		utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("game: internal error: %v", err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
