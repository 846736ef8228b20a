package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/game"
)

type errorBody struct {
	Error string `json:"error"`
}

// suggestRequest is the body of POST /suggest: the suggesting player plus the
// three suggested cards.
type suggestRequest struct {
	Player string `json:"player"`
	cards.Suggestion
}

type accuseResponse struct {
	Correct bool `json:"correct"`
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := s.engine.AddPlayer(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.RemovePlayer(chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.ListPlayers())
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := s.engine.GetPlayer(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	state, err := s.engine.StartGame()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleResetGame(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.ResetGame(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeSuggestion(r, &req, &req.Suggestion); err != nil {
		writeError(w, err)
		return
	}
	if req.Player == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing_player"})
		return
	}
	result, err := s.engine.Refute(req.Suggestion, req.Player)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAccuse(w http.ResponseWriter, r *http.Request) {
	var req cards.Suggestion
	if err := decodeSuggestion(r, &req, &req); err != nil {
		writeError(w, err)
		return
	}
	correct, err := s.engine.Accuse(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accuseResponse{Correct: correct})
}

// errBadRequest marks request bodies rejected before reaching the engine.
var errBadRequest = errors.New("bad request")

// decodeSuggestion decodes the body into dst and validates the embedded
// suggestion against the catalog.
func decodeSuggestion(r *http.Request, dst any, s *cards.Suggestion) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Join(errBadRequest, err)
	}
	if err := s.Validate(); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}

// writeError maps an engine error to its transport status and code.
func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, game.ErrDuplicatePlayer):
		status, code = http.StatusConflict, "duplicate_player"
	case errors.Is(err, game.ErrUnknownPlayer):
		status, code = http.StatusNotFound, "unknown_player"
	case errors.Is(err, game.ErrGameAlreadyActive):
		status, code = http.StatusBadRequest, "game_already_active"
	case errors.Is(err, game.ErrGameNotActive):
		status, code = http.StatusBadRequest, "game_not_active"
	case errors.Is(err, game.ErrInsufficientPlayers):
		status, code = http.StatusBadRequest, "insufficient_players"
	case errors.Is(err, cards.ErrUnknownCard):
		status, code = http.StatusBadRequest, "unknown_card"
	case errors.Is(err, errBadRequest):
		status, code = http.StatusBadRequest, "bad_request"
	}
	writeJSON(w, status, errorBody{Error: code})
}
