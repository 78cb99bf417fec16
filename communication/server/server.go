// Package server exposes games over HTTP. Each game lives in its own
// session addressed by a key; actions, state reads, and websocket
// watches all go through the session's lock.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"catan/archive"
	"catan/communication"
	"catan/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type session struct {
	key string

	mu       sync.Mutex
	game     *game.Game
	watchers map[*websocket.Conn]bool
	recorded bool
}

// Server hosts concurrent game sessions. The archive store is
// optional; without one finished games simply are not persisted.
type Server struct {
	store    *archive.Store
	newBoard func() *game.Board

	mu       sync.RWMutex
	sessions map[string]*session
}

func New(store *archive.Store, newBoard func() *game.Board) *Server {
	if newBoard == nil {
		newBoard = game.StandardBoard
	}
	return &Server{
		store:    store,
		newBoard: newBoard,
		sessions: make(map[string]*session),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/games", s.handleCreateGame)
	r.Route("/games/{key}", func(r chi.Router) {
		r.Post("/actions", s.handleAction)
		r.Get("/state", s.handleState)
		r.Get("/board", s.handleBoard)
		r.Get("/ws", s.handleWatch)
	})
	r.Get("/results", s.handleResults)
	return r
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req communication.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sess := &session{
		key:      uuid.NewString(),
		game:     game.NewGame(s.newBoard(), rand.New(rand.NewSource(seed))),
		watchers: make(map[*websocket.Conn]bool),
	}

	s.mu.Lock()
	s.sessions[sess.key] = sess
	s.mu.Unlock()

	log.Info().Msgf("created game %s", sess.key)

	writeJSON(w, http.StatusCreated, communication.CreateGameResponse{
		Key:      sess.key,
		Snapshot: sess.game.Snapshot(),
	})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "key"))
	if !ok {
		writeJSON(w, http.StatusNotFound, communication.ErrorResponse{Error: "unknown game"})
		return
	}

	var req communication.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if req.Player != sess.game.CurrentPlayer {
		writeJSON(w, http.StatusConflict, communication.ErrorResponse{Error: "not your turn"})
		return
	}

	accepted := sess.game.AdvanceOneAction(req.Action)
	snap := sess.game.Snapshot()

	if accepted {
		sess.broadcast(snap)
		if sess.game.Finished && !sess.recorded {
			sess.recorded = true
			s.recordResult(sess)
		}
	}

	writeJSON(w, http.StatusOK, communication.ActionResponse{Accepted: accepted, Snapshot: snap})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "key"))
	if !ok {
		writeJSON(w, http.StatusNotFound, communication.ErrorResponse{Error: "unknown game"})
		return
	}

	sess.mu.Lock()
	snap := sess.game.Snapshot()
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "key"))
	if !ok {
		writeJSON(w, http.StatusNotFound, communication.ErrorResponse{Error: "unknown game"})
		return
	}

	sess.mu.Lock()
	view := sess.game.Board.View()
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, view)
}

// handleWatch upgrades to a websocket and streams a snapshot after
// every accepted action until the client disconnects.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "key"))
	if !ok {
		writeJSON(w, http.StatusNotFound, communication.ErrorResponse{Error: "unknown game"})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Msgf("websocket upgrade failed: %v", err)
		return
	}

	// The opening write happens under the session lock so it cannot
	// interleave with a broadcast on the same connection.
	sess.mu.Lock()
	if err := conn.WriteJSON(sess.game.Snapshot()); err != nil {
		sess.mu.Unlock()
		conn.Close()
		return
	}
	sess.watchers[conn] = true
	sess.mu.Unlock()

	// Reads only serve to notice the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sess.dropWatcher(conn)
				return
			}
		}
	}()
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusOK, []archive.Result{})
		return
	}
	results, err := s.store.ListResults()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, communication.ErrorResponse{Error: err.Error()})
		return
	}
	if results == nil {
		results = []archive.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) session(key string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[key]
	return sess, ok
}

func (s *Server) recordResult(sess *session) {
	if s.store == nil {
		return
	}
	err := s.store.RecordResult(archive.Result{
		GameKey:  sess.key,
		Winner:   sess.game.Winner,
		P1Points: sess.game.VictoryPoints(1),
		P2Points: sess.game.VictoryPoints(2),
		Turns:    sess.game.TurnNumber,
	})
	if err != nil {
		log.Error().Msgf("failed to archive game %s: %v", sess.key, err)
		return
	}
	log.Info().Msgf("archived game %s with winner: player %d", sess.key, sess.game.Winner)
}

// broadcast pushes a snapshot to every watcher, dropping the ones
// whose connection has died. Callers hold the session lock.
func (sess *session) broadcast(snap game.Snapshot) {
	for conn := range sess.watchers {
		if err := conn.WriteJSON(snap); err != nil {
			delete(sess.watchers, conn)
			conn.Close()
		}
	}
}

func (sess *session) dropWatcher(conn *websocket.Conn) {
	sess.mu.Lock()
	if sess.watchers[conn] {
		delete(sess.watchers, conn)
		conn.Close()
	}
	sess.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Msgf("failed to encode response: %v", err)
	}
}
