package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/minaorangina/sibyl/deck"
	"github.com/minaorangina/sibyl/engine"
	"github.com/minaorangina/sibyl/game"
	"github.com/minaorangina/sibyl/protocol"
	"github.com/minaorangina/sibyl/store"
)

var errUnknownCommand = errors.New("unknown command")

type NewSessionRes struct {
	SessionID string `json:"session_id"`
}

type ErrorRes struct {
	Error string `json:"error"`
}

// GameServer is an HTTP and websocket driver for oracle sessions
type GameServer struct {
	store      store.SessionStore
	newSession func() *engine.Session
	logger     *slog.Logger
	http.Server
}

type ServerOpts struct {
	Store  store.SessionStore
	Pacing engine.Pacing

	// RNG supplies the randomness for each new session's deck
	RNG       func() deck.RNG
	Logger    *slog.Logger
	AccessLog io.Writer
}

// NewServer creates a new GameServer
func NewServer(opts ServerOpts) *GameServer {
	s := &GameServer{
		store:  opts.Store,
		logger: opts.Logger,
	}
	if s.store == nil {
		s.store = store.NewInMemorySessionStore()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.RNG == nil {
		opts.RNG = deck.NewRNG
	}
	if opts.AccessLog == nil {
		opts.AccessLog = io.Discard
	}

	s.newSession = func() *engine.Session {
		return engine.NewSession(engine.SessionOpts{
			Controller: game.NewController(game.ControllerOpts{Deck: deck.NewWithRNG(opts.RNG())}),
			Pacing:     opts.Pacing,
			Logger:     s.logger,
		})
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewSession))
	router.Handle("/session/", http.HandlerFunc(s.HandleSession))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))

	s.Handler = recovery(cors(handlers.CombinedLoggingHandler(opts.AccessLog, router)))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewSession creates a session waiting for its question
func (g *GameServer) HandleNewSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	session := g.newSession()
	if err := g.store.AddSession(session); err != nil {
		g.logger.Error("could not store session", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorRes{err.Error()})
		return
	}

	g.logger.Info("session created", "session", session.ID())
	writeJSON(w, http.StatusCreated, NewSessionRes{SessionID: session.ID()})
}

// HandleSession serves /session/{id}: GET reads it, POST sends it a
// command and DELETE discards it
func (g *GameServer) HandleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/session/"), "/")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, ErrorRes{"missing session ID"})
		return
	}

	session := g.store.FindSession(sessionID)
	if session == nil {
		writeJSON(w, http.StatusNotFound, ErrorRes{unknownSessionIDMsg(sessionID)})
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, session.Snapshot())

	case http.MethodPost:
		var msg protocol.InboundMessage
		err := json.NewDecoder(r.Body).Decode(&msg)
		defer r.Body.Close()
		if err != nil {
			writeParseError(err, w)
			return
		}

		if err := dispatch(r.Context(), session, msg); err != nil {
			writeJSON(w, statusFor(err), ErrorRes{err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, session.Snapshot())

	case http.MethodDelete:
		if err := g.store.RemoveSession(sessionID); err != nil {
			writeJSON(w, http.StatusNotFound, ErrorRes{err.Error()})
			return
		}
		g.logger.Info("session removed", "session", sessionID)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// dispatch runs one inbound command against a session
func dispatch(ctx context.Context, session *engine.Session, msg protocol.InboundMessage) error {
	var err error
	switch msg.Command {
	case protocol.Start:
		err = session.Begin(ctx, msg.Question)
	case protocol.ClickPile:
		_, err = session.ClickPile(ctx, msg.Pile)
	case protocol.Step:
		_, err = session.Step(ctx)
	case protocol.AutoPlay:
		_, err = session.AutoPlay(ctx)
	case protocol.Reset:
		err = session.Reset()
	case protocol.State:
	default:
		err = errUnknownCommand
	}
	return err
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrEmptyQuestion), errors.Is(err, errUnknownCommand):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrTurnInProgress),
		errors.Is(err, engine.ErrNoSelection),
		errors.Is(err, engine.ErrWrongPile),
		errors.Is(err, engine.ErrNotPlaying),
		errors.Is(err, game.ErrGameAlreadyStarted):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
