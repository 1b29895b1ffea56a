package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/probable-spork/internal/matchmaking"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) EnqueueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req enqueueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Player == "" {
			http.Error(w, "player is required", http.StatusBadRequest)
			return
		}
		if req.PreferredOpponent == "" {
			req.PreferredOpponent = matchmaking.OpponentAny
		}
		if !req.PreferredOpponent.Valid() {
			http.Error(w, "preferred_opponent must be HUMAN, AI or ANY", http.StatusBadRequest)
			return
		}

		// The caller may omit the rating; the rating source supplies it.
		if req.Rating <= 0 {
			rating, err := s.Ratings.Rating(r.Context(), req.Player)
			if err != nil {
				http.Error(w, "Failed to resolve player rating", http.StatusInternalServerError)
				log.Error("Failed to resolve player rating", "error", err, "player", req.Player)
				return
			}
			req.Rating = rating
		}
		if req.MaxRating == 0 {
			req.MaxRating = 3000
		}

		status, err := s.Matchmaker.Enqueue(matchmaking.EnqueueRequest{
			PlayerID:   req.Player,
			Rating:     req.Rating,
			Preference: req.PreferredOpponent,
			MinRating:  req.MinRating,
			MaxRating:  req.MaxRating,
		})
		if err != nil {
			switch {
			case errors.Is(err, matchmaking.ErrDuplicateEnqueue):
				http.Error(w, "Player already queued", http.StatusConflict)
			case errors.Is(err, matchmaking.ErrDuplicateBucket):
				http.Error(w, "Rating bucket already occupied", http.StatusConflict)
			default:
				http.Error(w, "Failed to join queue", http.StatusBadRequest)
			}
			log.Error("Failed to enqueue player", "error", err, "player", req.Player)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (s *Server) CancelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req cancelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Player == "" {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		// Absence is not exceptional: the flag carries the answer either way.
		canceled := s.Matchmaker.Cancel(req.Player)
		writeJSON(w, http.StatusOK, map[string]bool{"canceled": canceled})
	}
}

func (s *Server) QueueStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.URL.Query().Get("player")
		if player == "" {
			http.Error(w, "player is required", http.StatusBadRequest)
			return
		}

		status, err := s.Matchmaker.Status(player)
		if err != nil {
			if errors.Is(err, matchmaking.ErrNotFound) {
				http.Error(w, "Player not in queue", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to get queue status", http.StatusInternalServerError)
			log.Error("Failed to get queue status", "error", err, "player", player)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (s *Server) PollMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.URL.Query().Get("player")
		if player == "" {
			http.Error(w, "player is required", http.StatusBadRequest)
			return
		}

		view, found := s.Matchmaker.Poll(player)
		if !found {
			writeJSON(w, http.StatusOK, map[string]bool{"found": false})
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Found bool `json:"found"`
			*matchmaking.MatchView
		}{Found: true, MatchView: view})
	}
}

func (s *Server) AcceptMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req acceptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Player == "" || req.SessionID == "" {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.Matchmaker.Accept(req.Player, req.SessionID); err != nil {
			switch {
			case errors.Is(err, matchmaking.ErrNotFound):
				http.Error(w, "No match recorded for player", http.StatusNotFound)
			case errors.Is(err, matchmaking.ErrMatchMismatch):
				http.Error(w, "Session id does not match recorded pairing", http.StatusConflict)
			default:
				http.Error(w, "Failed to accept match", http.StatusInternalServerError)
				log.Error("Failed to accept match", "error", err, "player", req.Player)
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"accepted": true, "session_id": req.SessionID})
	}
}

// RatingUpdatedHandler ingests rating-updated push messages from Pub/Sub and
// stores the new rating, so later enqueues resolve against the current value.
func (s *Server) RatingUpdatedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received rating updated message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		update := ratingUpdate{}
		if err := s.PubSub.ProcessMessage(rawData, &update); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if update.Player == "" {
			http.Error(w, "player is required", http.StatusBadRequest)
			return
		}

		s.Ratings.Set(update.Player, update.Rating)
		log.Info("Stored pushed rating", "player", update.Player, "rating", update.Rating)
		w.Write([]byte("OK"))
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Matchmaker.Stats())
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
