package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizit-app/quizit-core/internal/card"
	"github.com/quizit-app/quizit-core/internal/store"
)

// POST /cards — create or update a card. Front/back are stored as
// raw text; the response echoes the card plus its decoded front so
// the author sees the normalized interpretation immediately.
func PutCardHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c store.Card
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if c.Front == "" {
			http.Error(w, "front required", http.StatusBadRequest)
			return
		}
		saved, err := st.PutCard(r.Context(), c)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"card":  saved,
			"front": card.DecodeFront(saved.Front),
		})
	}
}

// GET /cards — author view, raw text included.
func ListCardsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := st.ListCards(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(cards)
	}
}

// GET /cards/{cardID} — author view of a single card.
func GetCardHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := st.GetCard(r.Context(), chi.URLParam(r, "cardID"))
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(c)
	}
}

type quizView struct {
	ID    string           `json:"id"`
	Front card.FrontSchema `json:"front"`
}

// GET /cards/{cardID}/quiz — learner view: the decoded front only.
// The raw back never leaves the server here, so the answer key stays
// hidden while a quiz is being taken.
func GetCardQuizHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := st.GetCard(r.Context(), chi.URLParam(r, "cardID"))
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(quizView{ID: c.ID, Front: card.DecodeFront(c.Front)})
	}
}

func writeStoreErr(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
