package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizit-app/quizit-core/internal/store"
)

// PUT /decks — create or replace a deck (title is the natural key,
// items carry ordered card references).
func PutDeckHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d store.Deck
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if d.Title == "" {
			http.Error(w, "title required", http.StatusBadRequest)
			return
		}
		saved, err := st.PutDeck(r.Context(), d)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(saved)
	}
}

// GET /decks/{title}/cards — the deck's cards in item order.
func DeckCardsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := st.CardsByDeckTitle(r.Context(), chi.URLParam(r, "title"))
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(cards)
	}
}

// PUT /quizzes — create or replace a quiz template.
func PutQuizHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q store.QuizTemplate
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if q.Title == "" {
			http.Error(w, "title required", http.StatusBadRequest)
			return
		}
		saved, err := st.PutQuiz(r.Context(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(saved)
	}
}

// GET /quizzes/{title}/cards — the template's cards in item order.
func QuizCardsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := st.CardsByQuizTitle(r.Context(), chi.URLParam(r, "title"))
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(cards)
	}
}
