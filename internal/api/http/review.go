package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/quizit-app/quizit-core/internal/auth/middleware"
	"github.com/quizit-app/quizit-core/internal/card"
	"github.com/quizit-app/quizit-core/internal/store"
)

type gradeReq struct {
	Answer []string `json:"answer"`
}

type gradeResp struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
	Review      string `json:"review_id,omitempty"`
}

// POST /cards/{cardID}/grade — decode the stored card, grade the
// submitted answer and record the verdict as a review row. Decoding
// runs fresh on every call; nothing parsed is cached.
func GradeCardHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := st.GetCard(r.Context(), chi.URLParam(r, "cardID"))
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		var req gradeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		front := card.DecodeFront(c.Front)
		back := card.DecodeBack(c.Back, false)
		correct := card.Grade(front, back, req.Answer)

		rv, err := st.RecordReview(r.Context(), store.Review{
			CardID:  c.ID,
			UserID:  authmw.SubjectFromContext(r.Context()),
			Answer:  req.Answer,
			Correct: correct,
		})
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(gradeResp{
			Correct:     correct,
			Explanation: back.Explanation,
			Review:      rv.ID,
		})
	}
}

// GET /cards/{cardID}/reviews — past submissions with verdicts.
func ListReviewsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := st.ListReviews(r.Context(), chi.URLParam(r, "cardID"))
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}
