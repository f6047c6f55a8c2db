package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizit-app/quizit-core/internal/card"
)

type decodeReq struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	NoAnswerMode bool   `json:"no_answer_mode,omitempty"`
}

type decodeResp struct {
	Front card.FrontSchema `json:"front"`
	Back  card.BackSchema  `json:"back"`
}

// POST /decode — normalize raw front/back text without touching the
// store. Used by authoring UIs to preview how legacy text will be
// interpreted.
func DecodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req decodeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(decodeResp{
			Front: card.DecodeFront(req.Front),
			Back:  card.DecodeBack(req.Back, req.NoAnswerMode),
		})
	}
}
