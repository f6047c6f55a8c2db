package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizit-app/quizit-core/internal/storage"
)

// MountAssets wires the card-media blob routes.
func MountAssets(r chi.Router, bs storage.BlobStore) {
	// POST /assets/{cardID} — multipart upload, optional filename form
	// field. Blobs live under <cardID>/<filename>.
	r.Post("/{cardID}", func(w http.ResponseWriter, r *http.Request) {
		cardID := chi.URLParam(r, "cardID")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		name := r.FormValue("filename")
		if name == "" && hdr != nil {
			name = hdr.Filename
		}
		key := storage.MediaKey(cardID, name)
		if _, err := bs.Put(key, f); err != nil {
			http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"key": key})
	})

	// GET /assets/*  -> returns the blob at whatever follows /assets/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := bs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", storage.ContentTypeFor(key))
		_, _ = io.Copy(w, rc)
	})
}
