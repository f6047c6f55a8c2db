package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/quizit-app/quizit-core/internal/api/http"
	auth "github.com/quizit-app/quizit-core/internal/auth/middleware"
	"github.com/quizit-app/quizit-core/internal/config"
	"github.com/quizit-app/quizit-core/internal/db"
	"github.com/quizit-app/quizit-core/internal/rbac"
	"github.com/quizit-app/quizit-core/internal/storage"
	"github.com/quizit-app/quizit-core/internal/store"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	st := store.NewSQLStore(dbh, cfg.DBDriver)

	authSvc := auth.NewAuthService(cfg.AuthSecret)
	creds := auth.Credentials{DB: dbh, AdminUser: cfg.AdminUser, AdminPassHash: cfg.AdminPassHash}

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, creds))

	// Protected API (JWT -> role in context -> rbac)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("decode")).
			Post("/decode", api.DecodeHandler())

		// Authoring
		pr.With(rbac.Require("card:create")).
			Post("/cards", api.PutCardHandler(st))
		pr.With(rbac.Require("card:view-full")).
			Get("/cards", api.ListCardsHandler(st))
		pr.With(rbac.Require("card:view-full")).
			Get("/cards/{cardID}", api.GetCardHandler(st))

		// Quiz taking
		pr.With(rbac.Require("card:view")).
			Get("/cards/{cardID}/quiz", api.GetCardQuizHandler(st))
		pr.With(rbac.Require("review:create")).
			Post("/cards/{cardID}/grade", api.GradeCardHandler(st))
		pr.With(rbac.Require("review:list")).
			Get("/cards/{cardID}/reviews", api.ListReviewsHandler(st))

		// Decks and quiz templates
		pr.With(rbac.Require("deck:create")).
			Put("/decks", api.PutDeckHandler(st))
		pr.With(rbac.Require("deck:view")).
			Get("/decks/{title}/cards", api.DeckCardsHandler(st))
		pr.With(rbac.Require("quiz:create")).
			Put("/quizzes", api.PutQuizHandler(st))
		pr.With(rbac.Require("quiz:view")).
			Get("/quizzes/{title}/cards", api.QuizCardsHandler(st))

		// Users
		pr.With(rbac.Require("users:bulk_upsert")).
			Post("/users/bulk", api.BulkUpsertUsersHandler(dbh))
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))

		// Card media
		pr.Route("/assets", func(ar chi.Router) {
			api.MountAssets(ar, bs)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
