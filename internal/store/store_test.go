package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/quizit-app/quizit-core/internal/db"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return map[string]Store{
		"memory": NewInMemoryStore(),
		"sqlite": NewSQLStore(sqlDB, "sqlite"),
	}
}

func TestCardRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			c, err := s.PutCard(ctx, Card{Front: "q", Back: "a"})
			if err != nil {
				t.Fatal(err)
			}
			if c.ID == "" || c.CreatedAt == 0 {
				t.Fatalf("missing defaults: %+v", c)
			}
			got, err := s.GetCard(ctx, c.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Front != "q" || got.Back != "a" {
				t.Errorf("got %+v", got)
			}

			// upsert keeps the id
			c.Back = "b"
			if _, err := s.PutCard(ctx, c); err != nil {
				t.Fatal(err)
			}
			got, _ = s.GetCard(ctx, c.ID)
			if got.Back != "b" {
				t.Errorf("update lost: %+v", got)
			}

			if _, err := s.GetCard(ctx, "nope"); !errors.Is(err, ErrNotFound) {
				t.Errorf("want ErrNotFound, got %v", err)
			}
		})
	}
}

func TestDeckOrderingAndDanglingRefs(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			c1, _ := s.PutCard(ctx, Card{Front: "one", Back: "1"})
			c2, _ := s.PutCard(ctx, Card{Front: "two", Back: "2"})

			_, err := s.PutDeck(ctx, Deck{
				Title: "numbers",
				Items: DeckItems{Items: []DeckItem{
					{CardID: c2.ID, Position: 2},
					{CardID: "missing", Position: 1},
					{CardID: c1.ID, Position: 0},
					{CardID: "", Position: 3},
				}},
			})
			if err != nil {
				t.Fatal(err)
			}

			cards, err := s.CardsByDeckTitle(ctx, "numbers")
			if err != nil {
				t.Fatal(err)
			}
			if len(cards) != 2 || cards[0].ID != c1.ID || cards[1].ID != c2.ID {
				t.Errorf("order wrong: %+v", cards)
			}

			if _, err := s.CardsByDeckTitle(ctx, "absent"); !errors.Is(err, ErrNotFound) {
				t.Errorf("want ErrNotFound, got %v", err)
			}
		})
	}
}

func TestQuizTemplates(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			c, _ := s.PutCard(ctx, Card{Front: "q", Back: "a"})
			_, err := s.PutQuiz(ctx, QuizTemplate{
				Title:       "midterm",
				Description: "practice",
				Items:       DeckItems{Items: []DeckItem{{CardID: c.ID, Position: 0}}},
			})
			if err != nil {
				t.Fatal(err)
			}
			q, err := s.FindQuizByTitle(ctx, "midterm")
			if err != nil {
				t.Fatal(err)
			}
			if q.Description != "practice" {
				t.Errorf("got %+v", q)
			}
			cards, err := s.CardsByQuizTitle(ctx, "midterm")
			if err != nil || len(cards) != 1 {
				t.Errorf("cards = %v, err = %v", cards, err)
			}
		})
	}
}

func TestReviews(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			c, _ := s.PutCard(ctx, Card{Front: "q", Back: "a"})
			rv, err := s.RecordReview(ctx, Review{CardID: c.ID, UserID: "u1", Answer: []string{"a"}, Correct: true})
			if err != nil {
				t.Fatal(err)
			}
			if rv.ID == "" {
				t.Fatal("missing review id")
			}
			list, err := s.ListReviews(ctx, c.ID)
			if err != nil {
				t.Fatal(err)
			}
			if len(list) != 1 || !list[0].Correct || list[0].Answer[0] != "a" {
				t.Errorf("list = %+v", list)
			}
		})
	}
}
