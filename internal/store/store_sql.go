package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutCard(ctx context.Context, c Card) (Card, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO cards (id,front,back,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET front=EXCLUDED.front, back=EXCLUDED.back`,
		c.ID, c.Front, c.Back, c.CreatedAt)
	return c, err
}

func (s *SQLStore) GetCard(ctx context.Context, id string) (Card, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,front,back,created_at FROM cards WHERE id=$1`, id)
	var c Card
	if err := row.Scan(&c.ID, &c.Front, &c.Back, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Card{}, ErrNotFound
		}
		return Card{}, err
	}
	return c, nil
}

func (s *SQLStore) ListCards(ctx context.Context) ([]Card, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,front,back,created_at FROM cards ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Card{}
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.Front, &c.Back, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutDeck(ctx context.Context, d Deck) (Deck, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	items, err := json.Marshal(d.Items)
	if err != nil {
		return Deck{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO decks (id,title,items_json)
		VALUES ($1,$2,$3)
		ON CONFLICT (title) DO UPDATE SET items_json=EXCLUDED.items_json`,
		d.ID, d.Title, string(items))
	return d, err
}

func (s *SQLStore) FindDeckByTitle(ctx context.Context, title string) (Deck, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,items_json FROM decks WHERE title=$1`, title)
	var d Deck
	var items string
	if err := row.Scan(&d.ID, &d.Title, &items); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Deck{}, ErrNotFound
		}
		return Deck{}, err
	}
	if err := json.Unmarshal([]byte(items), &d.Items); err != nil {
		return Deck{}, err
	}
	return d, nil
}

func (s *SQLStore) CardsByDeckTitle(ctx context.Context, title string) ([]Card, error) {
	d, err := s.FindDeckByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return s.cardsByItems(ctx, d.Items)
}

func (s *SQLStore) PutQuiz(ctx context.Context, q QuizTemplate) (QuizTemplate, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	items, err := json.Marshal(q.Items)
	if err != nil {
		return QuizTemplate{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quiz_templates (id,title,description,items_json)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (title) DO UPDATE SET description=EXCLUDED.description, items_json=EXCLUDED.items_json`,
		q.ID, q.Title, q.Description, string(items))
	return q, err
}

func (s *SQLStore) FindQuizByTitle(ctx context.Context, title string) (QuizTemplate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,description,items_json FROM quiz_templates WHERE title=$1`, title)
	var q QuizTemplate
	var items string
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &items); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QuizTemplate{}, ErrNotFound
		}
		return QuizTemplate{}, err
	}
	if err := json.Unmarshal([]byte(items), &q.Items); err != nil {
		return QuizTemplate{}, err
	}
	return q, nil
}

func (s *SQLStore) CardsByQuizTitle(ctx context.Context, title string) ([]Card, error) {
	q, err := s.FindQuizByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return s.cardsByItems(ctx, q.Items)
}

// cardsByItems fetches referenced cards one by one, keeping item order
// and skipping dangling references. Decks are small; no need for an
// IN-clause here.
func (s *SQLStore) cardsByItems(ctx context.Context, items DeckItems) ([]Card, error) {
	out := []Card{}
	for _, id := range orderedCardIDs(items) {
		c, err := s.GetCard(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *SQLStore) RecordReview(ctx context.Context, rv Review) (Review, error) {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.CreatedAt == 0 {
		rv.CreatedAt = time.Now().Unix()
	}
	answer, err := json.Marshal(rv.Answer)
	if err != nil {
		return Review{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO reviews (id,card_id,user_id,answer_json,correct,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		rv.ID, rv.CardID, rv.UserID, string(answer), rv.Correct, rv.CreatedAt)
	return rv, err
}

func (s *SQLStore) ListReviews(ctx context.Context, cardID string) ([]Review, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,card_id,user_id,answer_json,correct,created_at
		FROM reviews WHERE card_id=$1 ORDER BY created_at, id`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Review{}
	for rows.Next() {
		var rv Review
		var answer string
		if err := rows.Scan(&rv.ID, &rv.CardID, &rv.UserID, &answer, &rv.Correct, &rv.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answer), &rv.Answer); err != nil {
			rv.Answer = nil
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
