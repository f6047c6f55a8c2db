package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type Store interface {
	PutCard(ctx context.Context, c Card) (Card, error)
	GetCard(ctx context.Context, id string) (Card, error)
	ListCards(ctx context.Context) ([]Card, error)

	PutDeck(ctx context.Context, d Deck) (Deck, error)
	FindDeckByTitle(ctx context.Context, title string) (Deck, error)
	CardsByDeckTitle(ctx context.Context, title string) ([]Card, error)

	PutQuiz(ctx context.Context, q QuizTemplate) (QuizTemplate, error)
	FindQuizByTitle(ctx context.Context, title string) (QuizTemplate, error)
	CardsByQuizTitle(ctx context.Context, title string) ([]Card, error)

	RecordReview(ctx context.Context, rv Review) (Review, error)
	ListReviews(ctx context.Context, cardID string) ([]Review, error)
}

// orderedCardIDs sorts deck/quiz items by position and drops entries
// without a card id.
func orderedCardIDs(items DeckItems) []string {
	sorted := make([]DeckItem, len(items.Items))
	copy(sorted, items.Items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	ids := make([]string, 0, len(sorted))
	for _, it := range sorted {
		if it.CardID != "" {
			ids = append(ids, it.CardID)
		}
	}
	return ids
}

// memoryStore is the dev/test store.
type memoryStore struct {
	mu      sync.RWMutex
	cards   map[string]Card
	decks   map[string]Deck // by title
	quizzes map[string]QuizTemplate
	reviews map[string][]Review // by card id
}

func NewInMemoryStore() Store {
	return &memoryStore{
		cards:   map[string]Card{},
		decks:   map[string]Deck{},
		quizzes: map[string]QuizTemplate{},
		reviews: map[string][]Review{},
	}
}

func (m *memoryStore) PutCard(_ context.Context, c Card) (Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}
	m.cards[c.ID] = c
	return c, nil
}

func (m *memoryStore) GetCard(_ context.Context, id string) (Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cards[id]
	if !ok {
		return Card{}, ErrNotFound
	}
	return c, nil
}

func (m *memoryStore) ListCards(_ context.Context) ([]Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Card, 0, len(m.cards))
	for _, c := range m.cards {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) PutDeck(_ context.Context, d Deck) (Deck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	m.decks[d.Title] = d
	return d, nil
}

func (m *memoryStore) FindDeckByTitle(_ context.Context, title string) (Deck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.decks[title]
	if !ok {
		return Deck{}, ErrNotFound
	}
	return d, nil
}

func (m *memoryStore) CardsByDeckTitle(ctx context.Context, title string) ([]Card, error) {
	d, err := m.FindDeckByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return m.cardsByItems(d.Items), nil
}

func (m *memoryStore) PutQuiz(_ context.Context, q QuizTemplate) (QuizTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	m.quizzes[q.Title] = q
	return q, nil
}

func (m *memoryStore) FindQuizByTitle(_ context.Context, title string) (QuizTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[title]
	if !ok {
		return QuizTemplate{}, ErrNotFound
	}
	return q, nil
}

func (m *memoryStore) CardsByQuizTitle(ctx context.Context, title string) ([]Card, error) {
	q, err := m.FindQuizByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return m.cardsByItems(q.Items), nil
}

// cardsByItems keeps item order and skips references to cards that no
// longer exist.
func (m *memoryStore) cardsByItems(items DeckItems) []Card {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Card{}
	for _, id := range orderedCardIDs(items) {
		if c, ok := m.cards[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (m *memoryStore) RecordReview(_ context.Context, rv Review) (Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[rv.CardID]; !ok {
		return Review{}, ErrNotFound
	}
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.CreatedAt == 0 {
		rv.CreatedAt = time.Now().Unix()
	}
	m.reviews[rv.CardID] = append(m.reviews[rv.CardID], rv)
	return rv, nil
}

func (m *memoryStore) ListReviews(_ context.Context, cardID string) ([]Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Review, len(m.reviews[cardID]))
	copy(out, m.reviews[cardID])
	return out, nil
}
