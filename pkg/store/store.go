package store

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"crux/pkg/models"
)

// ErrEmailTaken reports a signup attempt with an already registered email
var ErrEmailTaken = errors.New("user with this email already exists")

// Store provides in-memory storage for users and the mock article set.
// It is a non-durable stand-in for a real persistence layer; data lives
// for the process lifetime only.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	nextID   int
	articles []models.Article
}

// New creates a new Store seeded with the fixed mock article set
func New() *Store {
	return &Store{
		nextID:   1,
		articles: mockArticles(),
	}
}

// ============== User operations ==============

// FindUserByEmail returns the user with the given email, if any
func (s *Store) FindUserByEmail(email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, true
		}
	}
	return nil, false
}

// FindUserByID returns the user with the given id, if any
func (s *Store) FindUserByID(id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, true
		}
	}
	return nil, false
}

// CreateUser adds a new user and assigns the next sequential id.
// The password must already be hashed. The email uniqueness check runs
// under the same write lock as the insert so concurrent signups with
// the same email cannot both succeed.
func (s *Store) CreateUser(username, email, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:        strconv.Itoa(s.nextID),
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.users = append(s.users, user)
	return user, nil
}

// ============== Article operations ==============

// GetArticles returns up to limit articles in fixed order
func (s *Store) GetArticles(limit int) []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.articles) {
		limit = len(s.articles)
	}
	result := make([]models.Article, limit)
	copy(result, s.articles[:limit])
	return result
}

// GetArticleByID returns the article with the given id, if any
func (s *Store) GetArticleByID(id string) (*models.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == id {
			article := a
			return &article, true
		}
	}
	return nil, false
}

// SearchArticles returns articles whose title or description contains
// the query, case-insensitively, preserving the fixed order
func (s *Store) SearchArticles(query string) []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	result := make([]models.Article, 0)
	for _, a := range s.articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			result = append(result, a)
		}
	}
	return result
}
