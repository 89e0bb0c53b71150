// Package client - Go-клиент WheelMate API с явной сессией.
//
// Сессия создается только через Login и передается в команды,
// требующие авторизации. Просроченная сессия никогда не отправляется на сервер.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	ErrSessionExpired = errors.New("session expired, log in again")
	ErrNoSession      = errors.New("not logged in")
)

// APIError - ошибка, которую вернул сервер
type APIError struct {
	Status  int    `json:"-"`
	Kind    string `json:"kind"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Kind, e.Message)
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Facility struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Location      Location  `json:"location"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	Accessible    bool      `json:"accessible"`
	RatingValues  []int     `json:"ratingValues"`
	AverageRating float64   `json:"averageRating"`
	OwnerID       string    `json:"ownerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RankedFacility - объект с расстоянием до наблюдателя, nil если неизвестно
type RankedFacility struct {
	Facility
	DistanceKm *float64 `json:"distanceKm"`
}

// FacilityInput - данные нового объекта. Координаты обязательны, ноль допустим.
type FacilityInput struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Type    string   `json:"type"`
	Notes   string   `json:"notes,omitempty"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// Session - выданный сервером токен и его владелец
type Session struct {
	mu        sync.RWMutex
	token     string
	user      User
	expiresAt time.Time
}

func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Valid сообщает, можно ли еще использовать сессию в момент now
func (s *Session) Valid(now time.Time) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && now.Before(s.expiresAt)
}

// Clear завершает сессию
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = User{}
	s.expiresAt = time.Time{}
}

func (s *Session) bearer(now time.Time) (string, error) {
	if s == nil {
		return "", ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	if !now.Before(s.expiresAt) {
		s.token = ""
		s.user = User{}
		s.expiresAt = time.Time{}
		return "", ErrSessionExpired
	}
	return s.token, nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New создает клиент для сервера по адресу baseURL, например http://localhost:5000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login - единственный способ получить сессию
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
		User      User      `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &Session{token: resp.Token, user: resp.User, expiresAt: resp.ExpiresAt}, nil
}

func (c *Client) ListFacilities(ctx context.Context) ([]Facility, error) {
	facilities := make([]Facility, 0)
	if err := c.do(ctx, http.MethodGet, "/api/facilities", nil, nil, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

func (c *Client) CreateFacility(ctx context.Context, session *Session, input FacilityInput) (*Facility, error) {
	var facility Facility
	if err := c.do(ctx, http.MethodPost, "/api/facilities", requireSession(session), input, &facility); err != nil {
		return nil, err
	}
	return &facility, nil
}

func (c *Client) SubmitRating(ctx context.Context, session *Session, facilityID string, rating int, feedback string) (*Facility, error) {
	var facility Facility
	body := map[string]any{"rating": rating, "feedback": feedback}
	path := "/api/facilities/" + url.PathEscape(facilityID) + "/feedback"
	if err := c.do(ctx, http.MethodPost, path, requireSession(session), body, &facility); err != nil {
		return nil, err
	}
	return &facility, nil
}

// Nearest ищет ближайший объект типа facilityType
func (c *Client) Nearest(ctx context.Context, facilityType string, loc Location) (*RankedFacility, error) {
	query := url.Values{}
	query.Set("type", facilityType)
	query.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(loc.Lng, 'f', -1, 64))

	var nearest RankedFacility
	if err := c.do(ctx, http.MethodGet, "/api/facilities/nearest?"+query.Encode(), nil, nil, &nearest); err != nil {
		return nil, err
	}
	return &nearest, nil
}

// sessionRef отличает "сессия не нужна" от "сессия нужна, но nil"
type sessionRef struct {
	session *Session
}

func requireSession(s *Session) *sessionRef {
	return &sessionRef{session: s}
}

func (c *Client) do(ctx context.Context, method, path string, auth *sessionRef, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != nil {
		token, err := auth.session.bearer(c.now())
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode == http.StatusUnauthorized && auth != nil {
			auth.session.Clear()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
