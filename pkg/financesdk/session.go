package financesdk

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated user. It is safe for concurrent use; its
// fields never change after login.
type Session struct {
	client    *Client
	token     string
	userID    int64
	username  string
	expiresAt time.Time
}

func newSession(c *Client, resp *SessionResponse) *Session {
	return &Session{
		client:    c,
		token:     resp.AccessToken,
		userID:    resp.UserID,
		username:  resp.Username,
		expiresAt: time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

func (s *Session) Token() string    { return s.token }
func (s *Session) UserID() int64    { return s.userID }
func (s *Session) Username() string { return s.username }

// Expired reports whether the token has passed its lifetime.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

// Filter narrows list and report queries. Empty Start/End use the span of
// the ledger.
type Filter struct {
	Start      string
	End        string
	Categories []string
}

func (f Filter) query() string {
	q := url.Values{}
	if f.Start != "" {
		q.Set("start", f.Start)
	}
	if f.End != "" {
		q.Set("end", f.End)
	}
	switch {
	case f.Categories == nil:
	case len(f.Categories) == 0:
		q["category"] = []string{""}
	default:
		q["category"] = f.Categories
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/me", s.token, nil, nil)
	if err != nil {
		return nil, err
	}
	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePasscode replaces the current user's passcode. Existing tokens stay
// valid until they expire.
func (s *Session) ChangePasscode(ctx context.Context, passcode string) error {
	resp, err := s.client.postForm(ctx, http.MethodPut, "/v1/me/passcode", s.token, url.Values{
		"passcode": {passcode},
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) AddTransaction(ctx context.Context, req TransactionRequest) (int64, error) {
	resp, err := s.client.postJSON(ctx, "/v1/transactions", s.token, req)
	if err != nil {
		return 0, err
	}
	var out CreatedResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (s *Session) ListTransactions(ctx context.Context, f Filter) (*TransactionListResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/transactions"+f.query(), s.token, nil, nil)
	if err != nil {
		return nil, err
	}
	var out TransactionListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetTransactions deletes every transaction of the current user.
func (s *Session) ResetTransactions(ctx context.Context) (int64, error) {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/v1/transactions", s.token, nil, nil)
	if err != nil {
		return 0, err
	}
	var out ResetResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}

func (s *Session) Report(ctx context.Context, f Filter) (*ReportResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/report"+f.query(), s.token, nil, nil)
	if err != nil {
		return nil, err
	}
	var out ReportResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Categories(ctx context.Context) ([]string, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/categories", s.token, nil, nil)
	if err != nil {
		return nil, err
	}
	var out CategoriesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Export downloads the full ledger as CSV.
func (s *Session) Export(ctx context.Context) (*Export, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/transactions/export", s.token, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, data)
	}

	out := &Export{Data: data}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		out.Filename = params["filename"]
	}
	return out, nil
}
