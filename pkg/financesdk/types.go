package financesdk

import "github.com/shopspring/decimal"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Account Types
// ============================================================================

// RegisterResponse is returned from POST /v1/users.
type RegisterResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// SessionResponse is returned from POST /v1/session.
type SessionResponse struct {
	// AccessToken is the signed session token to send as a Bearer token
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in"`

	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// UserResponse is returned from GET /v1/me.
type UserResponse struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ============================================================================
// Ledger Types
// ============================================================================

// TransactionRequest is the body of POST /v1/transactions.
type TransactionRequest struct {
	// Date is a calendar day, YYYY-MM-DD
	Date string `json:"date"`

	// Amount must be greater than zero with at most 2 decimal places
	Amount decimal.Decimal `json:"amount"`

	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// CreatedResponse carries the id of a newly created row.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// Transaction is one ledger row as returned by the API.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// Criteria echoes the filter the server actually applied, defaults filled in.
type Criteria struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Categories []string `json:"categories"`

	// Available lists the categories present in the selected date range
	Available []string `json:"available_categories"`
}

// Summary holds the headline metrics. Average is omitted when Count is zero.
type Summary struct {
	Total   decimal.Decimal  `json:"total"`
	Count   int              `json:"count"`
	Average *decimal.Decimal `json:"average,omitempty"`
}

// TransactionListResponse is returned from GET /v1/transactions.
type TransactionListResponse struct {
	Criteria     Criteria      `json:"criteria"`
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
}

// MonthTotal is one bucket of the monthly series.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategoryShare is one row of the category breakdown.
type CategoryShare struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Percent  decimal.Decimal `json:"percent"`
}

// ReportResponse is returned from GET /v1/report.
type ReportResponse struct {
	Criteria     Criteria        `json:"criteria"`
	Transactions []Transaction   `json:"transactions"`
	Summary      Summary         `json:"summary"`
	Monthly      []MonthTotal    `json:"monthly"`
	Breakdown    []CategoryShare `json:"breakdown"`
}

// CategoriesResponse is returned from GET /v1/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ResetResponse is returned from DELETE /v1/transactions.
type ResetResponse struct {
	Deleted int64 `json:"deleted"`
}

// Export is a downloaded CSV file.
type Export struct {
	Filename string
	Data     []byte
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the session signing capability status
	Signer string `json:"signer"`
}
