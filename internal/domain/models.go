package domain

import "time"

// User represents the authenticated account returned by /api/auth/me
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction represents a single income or expense entry
type Transaction struct {
	ID          string  `json:"id"`
	Income      bool    `json:"income"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"` // category, see Categories
	Time        string  `json:"time"` // backend timestamp, may lack a zone suffix
}

// TransactionInput is the payload for creating or updating a transaction
type TransactionInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Income      bool    `json:"income"`
}

// PageMetadata describes one page of a paginated listing
type PageMetadata struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// TransactionPage is a page of transactions
type TransactionPage struct {
	Items    []Transaction `json:"items"`
	Metadata PageMetadata  `json:"metadata"`
}

// Advice is the normalised financial analysis text
type Advice struct {
	Text  string
	Error string // non-empty when Text is a fallback message
}

// Tip is the normalised financial tip text
type Tip struct {
	Text  string
	Error string
}

// Categories are the transaction types offered by the create/edit drawers
var Categories = []string{
	"Food",
	"Drink",
	"Clothing",
	"Entertainment",
	"Transportation",
	"Health",
	"Education",
	"Housing",
	"Utilities",
	"Other",
}

// CategoryIcon returns a one-cell glyph for a transaction type
func CategoryIcon(category string) string {
	switch category {
	case "Food":
		return "🍴"
	case "Drink":
		return "🥤"
	case "Clothing":
		return "👕"
	case "Entertainment":
		return "🎮"
	case "Transportation":
		return "🚌"
	case "Health":
		return "💗"
	case "Education":
		return "📖"
	case "Housing":
		return "🏠"
	case "Utilities":
		return "⚡"
	default:
		return "📦"
	}
}
