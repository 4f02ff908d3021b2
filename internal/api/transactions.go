package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"coinmind/internal/domain"
)

// ListTransactions fetches one page of the user's transactions. Pages are
// 1-based; smaller values are coerced to 1.
func (c *Client) ListTransactions(ctx context.Context, page, pageSize int) (*domain.TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(pageSize)},
	}

	var out domain.TransactionPage
	if err := c.doJSON(ctx, "Fetch transactions", http.MethodGet, "/api/transactions/", q, nil, &out); err != nil {
		return nil, err
	}
	if out.Metadata.Page == 0 {
		out.Metadata.Page = page
	}
	return &out, nil
}

// CreateTransaction stores a new transaction
func (c *Client) CreateTransaction(ctx context.Context, in domain.TransactionInput) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := c.doJSON(ctx, "Create transaction", http.MethodPost, "/api/transactions/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTransaction replaces the transaction with the given id
func (c *Client) UpdateTransaction(ctx context.Context, id string, in domain.TransactionInput) (*domain.Transaction, error) {
	if err := checkID(id); err != nil {
		return nil, fmt.Errorf("Update transaction: %w", err)
	}
	var out domain.Transaction
	if err := c.doJSON(ctx, "Update transaction", http.MethodPut, "/api/transactions/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = id
	}
	return &out, nil
}

// DeleteTransaction removes the transaction with the given id
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return fmt.Errorf("Delete transaction: %w", err)
	}
	_, err := c.do(ctx, request{op: "Delete transaction", method: http.MethodDelete, path: "/api/transactions/" + id})
	return err
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid transaction id %q", id)
	}
	return nil
}
