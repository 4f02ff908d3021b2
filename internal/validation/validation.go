package validation

import (
	"errors"
	"fmt"
	"math"
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"coinmind/internal/domain"
)

// ErrInvalid is wrapped by every FieldErrors value
var ErrInvalid = errors.New("invalid input")

// FieldErrors maps a form field to its messages, in the order they were found
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Error implements error
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], "; ")))
	}
	return strings.Join(parts, ", ")
}

// Unwrap lets errors.Is match ErrInvalid
func (fe FieldErrors) Unwrap() error { return ErrInvalid }

// First returns the first message for field, or ""
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Signup is the validated signup form
type Signup struct {
	Name     string
	Email    string
	Password string
}

// ValidateSignup trims and checks the signup fields
func ValidateSignup(name, email, password string) (Signup, error) {
	s := Signup{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}
	fe := FieldErrors{}

	if len([]rune(s.Name)) < 2 {
		fe.add("name", "Name must be at least 2 characters long.")
	}
	if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
		fe.add("email", "Please enter a valid email.")
	}
	if len([]rune(s.Password)) < 8 {
		fe.add("password", "Be at least 8 characters long")
	}
	if !strings.ContainsFunc(s.Password, isASCIILetter) {
		fe.add("password", "Contain at least one letter.")
	}
	return s, fe.orNil()
}

// ValidateLogin checks that both credentials are present
func ValidateLogin(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("%w: Invalid form submission.", ErrInvalid)
	}
	return nil
}

// ValidateTransaction parses the drawer form. Checks run in the same order
// as the form fields so the first message matches the first bad field.
func ValidateTransaction(description, amount, category string, income bool) (domain.TransactionInput, error) {
	in := domain.TransactionInput{
		Description: strings.TrimSpace(description),
		Type:        strings.TrimSpace(category),
		Income:      income,
	}
	fe := FieldErrors{}

	if in.Description == "" {
		fe.add("description", "Description is required")
	}
	amountStr := strings.TrimSpace(amount)
	if amountStr == "" {
		amountStr = "0"
	}
	v, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		fe.add("amount", "Amount must be a positive number")
	} else {
		in.Amount = v
	}
	if in.Type == "" {
		fe.add("type", "Type is required")
	}
	return in, fe.orNil()
}

// FirstMessage returns the message for the first failing field in order
func FirstMessage(err error, order ...string) string {
	var fe FieldErrors
	if !errors.As(err, &fe) {
		if err != nil {
			return err.Error()
		}
		return ""
	}
	for _, f := range order {
		if msg := fe.First(f); msg != "" {
			return msg
		}
	}
	return fe.Error()
}

func isASCIILetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}
