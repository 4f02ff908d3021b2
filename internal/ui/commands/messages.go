package commands

import (
	"coinmind/internal/currency"
	"coinmind/internal/domain"
	"coinmind/internal/ui/navigation"
)

// NavigateMsg asks the root model to switch routes. Back returns to the
// previous route instead.
type NavigateMsg struct {
	Route navigation.Route
	Back  bool
}

// LoginResultMsg reports the outcome of a login attempt
type LoginResultMsg struct {
	Err error
}

// SignupResultMsg reports the outcome of a signup attempt
type SignupResultMsg struct {
	Err error
}

// TransactionsLoadedMsg carries one page of the transaction list. Gen is
// the generation of the page instance that asked for it.
type TransactionsLoadedMsg struct {
	Gen    uint64
	Page   int
	Result *domain.TransactionPage
	Err    error
}

// TransactionSavedMsg reports a create or update
type TransactionSavedMsg struct {
	Transaction domain.Transaction
	Created     bool
	Err         error
}

// TransactionDeletedMsg reports a delete
type TransactionDeletedMsg struct {
	ID  string
	Err error
}

// AdviceLoadedMsg carries the financial analysis text
type AdviceLoadedMsg struct {
	Advice domain.Advice
	Err    error
}

// AdviceAudioSavedMsg reports where the audio advice was written
type AdviceAudioSavedMsg struct {
	Path string
	Err  error
}

// TipLoadedMsg carries a financial tip
type TipLoadedMsg struct {
	Tip domain.Tip
	Err error
}

// CurrenciesLoadedMsg carries the currency codes for the converter
type CurrenciesLoadedMsg struct {
	Codes []string
	Err   error
}

// ConvertedMsg carries the result of conversion request Seq
type ConvertedMsg struct {
	Seq     int
	Reverse bool
	Result  currency.Conversion
	Err     error
}

// LoggedOutMsg reports that the session was removed
type LoggedOutMsg struct {
	Err error
}

// CopiedMsg reports a clipboard write
type CopiedMsg struct {
	Err error
}
