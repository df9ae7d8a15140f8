package services

import (
	"context"

	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc exposes the current exchange rate and display currency
type RateReaderSvc interface {
	// GetRate returns the last stored rate; Valid is false when unset or unparsable.
	GetRate() decimal.NullDecimal

	// RawRate returns the verbatim stored rate text.
	RawRate() string

	// GetCurrency returns the active display currency.
	GetCurrency() domain.DisplayCurrency

	// Display returns the strings of the rate widget.
	Display() domain.RateDisplay
}

// RateWriterSvc mutates the exchange rate and display currency
type RateWriterSvc interface {
	// SetRateInput normalizes and stores raw rate input. It never rejects.
	SetRateInput(ctx context.Context, raw string)

	// SetCurrency persists the active display currency.
	SetCurrency(ctx context.Context, currency domain.DisplayCurrency)

	// ToggleCurrency flips the display currency and returns the new one.
	ToggleCurrency(ctx context.Context) domain.DisplayCurrency
}

// RateStoreSvc is the process-wide rate settings object shared by all screens
type RateStoreSvc interface {
	RateReaderSvc
	RateWriterSvc

	// Load reads the persisted settings once at screen start.
	Load(ctx context.Context)

	// OnChange registers fn to run after every mutation and returns an unsubscribe func.
	OnChange(fn func()) func()
}

// StatusReporter receives status tuples emitted by a screen
type StatusReporter interface {
	Report(msg domain.StatusMessage)
}

// InventoryScreenSvc is the inventory view controller
type InventoryScreenSvc interface {
	// Load performs the first fetch after construction.
	Load(ctx context.Context) error

	// Reload fetches the item list and replaces the snapshot.
	Reload(ctx context.Context) error

	// ApplyFilter returns the snapshot subset matching term.
	ApplyFilter(term string) []domain.Item

	// SetSearch stores the search term and re-renders.
	SetSearch(term string)

	// View returns the current render.
	View() domain.InventoryView

	// EditField updates a row buffer and schedules its debounced save.
	EditField(itemID int64, field domain.EditField, value string) error

	// SubmitInsert validates and inserts a new item, returning the form to display.
	SubmitInsert(ctx context.Context, form domain.InsertForm) (domain.InsertForm, error)

	// SetRateInput forwards raw rate input to the rate store.
	SetRateInput(ctx context.Context, raw string)

	// ToggleCurrency flips the display currency without re-fetching.
	ToggleCurrency(ctx context.Context) domain.DisplayCurrency

	// Close drops pending saves and detaches the screen.
	Close()
}
