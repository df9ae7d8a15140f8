package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
	"github.com/SscSPs/pos_inventory_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Setting keys shared with every process that reads the rate.
const (
	SettingExchangeRate   = "exchange_rate"
	SettingActiveCurrency = "active_currency"
)

// rateStoreImpl implements the RateStoreSvc interface.
// Persisted storage is write-through; when it fails the value lives on in memory.
type rateStoreImpl struct {
	BaseService
	store portsrepo.SettingsStoreFacade

	// writeMu orders mutations so storage sees them in the same order as the cache.
	writeMu sync.Mutex

	mu        sync.RWMutex
	raw       string
	currency  domain.DisplayCurrency
	fallback  map[string]string
	listeners map[uint64]func()
	nextID    uint64
}

// NewRateStore creates the rate store over store. Call Load before first use.
func NewRateStore(store portsrepo.SettingsStoreFacade) portssvc.RateStoreSvc {
	return &rateStoreImpl{
		store:     store,
		currency:  domain.CurrencyLocal,
		fallback:  make(map[string]string),
		listeners: make(map[uint64]func()),
	}
}

var _ portssvc.RateStoreSvc = (*rateStoreImpl)(nil)

// NormalizeRateInput trims raw and turns the first decimal comma into a point.
func NormalizeRateInput(raw string) string {
	return strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
}

func (s *rateStoreImpl) Load(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, found := s.read(ctx, SettingExchangeRate)
	if !found {
		raw = ""
	}

	tag, found := s.read(ctx, SettingActiveCurrency)
	currency := domain.ParseDisplayCurrency(tag)
	if !found {
		s.persist(ctx, SettingActiveCurrency, string(domain.CurrencyLocal))
	}

	s.mu.Lock()
	s.raw = raw
	s.currency = currency
	s.mu.Unlock()

	s.LogDebug(ctx, "Rate settings loaded",
		slog.String("exchange_rate", raw),
		slog.String("active_currency", string(currency)))
	s.notify()
}

func (s *rateStoreImpl) GetRate() decimal.NullDecimal {
	raw := s.RawRate()
	if raw == "" {
		return decimal.NullDecimal{}
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(rate)
}

func (s *rateStoreImpl) RawRate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

func (s *rateStoreImpl) GetCurrency() domain.DisplayCurrency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

func (s *rateStoreImpl) Display() domain.RateDisplay {
	s.mu.RLock()
	raw, currency := s.raw, s.currency
	s.mu.RUnlock()

	return domain.RateDisplay{
		RateLabel:     domain.RateLabel,
		RateValue:     utils.FormatRate(s.GetRate()),
		RawRate:       raw,
		Currency:      currency,
		CurrencyLabel: currency.Label(),
		ToggleLabel:   currency.ToggleLabel(),
		TogglePressed: currency == domain.CurrencyReference,
	}
}

func (s *rateStoreImpl) SetRateInput(ctx context.Context, raw string) {
	normalized := NormalizeRateInput(raw)

	s.writeMu.Lock()
	s.mu.Lock()
	s.raw = normalized
	s.mu.Unlock()
	s.persist(ctx, SettingExchangeRate, normalized)
	s.writeMu.Unlock()

	s.notify()
}

func (s *rateStoreImpl) SetCurrency(ctx context.Context, currency domain.DisplayCurrency) {
	currency = domain.ParseDisplayCurrency(string(currency))

	s.writeMu.Lock()
	s.mu.Lock()
	s.currency = currency
	s.mu.Unlock()
	s.persist(ctx, SettingActiveCurrency, string(currency))
	s.writeMu.Unlock()

	s.notify()
}

func (s *rateStoreImpl) ToggleCurrency(ctx context.Context) domain.DisplayCurrency {
	s.writeMu.Lock()
	s.mu.Lock()
	next := s.currency.Toggle()
	s.currency = next
	s.mu.Unlock()
	s.persist(ctx, SettingActiveCurrency, string(next))
	s.writeMu.Unlock()

	s.notify()
	return next
}

func (s *rateStoreImpl) OnChange(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *rateStoreImpl) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// read returns the stored value of key and whether one exists anywhere.
// Storage failures fall back to values kept from earlier failed writes.
func (s *rateStoreImpl) read(ctx context.Context, key string) (string, bool) {
	val, err := s.store.GetSetting(ctx, key)
	if err == nil {
		return val, true
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, err, "Settings storage unavailable, using in-memory value", slog.String("key", key))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.fallback[key]
	return val, ok
}

func (s *rateStoreImpl) persist(ctx context.Context, key, value string) {
	err := s.store.SetSetting(ctx, key, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fallback[key] = value
		s.LogWarn(ctx, err, "Settings storage unavailable, keeping value in memory", slog.String("key", key))
		return
	}
	delete(s.fallback, key)
}
