package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
	"github.com/SscSPs/pos_inventory_app/internal/core/services"
	"github.com/SscSPs/pos_inventory_app/internal/repositories/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsStore ---
type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) GetSetting(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsStore) SetSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// --- Test Suite ---
type RateStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *kv.MemorySettingsStore
	rates portssvc.RateStoreSvc
}

func (suite *RateStoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = kv.NewMemorySettingsStore()
	suite.rates = services.NewRateStore(suite.store)
}

func (suite *RateStoreTestSuite) TestLoad_EmptyStoragePersistsLocal() {
	suite.rates.Load(suite.ctx)

	suite.False(suite.rates.GetRate().Valid)
	suite.Equal(domain.CurrencyLocal, suite.rates.GetCurrency())

	stored, err := suite.store.GetSetting(suite.ctx, services.SettingActiveCurrency)
	suite.Require().NoError(err)
	suite.Equal("local", stored)
}

func (suite *RateStoreTestSuite) TestLoad_ReadsPersistedValues() {
	suite.Require().NoError(suite.store.SetSetting(suite.ctx, services.SettingExchangeRate, "36.5"))
	suite.Require().NoError(suite.store.SetSetting(suite.ctx, services.SettingActiveCurrency, "reference"))

	suite.rates.Load(suite.ctx)

	suite.Equal(decimal.NewNullDecimal(decimal.RequireFromString("36.5")), suite.rates.GetRate())
	suite.Equal(domain.CurrencyReference, suite.rates.GetCurrency())
}

func (suite *RateStoreTestSuite) TestLoad_UnknownCurrencyReadsAsLocal() {
	suite.Require().NoError(suite.store.SetSetting(suite.ctx, services.SettingActiveCurrency, "usd"))
	suite.rates.Load(suite.ctx)
	suite.Equal(domain.CurrencyLocal, suite.rates.GetCurrency())
}

func (suite *RateStoreTestSuite) TestSetRateInput_Normalizes() {
	suite.rates.Load(suite.ctx)

	suite.rates.SetRateInput(suite.ctx, "  36,5 ")

	suite.Equal("36.5", suite.rates.RawRate())
	suite.True(suite.rates.GetRate().Decimal.Equal(decimal.RequireFromString("36.5")))
	stored, err := suite.store.GetSetting(suite.ctx, services.SettingExchangeRate)
	suite.Require().NoError(err)
	suite.Equal("36.5", stored)
}

func (suite *RateStoreTestSuite) TestSetRateInput_AcceptsGarbage() {
	suite.rates.Load(suite.ctx)

	suite.rates.SetRateInput(suite.ctx, "abc")
	suite.Equal("abc", suite.rates.RawRate())
	suite.False(suite.rates.GetRate().Valid)

	suite.rates.SetRateInput(suite.ctx, "")
	suite.False(suite.rates.GetRate().Valid)
	suite.Equal("Bs --", suite.rates.Display().RateValue)
}

func (suite *RateStoreTestSuite) TestSetRateInput_OnlyFirstCommaReplaced() {
	suite.rates.Load(suite.ctx)
	suite.rates.SetRateInput(suite.ctx, "1,234,5")
	suite.Equal("1.234,5", suite.rates.RawRate())
	suite.False(suite.rates.GetRate().Valid)
}

func (suite *RateStoreTestSuite) TestToggleCurrency() {
	suite.rates.Load(suite.ctx)

	suite.Equal(domain.CurrencyReference, suite.rates.ToggleCurrency(suite.ctx))
	suite.Equal(domain.CurrencyLocal, suite.rates.ToggleCurrency(suite.ctx))
	suite.Equal(domain.CurrencyReference, suite.rates.ToggleCurrency(suite.ctx))

	stored, err := suite.store.GetSetting(suite.ctx, services.SettingActiveCurrency)
	suite.Require().NoError(err)
	suite.Equal("reference", stored)
}

func (suite *RateStoreTestSuite) TestDisplay() {
	suite.rates.Load(suite.ctx)
	suite.rates.SetRateInput(suite.ctx, "36,5")

	display := suite.rates.Display()
	suite.Equal(domain.RateDisplay{
		RateLabel:     "BCV",
		RateValue:     "Bs 36.50",
		RawRate:       "36.5",
		Currency:      domain.CurrencyLocal,
		CurrencyLabel: "Bs",
		ToggleLabel:   "Show in dollars",
		TogglePressed: false,
	}, display)

	suite.rates.SetCurrency(suite.ctx, domain.CurrencyReference)
	display = suite.rates.Display()
	suite.Equal("USD", display.CurrencyLabel)
	suite.True(display.TogglePressed)
}

func (suite *RateStoreTestSuite) TestOnChange() {
	suite.rates.Load(suite.ctx)
	calls := 0
	unsubscribe := suite.rates.OnChange(func() { calls++ })

	suite.rates.SetRateInput(suite.ctx, "40")
	suite.rates.ToggleCurrency(suite.ctx)
	suite.rates.SetCurrency(suite.ctx, domain.CurrencyLocal)
	suite.Equal(3, calls)

	unsubscribe()
	unsubscribe()
	suite.rates.SetRateInput(suite.ctx, "41")
	suite.Equal(3, calls)
}

func (suite *RateStoreTestSuite) TestStoresShareStorage() {
	suite.rates.Load(suite.ctx)
	suite.rates.SetRateInput(suite.ctx, "38")
	suite.rates.ToggleCurrency(suite.ctx)

	other := services.NewRateStore(suite.store)
	other.Load(suite.ctx)
	suite.Equal("38", other.RawRate())
	suite.Equal(domain.CurrencyReference, other.GetCurrency())
}

func TestRateStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RateStoreTestSuite))
}

func TestRateStore_StorageUnavailableKeepsMemoryValues(t *testing.T) {
	ctx := context.Background()
	storageErr := apperrors.NewStorageError("get", "x", assert.AnError)

	store := new(MockSettingsStore)
	store.On("GetSetting", mock.Anything, mock.Anything).Return("", storageErr)
	store.On("SetSetting", mock.Anything, mock.Anything, mock.Anything).Return(storageErr)

	rates := services.NewRateStore(store)
	rates.Load(ctx)
	assert.Equal(t, domain.CurrencyLocal, rates.GetCurrency())
	assert.False(t, rates.GetRate().Valid)

	rates.SetRateInput(ctx, "36,5")
	rates.ToggleCurrency(ctx)
	assert.Equal(t, "36.5", rates.RawRate())
	assert.Equal(t, domain.CurrencyReference, rates.GetCurrency())

	// A later load with storage still down keeps what was written in this process.
	rates.Load(ctx)
	assert.Equal(t, "36.5", rates.RawRate())
	assert.Equal(t, domain.CurrencyReference, rates.GetCurrency())

	store.AssertCalled(t, "SetSetting", mock.Anything, services.SettingExchangeRate, "36.5")
	store.AssertCalled(t, "SetSetting", mock.Anything, services.SettingActiveCurrency, "reference")
}

func TestNormalizeRateInput(t *testing.T) {
	assert.Equal(t, "36.5", services.NormalizeRateInput(" 36,5\t"))
	assert.Equal(t, "36.5", services.NormalizeRateInput("36.5"))
	assert.Equal(t, "", services.NormalizeRateInput("   "))
}
