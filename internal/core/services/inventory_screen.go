package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
	"github.com/SscSPs/pos_inventory_app/internal/middleware"
	"github.com/SscSPs/pos_inventory_app/internal/utils"
	"github.com/SscSPs/pos_inventory_app/internal/utils/debounce"
	"github.com/shopspring/decimal"
)

// Status texts shown by the inventory screen.
const (
	MsgCheckValues    = "Check the values before saving."
	MsgChangesSaved   = "Changes saved."
	MsgFillInsertForm = "Fill in ID, name and price correctly."
	MsgInvalidQty     = "Invalid quantity."
	MsgProductAdded   = "Product added."
	MsgNoResults      = "No results."
)

// inventoryScreenImpl implements the InventoryScreenSvc interface.
// All handlers are serialized by mu; remote calls run without it.
type inventoryScreenImpl struct {
	BaseService
	repo      portsrepo.InventoryRepositoryFacade
	rates     portssvc.RateStoreSvc
	role      domain.ScreenRole
	reporter  portssvc.StatusReporter
	saveCtx   context.Context
	saveOpts  []debounce.Option
	debouncer *debounce.Debouncer[int64]

	mu           sync.Mutex
	state        domain.ScreenState
	items        []domain.Item
	buffers      map[int64]*domain.EditBuffer
	search       string
	status       domain.StatusMessage
	insertStatus domain.StatusMessage
	insertForm   domain.InsertForm
	loadGen      uint64
	closed       bool
	view         domain.InventoryView
	unsubscribe  func()
}

// ScreenOption is a functional option for configuring the inventory screen
type ScreenOption func(*inventoryScreenImpl)

// WithStatusReporter forwards every status message to reporter.
// Report is called with the screen lock held and must not call back into the screen.
func WithStatusReporter(reporter portssvc.StatusReporter) ScreenOption {
	return func(s *inventoryScreenImpl) {
		s.reporter = reporter
	}
}

// WithDebounceOptions configures the per-row save debouncer.
func WithDebounceOptions(opts ...debounce.Option) ScreenOption {
	return func(s *inventoryScreenImpl) {
		s.saveOpts = append(s.saveOpts, opts...)
	}
}

// WithSaveLogger sets the logger used by timer-driven saves, which have no request context.
func WithSaveLogger(logger *slog.Logger) ScreenOption {
	return func(s *inventoryScreenImpl) {
		s.saveCtx = middleware.WithLogger(context.Background(), logger)
	}
}

// NewInventoryScreen creates the view controller in the Loading state.
// isAdmin is read once here and fixed for the screen's lifetime.
func NewInventoryScreen(repo portsrepo.InventoryRepositoryFacade, rates portssvc.RateStoreSvc, isAdmin bool, options ...ScreenOption) portssvc.InventoryScreenSvc {
	s := &inventoryScreenImpl{
		repo:    repo,
		rates:   rates,
		role:    domain.RoleFromAdminFlag(isAdmin),
		saveCtx: context.Background(),
		state:   domain.StateLoading,
		buffers: make(map[int64]*domain.EditBuffer),
	}

	for _, option := range options {
		option(s)
	}

	s.debouncer = debounce.New(s.save, s.saveOpts...)
	s.unsubscribe = rates.OnChange(s.rerender)

	s.mu.Lock()
	s.render()
	s.mu.Unlock()
	return s
}

var _ portssvc.InventoryScreenSvc = (*inventoryScreenImpl)(nil)

func (s *inventoryScreenImpl) Load(ctx context.Context) error {
	return s.Reload(ctx)
}

func (s *inventoryScreenImpl) Reload(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.loadGen++
	gen := s.loadGen
	if s.status.Scope == domain.ScopeLoad {
		s.status = domain.StatusMessage{}
	}
	s.render()
	s.mu.Unlock()

	items, err := s.repo.ListItems(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.loadGen {
		s.LogDebug(ctx, "Discarding superseded inventory load", slog.Uint64("generation", gen))
		return nil
	}

	if err != nil {
		s.LogError(ctx, err, "Failed to load inventory")
		s.setStatus(domain.StatusMessage{
			Scope:   domain.ScopeLoad,
			Message: fmt.Sprintf("Error loading: %v", err),
			IsError: true,
		})
		if s.state == domain.StateLoading {
			s.state = domain.StateLoadError
		}
		s.render()
		return err
	}

	s.items = append(make([]domain.Item, 0, len(items)), items...)
	s.state = domain.StateReady
	if s.role.CanEdit() {
		// The fresh snapshot replaces unsaved edits.
		if dropped := s.debouncer.CancelAll(); dropped > 0 {
			s.LogInfo(ctx, "Dropped pending row saves on reload", slog.Int("count", dropped))
		}
		s.buffers = make(map[int64]*domain.EditBuffer, len(s.items))
		for _, it := range s.items {
			s.buffers[it.ID] = domain.NewEditBuffer(it)
		}
	}
	s.render()
	s.LogDebug(ctx, "Inventory loaded", slog.Int("items", len(s.items)))
	return nil
}

func (s *inventoryScreenImpl) ApplyFilter(term string) []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterItems(s.items, term)
}

func (s *inventoryScreenImpl) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = strings.TrimSpace(term)
	s.render()
}

func (s *inventoryScreenImpl) View() domain.InventoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.view
	view.Rows = append([]domain.InventoryRow(nil), s.view.Rows...)
	return view
}

func (s *inventoryScreenImpl) EditField(itemID int64, field domain.EditField, value string) error {
	if !s.role.CanEdit() {
		return fmt.Errorf("%w: editing items", apperrors.ErrForbidden)
	}
	if !field.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown field %q", field))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	buf, ok := s.buffers[itemID]
	if !ok {
		return fmt.Errorf("%w: item %d is not on screen", apperrors.ErrNotFound, itemID)
	}
	buf.Set(field, value)
	s.debouncer.Schedule(itemID)
	s.render()
	return nil
}

func (s *inventoryScreenImpl) SubmitInsert(ctx context.Context, form domain.InsertForm) (domain.InsertForm, error) {
	if !s.role.CanEdit() {
		return form, fmt.Errorf("%w: adding items", apperrors.ErrForbidden)
	}

	item, err := parseInsertForm(form)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return form, nil
	}
	s.insertForm = form
	if err != nil {
		s.setInsertStatus(domain.StatusMessage{Scope: domain.ScopeInsert, Message: validationText(err), IsError: true})
		s.render()
		s.mu.Unlock()
		return form, err
	}
	s.mu.Unlock()

	err = s.repo.InsertItem(ctx, item)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return form, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to insert item", slog.Int64("item_id", item.ID))
		s.setInsertStatus(domain.StatusMessage{
			Scope:   domain.ScopeInsert,
			Message: fmt.Sprintf("Error adding: %v", err),
			IsError: true,
		})
		s.render()
		s.mu.Unlock()
		return form, err
	}
	s.setInsertStatus(domain.StatusMessage{Scope: domain.ScopeInsert, Message: MsgProductAdded})
	s.insertForm = domain.InsertForm{}
	s.render()
	s.mu.Unlock()

	s.LogInfo(ctx, "Item inserted", slog.Int64("item_id", item.ID))
	// A failed reload reports through the load status; the insert itself succeeded.
	if err := s.Reload(ctx); err != nil {
		s.LogDebug(ctx, "Reload after insert failed", slog.String("error", err.Error()))
	}
	return domain.InsertForm{}, nil
}

func (s *inventoryScreenImpl) SetRateInput(ctx context.Context, raw string) {
	s.rates.SetRateInput(ctx, raw)
}

func (s *inventoryScreenImpl) ToggleCurrency(ctx context.Context) domain.DisplayCurrency {
	return s.rates.ToggleCurrency(ctx)
}

func (s *inventoryScreenImpl) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	dropped := s.debouncer.CancelAll()
	s.mu.Unlock()

	s.unsubscribe()
	if dropped > 0 {
		s.LogInfo(s.saveCtx, "Screen closed with unsaved row edits", slog.Int("count", dropped))
	}
}

// save runs when a row's quiet period ends.
func (s *inventoryScreenImpl) save(itemID int64) {
	ctx := s.saveCtx

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	buf, ok := s.buffers[itemID]
	if !ok {
		s.mu.Unlock()
		return
	}
	item, err := parseEditBuffer(itemID, *buf)
	if err != nil {
		s.setStatus(domain.StatusMessage{Scope: domain.ScopeRow, RowID: itemID, Message: MsgCheckValues, IsError: true})
		s.render()
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	err = s.repo.UpdateItem(ctx, item)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.Int64("item_id", itemID))
		s.setStatus(domain.StatusMessage{
			Scope:   domain.ScopeRow,
			RowID:   itemID,
			Message: fmt.Sprintf("Error saving: %v", err),
			IsError: true,
		})
	} else {
		s.setStatus(domain.StatusMessage{Scope: domain.ScopeRow, RowID: itemID, Message: MsgChangesSaved})
	}
	s.render()
}

func (s *inventoryScreenImpl) rerender() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.render()
	}
}

func (s *inventoryScreenImpl) setStatus(msg domain.StatusMessage) {
	s.status = msg
	if s.reporter != nil {
		s.reporter.Report(msg)
	}
}

func (s *inventoryScreenImpl) setInsertStatus(msg domain.StatusMessage) {
	s.insertStatus = msg
	if s.reporter != nil {
		s.reporter.Report(msg)
	}
}

// render rebuilds the cached view. Callers hold mu.
func (s *inventoryScreenImpl) render() {
	canEdit := s.role.CanEdit()
	view := domain.InventoryView{
		State:          s.state,
		RoleIndicator:  s.role.Indicator(),
		CanEdit:        canEdit,
		ShowInsertForm: canEdit,
		Search:         s.search,
		Rate:           s.rates.Display(),
		Status:         s.status,
		InsertStatus:   s.insertStatus,
		InsertForm:     s.insertForm,
	}

	visible := filterItems(s.items, s.search)
	rate, currency := s.rates.GetRate(), s.rates.GetCurrency()
	view.Rows = make([]domain.InventoryRow, 0, len(visible))
	for _, it := range visible {
		if canEdit {
			buf, ok := s.buffers[it.ID]
			if !ok {
				buf = domain.NewEditBuffer(it)
				s.buffers[it.ID] = buf
			}
			view.Rows = append(view.Rows, domain.InventoryRow{
				ID:       it.ID,
				Editable: true,
				Name:     buf.Name,
				Price:    buf.Price,
				Quantity: buf.Quantity,
				Saving:   s.debouncer.Pending(it.ID),
			})
			continue
		}
		view.Rows = append(view.Rows, domain.InventoryRow{
			ID:       it.ID,
			Name:     it.Name,
			Price:    utils.FormatAmount(decimal.NewNullDecimal(it.UnitPrice), currency, rate),
			Quantity: strconv.FormatInt(it.Quantity, 10),
		})
	}
	if len(view.Rows) == 0 && s.state == domain.StateReady {
		view.EmptyMessage = MsgNoResults
	}
	s.view = view
}

// filterItems matches term case-insensitively against the id text or the name.
func filterItems(items []domain.Item, term string) []domain.Item {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if term == "" ||
			strings.Contains(strconv.FormatInt(it.ID, 10), term) ||
			strings.Contains(strings.ToLower(it.Name), term) {
			out = append(out, it)
		}
	}
	return out
}

func parseEditBuffer(itemID int64, buf domain.EditBuffer) (domain.Item, error) {
	name := strings.TrimSpace(buf.Name)
	price, priceErr := decimal.NewFromString(strings.TrimSpace(buf.Price))
	qty, qtyErr := strconv.ParseInt(strings.TrimSpace(buf.Quantity), 10, 64)
	if name == "" || priceErr != nil || price.IsNegative() || qtyErr != nil || qty < 0 {
		return domain.Item{}, apperrors.NewValidationError(MsgCheckValues)
	}
	return domain.Item{ID: itemID, Name: name, UnitPrice: price, Quantity: qty}, nil
}

type insertFormError struct {
	msg string
}

func (e *insertFormError) Error() string { return e.msg }

func (e *insertFormError) Unwrap() error { return apperrors.ErrValidation }

func parseInsertForm(form domain.InsertForm) (domain.NewItem, error) {
	id, idErr := strconv.ParseInt(strings.TrimSpace(form.ID), 10, 64)
	name := strings.TrimSpace(form.Name)
	price, priceErr := decimal.NewFromString(strings.TrimSpace(form.Price))
	if idErr != nil || id <= 0 || name == "" || priceErr != nil || price.IsNegative() {
		return domain.NewItem{}, &insertFormError{msg: MsgFillInsertForm}
	}

	item := domain.NewItem{ID: id, Name: name, UnitPrice: price}
	if raw := strings.TrimSpace(form.Quantity); raw != "" {
		qty, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || qty < 0 {
			return domain.NewItem{}, &insertFormError{msg: MsgInvalidQty}
		}
		item.Quantity = &qty
	}
	return item, nil
}

// validationText is the status line for a rejected form.
func validationText(err error) string {
	var fe *insertFormError
	if errors.As(err, &fe) {
		return fe.msg
	}
	return err.Error()
}
