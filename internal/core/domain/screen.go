package domain

// ScreenState is the load state of an inventory screen.
type ScreenState string

const (
	StateLoading   ScreenState = "LOADING"
	StateReady     ScreenState = "READY"
	StateLoadError ScreenState = "LOAD_ERROR"
)

// StatusScope identifies which status line a message belongs to.
type StatusScope string

const (
	ScopeLoad   StatusScope = "load"
	ScopeRow    StatusScope = "row"
	ScopeInsert StatusScope = "insert"
)

// StatusMessage is one (message, isError) tuple emitted to the status surface.
type StatusMessage struct {
	Scope   StatusScope `json:"scope"`
	RowID   int64       `json:"rowID,omitempty"` // Set for ScopeRow
	Message string      `json:"message"`
	IsError bool        `json:"isError"`
}

// InventoryRow is one rendered table row.
// Editable rows carry the raw buffer text; read-only rows carry display text.
type InventoryRow struct {
	ID       int64  `json:"id"`
	Editable bool   `json:"editable"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Saving   bool   `json:"saving,omitempty"` // An edit is waiting for its quiet period
}

// InventoryView is the full render of the screen.
type InventoryView struct {
	State          ScreenState    `json:"state"`
	RoleIndicator  string         `json:"roleIndicator"`
	CanEdit        bool           `json:"canEdit"`
	ShowInsertForm bool           `json:"showInsertForm"`
	Search         string         `json:"search"`
	Rows           []InventoryRow `json:"rows"`
	EmptyMessage   string         `json:"emptyMessage,omitempty"`
	Rate           RateDisplay    `json:"rate"`
	Status         StatusMessage  `json:"status"`
	InsertStatus   StatusMessage  `json:"insertStatus"`
	InsertForm     InsertForm     `json:"insertForm"`
}
