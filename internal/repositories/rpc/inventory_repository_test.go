package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	"github.com/SscSPs/pos_inventory_app/internal/repositories/rpc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path string
	body map[string]any
}

type callLog struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (l *callLog) add(c recordedCall) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

func (l *callLog) all() []recordedCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedCall(nil), l.calls...)
}

func newBridge(t *testing.T, status int, reply string) (*httptest.Server, *callLog) {
	t.Helper()
	log := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		log.add(recordedCall{path: r.URL.Path, body: body})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, log
}

func newRepo(srv *httptest.Server) *rpc.InventoryRepository {
	return rpc.NewInventoryRepository(rpc.NewHTTPChannel(srv.URL+"/", srv.Client()))
}

func TestListItems(t *testing.T) {
	srv, calls := newBridge(t, http.StatusOK,
		`{"data":[{"id":1,"name":"Agua","unitPrice":"1.5","quantity":10},{"id":2,"name":"Pan","unitPrice":0.8,"quantity":0}]}`)

	items, err := newRepo(srv).ListItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Agua", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, int64(10), items[0].Quantity)
	assert.True(t, items[1].UnitPrice.Equal(decimal.RequireFromString("0.8")))
	require.Len(t, calls.all(), 1)
	assert.Equal(t, "/commands/list-items", calls.all()[0].path)
}

func TestListItems_EmptyList(t *testing.T) {
	srv, _ := newBridge(t, http.StatusOK, `{"data":[]}`)

	items, err := newRepo(srv).ListItems(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestUpdateItem_SendsAllFields(t *testing.T) {
	srv, calls := newBridge(t, http.StatusOK, `{"data":null}`)

	err := newRepo(srv).UpdateItem(context.Background(), domain.Item{
		ID: 3, Name: "Jugo", UnitPrice: decimal.RequireFromString("2.5"), Quantity: 0,
	})

	require.NoError(t, err)
	require.Len(t, calls.all(), 1)
	call := calls.all()[0]
	assert.Equal(t, "/commands/update-item", call.path)
	assert.Equal(t, float64(3), call.body["id"])
	assert.Equal(t, "Jugo", call.body["name"])
	assert.Equal(t, "2.5", call.body["unitPrice"])
	assert.Equal(t, float64(0), call.body["quantity"])
}

func TestInsertItem_QuantityOmittedWhenNil(t *testing.T) {
	srv, calls := newBridge(t, http.StatusOK, `{}`)
	repo := newRepo(srv)
	zero := int64(0)

	require.NoError(t, repo.InsertItem(context.Background(), domain.NewItem{ID: 5, Name: "Jugo", UnitPrice: decimal.NewFromInt(1)}))
	require.NoError(t, repo.InsertItem(context.Background(), domain.NewItem{ID: 6, Name: "Te", UnitPrice: decimal.NewFromInt(1), Quantity: &zero}))

	recorded := calls.all()
	require.Len(t, recorded, 2)
	assert.Equal(t, "/commands/insert-item", recorded[0].path)
	assert.NotContains(t, recorded[0].body, "quantity")
	assert.Contains(t, recorded[1].body, "quantity")
	assert.Equal(t, float64(0), recorded[1].body["quantity"])
}

func TestRemoteRejectionIsTransportError(t *testing.T) {
	srv, _ := newBridge(t, http.StatusNotFound, `{"error":"item 9 not found"}`)

	err := newRepo(srv).UpdateItem(context.Background(), domain.Item{ID: 9, Name: "X"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
	assert.Contains(t, err.Error(), "item 9 not found")
	var remote *rpc.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusNotFound, remote.Status)
}

func TestErrorEnvelopeWithOKStatus(t *testing.T) {
	srv, _ := newBridge(t, http.StatusOK, `{"error":"duplicate id"}`)

	err := newRepo(srv).InsertItem(context.Background(), domain.NewItem{ID: 1, Name: "Agua"})

	assert.ErrorIs(t, err, apperrors.ErrTransport)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestMalformedReply(t *testing.T) {
	srv, _ := newBridge(t, http.StatusOK, `not json`)

	_, err := newRepo(srv).ListItems(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestUnreachableBridge(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := rpc.NewInventoryRepository(rpc.NewHTTPChannel(url, &http.Client{Timeout: time.Second}))
	_, err := repo.ListItems(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	repo := rpc.NewInventoryRepository(rpc.NewHTTPChannel(srv.URL, &http.Client{Timeout: 50 * time.Millisecond}))
	_, err := repo.ListItems(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrTransport)
}
