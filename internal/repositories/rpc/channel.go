// Package rpc reaches the inventory command bridge.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	"github.com/SscSPs/pos_inventory_app/internal/dto"
	"github.com/SscSPs/pos_inventory_app/internal/platform/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Channel invokes a named command with a JSON-serializable argument.
// Any failure, local or remote, is reported as apperrors.ErrTransport.
type Channel interface {
	Invoke(ctx context.Context, command string, args any, reply any) error
}

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_commands_total",
			Help: "Total number of commands sent to the inventory bridge",
		},
		[]string{"command", "outcome"},
	)
	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_command_duration_seconds",
			Help:    "Round-trip time of inventory bridge commands",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
)

const maxReplyBytes = 4 << 20

// HTTPChannel posts commands to {baseURL}/commands/{command}.
type HTTPChannel struct {
	baseURL string
	client  *http.Client
}

// NewHTTPChannel creates a channel. The client's Timeout bounds every call.
func NewHTTPChannel(baseURL string, client *http.Client) *HTTPChannel {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPChannel{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

var _ Channel = (*HTTPChannel)(nil)

// Invoke sends args and decodes the data of a successful reply into reply, if non-nil.
func (ch *HTTPChannel) Invoke(ctx context.Context, command string, args any, reply any) (err error) {
	ctx, span := tracing.Tracer().Start(ctx, "bridge "+command,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("rpc.method", command)),
	)
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		commandsTotal.WithLabelValues(command, outcome).Inc()
		commandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
		span.End()
	}()

	body := []byte("{}")
	if args != nil {
		if body, err = json.Marshal(args); err != nil {
			return apperrors.NewTransportError(command, err)
		}
	}

	endpoint := ch.baseURL + "/commands/" + url.PathEscape(command)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewTransportError(command, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	tracing.Inject(ctx, req.Header)

	resp, err := ch.client.Do(req)
	if err != nil {
		return apperrors.NewTransportError(command, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return apperrors.NewTransportError(command, err)
	}

	var envelope dto.CommandResponse
	if len(raw) > 0 {
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr != nil && resp.StatusCode < 300 {
			return apperrors.NewTransportError(command, fmt.Errorf("malformed reply: %w", jsonErr))
		}
	}

	if resp.StatusCode >= 300 || envelope.Error != "" {
		msg := envelope.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return apperrors.NewTransportError(command, &RemoteError{Status: resp.StatusCode, Message: msg})
	}

	if reply != nil {
		if len(envelope.Data) == 0 {
			return apperrors.NewTransportError(command, errors.New("reply has no data"))
		}
		if err := json.Unmarshal(envelope.Data, reply); err != nil {
			return apperrors.NewTransportError(command, fmt.Errorf("malformed reply data: %w", err))
		}
	}
	return nil
}

// RemoteError is a rejection reported by the bridge.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
