package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/ports"
)

const (
	ChannelName = "push"

	defaultBaseURL    = "https://exp.host"
	defaultTimeout    = 10 * time.Second
	receiptsBatchSize = 300
	receiptMaxAge     = 24 * time.Hour
)

// TokenStore is where push tokens of users are kept.
type TokenStore interface {
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]string, error)
	Delete(ctx context.Context, token string) error
}

type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

type Channel struct {
	cfg        Config
	httpClient *http.Client
	tokens     TokenStore
	receipts   *ReceiptTracker
	logger     *slog.Logger
	now        func() time.Time
}

var _ ports.NotificationChannel = (*Channel)(nil)

func NewChannel(cfg Config, tokens TokenStore, logger *slog.Logger) *Channel {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Channel{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		receipts:   NewReceiptTracker(),
		logger:     logger.With("component", "push_channel"),
		now:        time.Now,
	}
}

func (c *Channel) Name() string { return ChannelName }

func (c *Channel) Addresses(ctx context.Context, recipient kernel.UUID) ([]string, error) {
	return c.tokens.ListByOwner(ctx, recipient)
}

func (c *Channel) Retire(ctx context.Context, token string) error {
	return c.tokens.Delete(ctx, token)
}

// PendingReceipts is the number of tickets whose receipt was not read yet.
func (c *Channel) PendingReceipts() int { return c.receipts.Len() }

func (c *Channel) Send(ctx context.Context, token string, event ports.StatusEvent) error {
	var resp sendResponse
	err := c.post(ctx, sendPath, []message{{
		To:    token,
		Title: event.Title,
		Body:  event.Body,
		Sound: "default",
		Data: messageData{
			ShipmentID: event.ShipmentID,
			NewStatus:  event.NewStatus,
			Timestamp:  event.Timestamp,
		},
	}}, &resp)
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return fmt.Errorf("push send rejected: %s: %s", resp.Errors[0].Code, resp.Errors[0].Message)
	}
	if len(resp.Data) != 1 {
		return fmt.Errorf("push send: expected 1 ticket, got %d", len(resp.Data))
	}

	t := resp.Data[0]
	switch {
	case t.Status == statusOK:
		if t.ID != "" {
			c.receipts.Track(t.ID, token, c.now())
		}
		return nil
	case t.Details.Error == deviceNotActive:
		return fmt.Errorf("%w: %s", ports.ErrAddressGone, t.Message)
	default:
		return fmt.Errorf("push ticket %s: %s %s", t.Status, t.Details.Error, t.Message)
	}
}

// CheckReceipts reads the receipts of the oldest pending tickets and retires
// the tokens reported as unregistered. Tickets without a receipt yet stay
// pending until they are a day old. It returns the number of retired tokens.
func (c *Channel) CheckReceipts(ctx context.Context) (int, error) {
	if expired := c.receipts.Expire(c.now().Add(-receiptMaxAge)); expired > 0 {
		c.logger.WarnContext(ctx, "Dropped push tickets without receipt", "count", expired)
	}

	ids := c.receipts.Oldest(receiptsBatchSize)
	if len(ids) == 0 {
		return 0, nil
	}

	var resp receiptsResponse
	if err := c.post(ctx, receiptsPath, receiptsRequest{IDs: ids}, &resp); err != nil {
		return 0, err
	}
	if len(resp.Errors) > 0 {
		return 0, fmt.Errorf("push receipts rejected: %s: %s", resp.Errors[0].Code, resp.Errors[0].Message)
	}

	retired := 0
	var errs []error
	for id, r := range resp.Data {
		token, ok := c.receipts.Resolve(id)
		if !ok {
			continue
		}
		if r.Status != statusError {
			continue
		}
		if r.Details.Error != deviceNotActive {
			c.logger.WarnContext(ctx, "Push delivery failed", "ticket", id, "error", r.Details.Error, "message", r.Message)
			continue
		}
		if err := c.tokens.Delete(ctx, token); err != nil {
			errs = append(errs, err)
			continue
		}
		retired++
	}

	return retired, errors.Join(errs...)
}

func (c *Channel) post(ctx context.Context, path string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read push response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("push api %s: status %d: %s", path, res.StatusCode, strings.TrimSpace(string(body)))
	}
	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode push response: %w", err)
	}
	return nil
}
