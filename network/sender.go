package network

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/luca-patrignani/poker-client/domain/action"
)

// ErrRejected is returned when the server refuses a request. Rejections are
// not retried.
var ErrRejected = errors.New("request rejected")

// Sender posts requests to {base}/action and {base}/playerlist.
type Sender struct {
	base       string
	client     *http.Client
	tlsConfig  *tls.Config
	timeout    time.Duration
	retryDelay time.Duration
}

func NewSender(base string, opts ...senderOption) Sender {
	s := Sender{
		base:       strings.TrimRight(base, "/"),
		client:     &http.Client{},
		timeout:    5 * time.Second,
		retryDelay: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

func (s Sender) SendAction(ctx context.Context, req action.Request) error {
	return s.post(ctx, kindAction, req)
}

func (s Sender) RequestPlayerList(ctx context.Context, req action.PlayerListRequest) error {
	return s.post(ctx, kindPlayerList, req)
}

func (s Sender) post(ctx context.Context, kind string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	url := s.base + "/" + kind

	for {
		err = s.attempt(ctx, url, body)
		if err == nil || errors.Is(err, ErrRejected) {
			return err
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s attempts timed out with error %w", kind, err)
		case <-time.After(s.retryDelay):
		}
	}
}

func (s Sender) attempt(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, strings.TrimSpace(string(msg)))
	default:
		return fmt.Errorf("status %d", resp.StatusCode)
	}
}
