package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultKeyHeader is the header carrying the record service access key.
const DefaultKeyHeader = "X-Master-Key"

// DefaultTimeout bounds a single request to the record service.
const DefaultTimeout = 5 * time.Second

// maxDocumentSize caps the response body read from the record service.
const maxDocumentSize = 1 << 20

// RemoteBoard stores the leaderboard as one JSON document behind an HTTP
// endpoint: GET returns it, PUT replaces it. The service offers no
// compare-and-swap, so concurrent writers can lose each other's entries.
type RemoteBoard struct {
	client    *http.Client
	url       string
	keyHeader string
	key       string
}

// RemoteOption configures a RemoteBoard.
type RemoteOption func(*RemoteBoard)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(b *RemoteBoard) { b.client = c }
}

// WithAccessKey sends key in header with every request. An empty header
// selects DefaultKeyHeader; an empty key sends nothing.
func WithAccessKey(header, key string) RemoteOption {
	return func(b *RemoteBoard) {
		if header == "" {
			header = DefaultKeyHeader
		}
		b.keyHeader = header
		b.key = key
	}
}

// NewRemoteBoard returns a document stored at url.
func NewRemoteBoard(url string, opts ...RemoteOption) *RemoteBoard {
	b := &RemoteBoard{
		client:    newHTTPClient(DefaultTimeout),
		url:       url,
		keyHeader: DefaultKeyHeader,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load fetches the current document. A 404 is reported as ErrNotFound.
func (b *RemoteBoard) Load(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, fmt.Errorf("records: build request: %w", err)
	}
	b.authorize(req)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("records: fetch leaderboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("records: fetch leaderboard: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("records: read leaderboard: %w", err)
	}
	return decodeDocument(data)
}

// Save replaces the remote document with board.
func (b *RemoteBoard) Save(ctx context.Context, board []Entry) error {
	if board == nil {
		board = []Entry{}
	}
	body, err := json.Marshal(boardDoc{Scores: board})
	if err != nil {
		return fmt.Errorf("records: encode leaderboard: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, b.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("records: build request: %w", err)
	}
	b.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("records: save leaderboard: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxDocumentSize)) //nolint:errcheck

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("records: save leaderboard: unexpected status %s", resp.Status)
	}
	return nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (b *RemoteBoard) authorize(req *http.Request) {
	if b.key != "" {
		req.Header.Set(b.keyHeader, b.key)
	}
}

// decodeDocument accepts {"scores": [...]}, the same wrapped in
// {"record": ...}, or a bare array of entries. An empty body is an empty
// board.
func decodeDocument(data []byte) ([]Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("records: decode leaderboard: %w", err)
		}
		return entries, nil
	}

	var envelope struct {
		Record json.RawMessage `json:"record"`
		Scores []Entry         `json:"scores"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("records: decode leaderboard: %w", err)
	}
	if len(envelope.Record) > 0 && !bytes.Equal(envelope.Record, []byte("null")) {
		return decodeDocument(envelope.Record)
	}
	return envelope.Scores, nil
}
