package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"secretsanta/internal/domain"
)

// Message is the JSON body sent for each pairing.
type Message struct {
	RunID         string `json:"run_id"`
	GiverName     string `json:"giver_name"`
	GiverEmail    string `json:"giver_email"`
	ReceiverName  string `json:"receiver_name"`
	ReceiverEmail string `json:"receiver_email"`
}

// HTTPClient posts pairings to a webhook.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil httpClient selects http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

// Notify sends one giver their assignment.
func (c *HTTPClient) Notify(ctx context.Context, runID string, p domain.Pairing) error {
	msg := Message{
		RunID:         runID,
		GiverName:     p.Giver.Name,
		GiverEmail:    p.Giver.Email.String(),
		ReceiverName:  p.Receiver.Name,
		ReceiverEmail: p.Receiver.Email.String(),
	}
	return c.post(ctx, "/notify/"+url.PathEscape(p.Giver.Email.String()), msg)
}

func (c *HTTPClient) post(ctx context.Context, path string, in any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("notify %s %s: %s", http.MethodPost, u, resp.Status)
	}
	return nil
}

// Compile-time assertion that HTTPClient implements domain.Notifier.
var _ domain.Notifier = (*HTTPClient)(nil)
