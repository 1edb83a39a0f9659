// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the homework statuses endpoint of the Practicum API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Client implements homework.Client over the Practicum HTTP API.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	logger   *logrus.Logger
}

func NewClient(endpoint, token string, httpClient *http.Client, logger *logrus.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     httpClient,
		logger:   logger,
	}
}

// FetchStatuses requests statuses changed since cursor and returns the decoded JSON body.
// Numbers are decoded as json.Number. No retries are made here.
func (c *Client) FetchStatuses(ctx context.Context, cursor int64) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &homework.TransportError{Op: "build request", Err: err}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(cursor, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &homework.TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	log := c.logger.WithField("from_date", cursor)
	log.Debug("Requesting homework statuses")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Error("Homework API request failed")
		return nil, &homework.TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.WithField("status", resp.StatusCode).Error("Homework API returned unexpected status")
		return nil, &homework.UnexpectedStatusError{Code: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		log.WithError(err).Error("Homework API returned malformed JSON")
		return nil, &homework.TransportError{Op: "decode response", Err: err}
	}
	log.Debug("Homework API responded with status 200")
	return payload, nil
}
