package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"aidememoire/pkg/log"
)

const (
	// DefaultVoice matches the voice the production TTS deployment uses.
	DefaultVoice = "vicki"
	// DefaultFormat is the output container requested from the service.
	DefaultFormat = "mp3"

	defaultRequestTimeout = 30 * time.Second
	defaultRetryMax       = 3
)

// synthesizeRequest is the JSON body sent to the TTS endpoint.
type synthesizeRequest struct {
	Text   string `json:"text"`
	Voice  string `json:"voice"`
	Format string `json:"format"`
}

// Client is an HTTP Synthesizer. It posts text to a TTS endpoint and expects
// raw MP3 bytes back.
type Client struct {
	endpoint string
	voice    string
	client   *retryablehttp.Client
}

// NewClient creates a synthesizer client for the given TTS endpoint.
func NewClient(endpoint, voice string) *Client {
	if voice == "" {
		voice = DefaultVoice
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = defaultRetryMax
	httpClient.HTTPClient.Timeout = defaultRequestTimeout
	httpClient.Logger = nil

	return &Client{
		endpoint: endpoint,
		voice:    voice,
		client:   httpClient,
	}
}

// Synthesize converts text to MP3 audio bytes.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(synthesizeRequest{
		Text:   text,
		Voice:  c.voice,
		Format: DefaultFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", ErrSynthesisFailed, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrSynthesisFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close synthesizer response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSynthesisFailed, resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio: %w", ErrSynthesisFailed, err)
	}

	log.Debug().Int("size", len(audio)).Str("voice", c.voice).Msg("Audio synthesized")
	return audio, nil
}
