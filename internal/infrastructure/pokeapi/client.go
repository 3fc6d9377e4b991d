package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/rubencm33/Practica-PokedexApi/internal/config"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// Client talks to the public PokeAPI catalog. Calls are synchronous with a
// short timeout and no retries; failures surface immediately to the caller.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a catalog client from config.
func NewClient(cfg config.PokeAPIConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// GetPokemon fetches one Pokémon by numeric id or name.
func (c *Client) GetPokemon(ctx context.Context, idOrName string) (*Pokemon, error) {
	var pokemon Pokemon
	if err := c.get(ctx, "/pokemon/"+url.PathEscape(idOrName), "pokemon not found", &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// GetSpecies fetches species data (flavor text) by numeric id or name.
func (c *Client) GetSpecies(ctx context.Context, idOrName string) (*Species, error) {
	var species Species
	if err := c.get(ctx, "/pokemon-species/"+url.PathEscape(idOrName), "pokemon species not found", &species); err != nil {
		return nil, err
	}
	return &species, nil
}

// Search lists catalog Pokémon with limit/offset pagination.
func (c *Client) Search(ctx context.Context, limit, offset int) (*SearchResult, error) {
	var result SearchResult
	endpoint := fmt.Sprintf("/pokemon?limit=%d&offset=%d", limit, offset)
	if err := c.get(ctx, endpoint, "pokemon not found", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, endpoint, notFoundMsg string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrInternal, "failed to build catalog request", err)
	}

	c.logger.Debug("Calling catalog", zap.String("url", req.URL.String()))

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return apperrors.NewAppError(apperrors.ErrTimeout, "catalog request timed out", err)
		}
		return apperrors.NewAppError(apperrors.ErrUpstream, "catalog request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NewAppError(apperrors.ErrNotFound, notFoundMsg, nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("Catalog returned an error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return apperrors.NewAppError(apperrors.ErrUpstream,
			fmt.Sprintf("catalog returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewAppError(apperrors.ErrUpstream, "failed to decode catalog response", err)
	}

	return nil
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	if apperrors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	return false
}
