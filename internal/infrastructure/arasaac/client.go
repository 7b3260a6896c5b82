package arasaac

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/infrastructure/metrics"
)

const (
	DefaultAPIURL   = "https://api.arasaac.org/v1"
	DefaultImageURL = "https://static.arasaac.org/pictograms"

	// Language é o idioma fixo das buscas no catálogo
	Language = "pt"

	SearchTTL    = 30 * time.Minute
	CategoryTTL  = 30 * time.Minute
	PictogramTTL = 60 * time.Minute

	imageSize      = 300
	probeKeyword   = "casa"
	maxBodyBytes   = 8 << 20
	labelSeparator = ", "
)

var errNotFound = errors.New("pictogram not found")

// Config contém os endereços e timeouts do catálogo
type Config struct {
	APIURL         string
	ImageURL       string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	// RateLimit é o teto de requisições por segundo ao catálogo
	RateLimit float64
	Burst     int
}

// Client implementa ports.PictogramCatalog sobre a API HTTP do ARASAAC.
// Nenhuma falha sobe para o chamador: vira lista vazia ou ausência, com log.
type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      ports.Cache
	metrics    *metrics.Metrics
	logger     ports.Logger
	limiter    *rate.Limiter
}

// NewClient cria um Client. cache e m são obrigatórios.
func NewClient(cfg Config, cache ports.Cache, m *metrics.Metrics, logger ports.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.ImageURL == "" {
		cfg.ImageURL = DefaultImageURL
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	cfg.ImageURL = strings.TrimRight(cfg.ImageURL, "/")

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ConnectTimeout + cfg.ReadTimeout,
		},
		cache:   cache,
		metrics: m,
		logger:  logger.With("component", "arasaac"),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
	}
}

var _ ports.PictogramCatalog = (*Client)(nil)

type keywordResponse struct {
	Keyword string `json:"keyword"`
	Plural  string `json:"plural"`
}

type pictogramResponse struct {
	ID         int64             `json:"_id"`
	Keywords   []keywordResponse `json:"keywords"`
	Categories []string          `json:"categories"`
	Tags       []string          `json:"tags"`
}

// SearchByKeyword busca pictogramas por palavra-chave, truncando em limit
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, limit int) []*entities.PictogramaExterno {
	result, err := c.searchKeyword(ctx, keyword, limit)
	if err != nil {
		return []*entities.PictogramaExterno{}
	}
	return result
}

// FindByID busca um pictograma pelo id do catálogo
func (c *Client) FindByID(ctx context.Context, id int64) (*entities.PictogramaExterno, bool) {
	key := fmt.Sprintf("arasaac:pictogram:%d", id)

	var cached entities.PictogramaExterno
	if c.fromCache(ctx, "pictogram", key, &cached) {
		return &cached, true
	}

	var resp pictogramResponse
	err := c.getJSON(ctx, "pictogram", fmt.Sprintf("/pictograms/%s/%d", Language, id), &resp)
	if err != nil {
		if errors.Is(err, errNotFound) {
			c.logger.Info("pictogram not found", "id", id)
		} else {
			c.logger.Error("failed to fetch pictogram", "id", id, "error", err)
		}
		return nil, false
	}

	p, ok := c.toEntity(resp)
	if !ok {
		c.logger.Warn("pictogram without keywords", "id", id)
		return nil, false
	}

	c.toCache(ctx, key, p, PictogramTTL)
	return p, true
}

// SearchByCategory distribui limit entre as palavras-chave da categoria,
// remove duplicados por id e trunca em limit
func (c *Client) SearchByCategory(ctx context.Context, category string, limit int) []*entities.PictogramaExterno {
	if limit <= 0 {
		return []*entities.PictogramaExterno{}
	}

	name := strings.ToLower(strings.TrimSpace(category))
	key := fmt.Sprintf("arasaac:category:%s:%d", name, limit)

	var cached []*entities.PictogramaExterno
	if c.fromCache(ctx, "category", key, &cached) {
		return cached
	}

	keywords := KeywordsForCategory(name)
	perKeyword := max(1, limit/len(keywords))

	failed := false
	seen := make(map[int64]struct{})
	result := make([]*entities.PictogramaExterno, 0, limit)

	for _, keyword := range keywords {
		found, err := c.searchKeyword(ctx, keyword, perKeyword)
		if err != nil {
			failed = true
			continue
		}
		for _, p := range found {
			if _, dup := seen[p.IDExterno]; dup {
				continue
			}
			seen[p.IDExterno] = struct{}{}
			result = append(result, p)
		}
	}

	if len(result) > limit {
		result = result[:limit]
	}

	// Resultado parcial de uma falha não é cacheado
	if !failed {
		c.toCache(ctx, key, result, CategoryTTL)
	}
	return result
}

// IsAvailable faz uma busca leve para verificar se o catálogo responde
func (c *Client) IsAvailable(ctx context.Context) bool {
	err := c.getJSON(ctx, "probe", fmt.Sprintf("/pictograms/%s/bestsearch/%s", Language, probeKeyword), nil)
	if err != nil {
		c.logger.Warn("catalog unavailable", "error", err)
		return false
	}
	return true
}

// ImageURL retorna a imagem padrão (300px)
func (c *Client) ImageURL(id int64) string {
	return fmt.Sprintf("%s/%d/%d_%d.png", c.cfg.ImageURL, id, id, imageSize)
}

// ColoredImageURL retorna a imagem colorida (300px)
func (c *Client) ColoredImageURL(id int64) string {
	return fmt.Sprintf("%s/%d/%d_300_color.png", c.cfg.ImageURL, id, id)
}

// HighResImageURL retorna a imagem em alta resolução (2500px)
func (c *Client) HighResImageURL(id int64) string {
	return fmt.Sprintf("%s/%d/%d_2500.png", c.cfg.ImageURL, id, id)
}

func (c *Client) searchKeyword(ctx context.Context, keyword string, limit int) ([]*entities.PictogramaExterno, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" || limit <= 0 {
		return []*entities.PictogramaExterno{}, nil
	}

	key := fmt.Sprintf("arasaac:search:%s:%d", keyword, limit)

	var cached []*entities.PictogramaExterno
	if c.fromCache(ctx, "search", key, &cached) {
		return cached, nil
	}

	var resp []pictogramResponse
	path := fmt.Sprintf("/pictograms/%s/search/%s", Language, url.PathEscape(keyword))
	err := c.getJSON(ctx, "search", path, &resp)
	switch {
	case errors.Is(err, errNotFound):
		// O catálogo responde 404 quando a busca não tem resultados
		resp = nil
	case err != nil:
		c.logger.Error("failed to search pictograms", "keyword", keyword, "error", err)
		return nil, err
	}

	result := make([]*entities.PictogramaExterno, 0, min(limit, len(resp)))
	for _, r := range resp {
		if len(result) == limit {
			break
		}
		if p, ok := c.toEntity(r); ok {
			result = append(result, p)
		}
	}

	c.logger.Debug("pictograms found", "keyword", keyword, "count", len(result))
	c.toCache(ctx, key, result, SearchTTL)
	return result, nil
}

// getJSON faz um GET na API. O cancelamento da requisição de entrada não é propagado:
// a chamada é limitada apenas pelos timeouts do client.
func (c *Client) getJSON(ctx context.Context, operation, path string, dest interface{}) error {
	ctx = context.WithoutCancel(ctx)

	// Se a espera pela vez passar do ReadTimeout, desiste na hora.
	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.ReadTimeout)
	defer cancel()
	if err := c.limiter.Wait(waitCtx); err != nil {
		c.observe(operation, "throttled")
		return fmt.Errorf("rate limited: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIURL+path, nil)
	if err != nil {
		c.observe(operation, "error")
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "error")
		return fmt.Errorf("request failed after %s: %w", time.Since(start), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.observe(operation, "not_found")
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.observe(operation, "status")
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if dest != nil {
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dest); err != nil {
			c.observe(operation, "decode")
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	c.observe(operation, "success")
	return nil
}

// toEntity mapeia um registro do catálogo. Registros sem palavra-chave são descartados.
func (c *Client) toEntity(r pictogramResponse) (*entities.PictogramaExterno, bool) {
	keywords := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		if k.Keyword != "" {
			keywords = append(keywords, k.Keyword)
		}
	}
	if len(keywords) == 0 {
		return nil, false
	}

	categorias := r.Categories
	if categorias == nil {
		categorias = []string{}
	}

	return &entities.PictogramaExterno{
		IDExterno:         r.ID,
		Fonte:             entities.FonteARASAAC,
		Label:             keywords[0],
		LabelAlternativo:  strings.Join(keywords[1:], labelSeparator),
		ImagemURL:         c.ImageURL(r.ID),
		ImagemURLColorida: c.ColoredImageURL(r.ID),
		ImagemURLAlta:     c.HighResImageURL(r.ID),
		Categorias:        categorias,
		Keywords:          keywords,
	}, true
}

func (c *Client) fromCache(ctx context.Context, operation, key string, dest interface{}) bool {
	found, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
		found = false
	}

	result := "miss"
	if found {
		result = "hit"
	}
	c.metrics.CatalogCache.WithLabelValues(operation, result).Inc()
	return found
}

func (c *Client) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := c.cache.Set(ctx, key, value, ttl); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (c *Client) observe(operation, outcome string) {
	c.metrics.CatalogRequests.WithLabelValues(operation, outcome).Inc()
}
