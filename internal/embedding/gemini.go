package embedding

import (
	"context"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/singleflight"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// GeminiConfig holds configuration for the Gemini-backed provider.
type GeminiConfig struct {
	APIKey        string
	Model         string
	CacheCapacity int
}

// GeminiProvider embeds texts with the Gemini embedding API. The underlying
// client is created on first use; results are memoized in an LRU cache and
// concurrent requests for the same text are collapsed to one API call.
type GeminiProvider struct {
	config GeminiConfig
	cache  *Cache
	group  singleflight.Group

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiProvider creates a provider. The API client is not created until
// the first Embed call.
func NewGeminiProvider(config GeminiConfig) *GeminiProvider {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	return &GeminiProvider{
		config: config,
		cache:  NewCache(config.CacheCapacity),
	}
}

// Embed returns the embedding vector for text, from cache when available.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if vector, ok := p.cache.Get(text); ok {
		return vector, nil
	}

	result, err, _ := p.group.Do(text, func() (any, error) {
		// Re-check under singleflight: another caller may have filled the
		// cache while this one waited.
		if vector, ok := p.cache.Get(text); ok {
			return vector, nil
		}

		client, err := p.ensureClient(ctx)
		if err != nil {
			return nil, err
		}

		resp, err := client.EmbeddingModel(p.config.Model).EmbedContent(ctx, genai.Text(text))
		if err != nil {
			return nil, &ProviderError{Message: "embed content", Cause: err}
		}
		if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
			return nil, &ProviderError{Message: "empty embedding in response"}
		}

		p.cache.Put(text, resp.Embedding.Values)
		return resp.Embedding.Values, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]float32), nil
}

// ensureClient lazily creates the genai client. A failed attempt is retried
// on the next call rather than latched.
func (p *GeminiProvider) ensureClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.config.APIKey == "" {
		return nil, &ProviderError{Message: "API key is required"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.config.APIKey))
	if err != nil {
		return nil, &ProviderError{Message: "create client", Cause: err}
	}
	p.client = client
	return client, nil
}

// Close releases the underlying API client if one was created.
func (p *GeminiProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}
