package i18n

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/simpleval/pkg/logger"
)

// Catalog holds flat message maps per canonical language tag.
// It is safe for concurrent use.
type Catalog struct {
	mu          sync.RWMutex
	messages    map[string]map[string]string
	defaultLang string
	logger      *slog.Logger
}

// NewCatalog loads every language from adapter.
func NewCatalog(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	defaultLang, err := NormalizeLanguage(c.defaultLang)
	if err != nil {
		return nil, err
	}
	c.defaultLang = defaultLang

	docs, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.messages = make(map[string]map[string]string, len(docs))
	for lang, msgs := range docs {
		canonical, err := NormalizeLanguage(lang)
		if err != nil {
			return nil, err
		}
		if c.messages[canonical] == nil {
			c.messages[canonical] = make(map[string]string, len(msgs))
		}
		maps.Copy(c.messages[canonical], msgs)
	}

	if len(c.messages) == 0 {
		c.logger.WarnContext(ctx, "message catalog is empty")
	}
	c.logger.InfoContext(ctx, "message catalog loaded",
		slog.Any("languages", c.languages()),
		logger.Language(c.defaultLang),
	)
	return c, nil
}

// DefaultLanguage returns the canonical default language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the sorted list of languages with messages.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages()
}

func (c *Catalog) languages() []string {
	return slices.Sorted(maps.Keys(c.messages))
}

// Messages returns a copy of the messages for lang. Lookup falls back from
// "pt-BR" to "pt" and then to the default language; ok reports whether any
// of them matched.
func (c *Catalog) Messages(lang string) (map[string]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	msgs, ok := c.resolve(lang)
	if !ok {
		return map[string]string{}, false
	}
	return maps.Clone(msgs), true
}

// Message returns a single message for lang and key.
func (c *Catalog) Message(lang, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	msgs, ok := c.resolve(lang)
	if !ok {
		return "", false
	}
	msg, ok := msgs[key]
	return msg, ok
}

// Add merges messages for lang into the catalog, overriding existing keys.
func (c *Catalog) Add(lang string, messages map[string]string) error {
	canonical, err := NormalizeLanguage(lang)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.messages[canonical] == nil {
		c.messages[canonical] = make(map[string]string, len(messages))
	}
	maps.Copy(c.messages[canonical], messages)
	return nil
}

func (c *Catalog) resolve(lang string) (map[string]string, bool) {
	if canonical, err := NormalizeLanguage(lang); err == nil {
		if msgs, ok := c.messages[canonical]; ok {
			return msgs, true
		}
		if msgs, ok := c.messages[baseLanguage(canonical)]; ok {
			return msgs, true
		}
	}

	msgs, ok := c.messages[c.defaultLang]
	return msgs, ok
}
