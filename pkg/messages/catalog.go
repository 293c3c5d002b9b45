package messages

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is assumed when a lookup does not name a language.
const DefaultLanguage = "en"

// Catalog resolves failure codes to localized messages. Lookups fall back
// from the requested language to the default language and then to the
// built-in defaults, so a known code always yields a message. All methods
// are safe for concurrent use.
type Catalog struct {
	mu           sync.RWMutex
	defaultLang  string
	logger       *slog.Logger
	translations map[string]map[string]string
	tags         []language.Tag
	matcher      language.Matcher
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a lookup's language is
// empty or matches nothing.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger enables logging of lookups that fell back to the built-in
// default message.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog creates a Catalog with no translations loaded; every lookup
// resolves to the built-in defaults until LoadYAML or Add is called.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.DiscardHandler),
		translations: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadYAML merges a language -> code -> message document into the catalog.
// Later loads override earlier entries for the same language and code.
func (c *Catalog) LoadYAML(r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("messages: read catalog: %w", err)
	}

	var doc map[string]map[string]string
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("messages: parse catalog: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for lang, entries := range doc {
		if lang == "" {
			return fmt.Errorf("messages: empty language code in catalog")
		}
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("messages: invalid language code %q: %w", lang, err)
		}
		table, ok := c.translations[lang]
		if !ok {
			table = make(map[string]string, len(entries))
			c.translations[lang] = table
		}
		for code, msg := range entries {
			table[code] = msg
		}
	}

	c.rebuildMatcher()
	return nil
}

// Add registers a single translation. An empty message removes the entry,
// restoring the fallback chain for that code.
func (c *Catalog) Add(lang, code, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.translations[lang]
	if !ok {
		if message == "" {
			return
		}
		table = make(map[string]string)
		c.translations[lang] = table
	}

	if message == "" {
		delete(table, code)
		if len(table) == 0 {
			delete(c.translations, lang)
		}
	} else {
		table[code] = message
	}

	c.rebuildMatcher()
}

// Lookup returns the message for code in the closest loaded language,
// falling back to the default language and finally to the built-in
// default. Unknown codes return an empty string.
func (c *Catalog) Lookup(lang, code string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if lang == "" {
		lang = c.defaultLang
	}

	if msg, ok := c.lookupLocked(lang, code); ok {
		return msg
	}
	if lang != c.defaultLang {
		if msg, ok := c.lookupLocked(c.defaultLang, code); ok {
			return msg
		}
	}

	msg := Default(code)
	if msg == "" {
		c.logger.Warn("unknown failure code", "code", code, "lang", lang)
	}
	return msg
}

// Languages returns the loaded language codes in sorted order.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (c *Catalog) lookupLocked(lang, code string) (string, bool) {
	if table, ok := c.translations[lang]; ok {
		if msg, ok := table[code]; ok {
			return msg, true
		}
	}

	// BCP 47 matching so "en-US" resolves against a loaded "en".
	if c.matcher == nil {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	matched := c.tags[idx].String()
	if table, ok := c.translations[matched]; ok {
		if msg, ok := table[code]; ok {
			return msg, true
		}
	}
	return "", false
}

// rebuildMatcher must be called with c.mu held for writing.
func (c *Catalog) rebuildMatcher() {
	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	c.tags = c.tags[:0]
	for _, lang := range langs {
		if tag, err := language.Parse(lang); err == nil {
			c.tags = append(c.tags, tag)
		}
	}

	if len(c.tags) == 0 {
		c.matcher = nil
		return
	}
	c.matcher = language.NewMatcher(c.tags)
}
