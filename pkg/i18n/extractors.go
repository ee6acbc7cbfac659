package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor picks a language for a request. It returns an empty string
// when the request names none.
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds the request locations inspected by DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie holding the language. Defaults to "lang".
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter holding the language. Defaults to "lang".
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// DefaultLangExtractor checks, in order: the "lang" cookie, the "lang" query
// parameter, the Language header and the Accept-Language header. Explicit
// values are accepted only when the catalog supports them.
func DefaultLangExtractor(c *Catalog, opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{CookieName: "lang", QueryParamName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if cookie, err := r.Cookie(cfg.CookieName); err == nil {
			if lang, ok := c.Supported(cookie.Value); ok {
				return lang
			}
		}

		if lang, ok := c.Supported(r.URL.Query().Get(cfg.QueryParamName)); ok {
			return lang
		}

		if lang, ok := c.Supported(r.Header.Get("Language")); ok {
			return lang
		}

		if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
			return c.Match(accept)
		}
		return ""
	}
}
