package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/paramscheck/pkg/logger"
	"github.com/dmitrymomot/paramscheck/pkg/validator"
)

// DefaultLanguage is the fallback language of a catalog.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the Accept-Language header before parsing.
const maxAcceptLanguageLength = 4096

// maxLangCodeLength is the RFC 5646 recommended maximum.
const maxLangCodeLength = 35

var placeholderRegex = regexp.MustCompile(`%\{(\w+)\}`)

// Catalog translates validation messages by their code. A catalog is
// immutable once built and safe for concurrent use.
type Catalog struct {
	messages    map[string]map[string]string
	langs       []string
	defaultLang string
	matcher     language.Matcher
	logger      *slog.Logger
}

// Option configures a Catalog.
type Option func(*catalogOptions)

type catalogOptions struct {
	defaultLang string
	logger      *slog.Logger
}

// WithDefaultLanguage sets the language used when a requested one is not
// available. It must be present in the translations.
func WithDefaultLanguage(lang string) Option {
	return func(o *catalogOptions) {
		if lang != "" {
			o.defaultLang = lang
		}
	}
}

// WithLogger sets the logger that reports missing translations at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *catalogOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewCatalog builds a catalog from per-language translation trees. Nested
// maps are flattened into dot-separated keys, so {"validation": {"required": "..."}}
// and {"validation.required": "..."} are equivalent.
func NewCatalog(translations map[string]map[string]any, opts ...Option) (*Catalog, error) {
	o := catalogOptions{defaultLang: DefaultLanguage, logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		messages:    make(map[string]map[string]string, len(translations)),
		defaultLang: strings.ToLower(o.defaultLang),
		logger:      o.logger.With(logger.Component("i18n")),
	}

	for lang, entries := range translations {
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidLanguage, lang, err)
		}
		key := strings.ToLower(lang)
		flat, ok := c.messages[key]
		if !ok {
			flat = make(map[string]string)
			c.messages[key] = flat
		}
		flatten("", entries, flat)
	}

	if _, ok := c.messages[c.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageMissing, c.defaultLang)
	}

	c.langs = []string{c.defaultLang}
	for _, lang := range slices.Sorted(maps.Keys(c.messages)) {
		if lang != c.defaultLang {
			c.langs = append(c.langs, lang)
		}
	}

	// The matcher falls back to its first tag, which is the default language.
	tags := make([]language.Tag, len(c.langs))
	for i, lang := range c.langs {
		tags[i] = language.Make(lang)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

func flatten(prefix string, entries map[string]any, out map[string]string) {
	for k, v := range entries {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			flatten(key, x, out)
		case string:
			out[key] = x
		case nil:
		default:
			out[key] = fmt.Sprint(x)
		}
	}
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the available languages, the default one first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}

// Supported reports whether lang, or its base language, has translations and
// returns the normalized code.
func (c *Catalog) Supported(lang string) (string, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || len(lang) > maxLangCodeLength {
		return "", false
	}
	if _, ok := c.messages[lang]; ok {
		return lang, true
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		if _, ok := c.messages[base]; ok {
			return base, true
		}
	}
	return "", false
}

// Match negotiates an Accept-Language header value against the available
// languages. The default language is returned when nothing matches.
func (c *Catalog) Match(acceptLanguage string) string {
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

// T translates key into lang, substituting %{name} placeholders from params.
// Missing keys fall back to the default language, then to the key itself.
func (c *Catalog) T(lang, key string, params map[string]any) string {
	tmpl, ok := c.lookup(lang, key)
	if !ok {
		return key
	}
	return render(tmpl, params)
}

func (c *Catalog) lookup(lang, key string) (string, bool) {
	if resolved, ok := c.Supported(lang); ok {
		if s, ok := c.messages[resolved][key]; ok {
			return s, true
		}
	}
	if s, ok := c.messages[c.defaultLang][key]; ok {
		return s, true
	}
	c.logger.Debug("missing translation", logger.Lang(lang), slog.String("key", key))
	return "", false
}

// Message translates m by its code. Messages without a code, or with a code
// the catalog does not know, keep their text.
func (c *Catalog) Message(lang string, m validator.Message) validator.Message {
	if m.Code == "" {
		return m
	}
	if tmpl, ok := c.lookup(lang, m.Code); ok {
		m.Text = render(tmpl, m.Params)
	}
	return m
}

// Tree returns a copy of t with every message translated.
func (c *Catalog) Tree(lang string, t validator.ErrorTree) validator.ErrorTree {
	return validator.MapMessages(t, func(m validator.Message) validator.Message {
		return c.Message(lang, m)
	})
}

// Localize returns a translated copy of env.
func (c *Catalog) Localize(env *validator.Envelope, lang string) *validator.Envelope {
	if env == nil {
		return nil
	}
	out := *env
	if env.Code != "" {
		if tmpl, ok := c.lookup(lang, env.Code); ok {
			out.Message = render(tmpl, nil)
		}
	}
	if env.FieldErrors != nil {
		if node, ok := c.Tree(lang, env.FieldErrors).(validator.Node); ok {
			out.FieldErrors = node
		}
	}
	return &out
}

func render(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		v, ok := params[name]
		if !ok {
			return match
		}
		return formatParam(v)
	})
}

func formatParam(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return validator.FormatNumber(x)
	case float32:
		return validator.FormatNumber(float64(x))
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatParam(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}
