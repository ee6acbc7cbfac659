package binder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/paramscheck/pkg/i18n"
	"github.com/dmitrymomot/paramscheck/pkg/logger"
	"github.com/dmitrymomot/paramscheck/pkg/validator"
)

// CodeInvalidBody is the translation code of the binding failure message.
const CodeInvalidBody = "request.invalid_body"

// ContextFunc builds the validation context for a request.
type ContextFunc func(r *http.Request) validator.Context

// ErrorResponse is the JSON body written when a request is not valid.
type ErrorResponse struct {
	Errors *validator.Envelope `json:"errors"`
}

type valuesContextKey struct{}

// Values returns the coerced params stored by Validate.
func Values(ctx context.Context) (map[string]any, bool) {
	v, ok := ctx.Value(valuesContextKey{}).(map[string]any)
	return v, ok
}

// Option configures Params and Validate.
type Option func(*options)

type options struct {
	cfg        Config
	pathParams PathParamsFunc
	contextFn  ContextFunc
	catalog    *i18n.Catalog
	langFn     i18n.LangExtractor
	logger     *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		cfg:        DefaultConfig(),
		pathParams: ChiPathParams,
		contextFn:  func(*http.Request) validator.Context { return nil },
		catalog:    i18n.Default(),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.cfg = o.cfg.normalize()
	if o.langFn == nil {
		o.langFn = i18n.DefaultLangExtractor(o.catalog)
	}
	o.logger = o.logger.With(logger.Component("binder"))
	return o
}

// WithConfig applies cfg. Zero limits keep their defaults.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithPathParams replaces the chi route parameter source.
func WithPathParams(fn PathParamsFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.pathParams = fn
		}
	}
}

// WithContextFunc sets the source of the validation context, e.g. the
// authenticated user's role.
func WithContextFunc(fn ContextFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.contextFn = fn
		}
	}
}

// WithCatalog sets the catalog used to localize error responses.
func WithCatalog(c *i18n.Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithLangExtractor overrides how the response language is chosen when
// i18n.Middleware has not stored one in the request context.
func WithLangExtractor(fn i18n.LangExtractor) Option {
	return func(o *options) { o.langFn = fn }
}

// WithLogger sets the logger for binding and response failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Validate returns middleware that binds the request params and validates
// them with v.
//
// Invalid params get 422 with {"errors": envelope}; the envelope is
// localized into the request language. Unreadable bodies get 400 (413 when
// too large) with a general envelope. On success the coerced params are
// available to the next handler through Values.
//
//	r.With(binder.Validate(createUser)).Post("/users", func(w http.ResponseWriter, r *http.Request) {
//	    params, _ := binder.Values(r.Context())
//	    ...
//	})
func Validate(v *validator.Validator, opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := o.logger.With(
				logger.Validator(v.Name()),
				logger.RequestID(middleware.GetReqID(r.Context())),
			)

			params, err := o.params(r)
			if err != nil {
				log.DebugContext(r.Context(), "failed to bind request params", logger.Error(err))
				status := http.StatusBadRequest
				if errors.Is(err, ErrBodyTooLarge) {
					status = http.StatusRequestEntityTooLarge
				}
				env := &validator.Envelope{
					Message: "Invalid request body.",
					Type:    validator.ErrorTypeGeneral,
					Code:    CodeInvalidBody,
				}
				o.writeErrors(w, r, status, env)
				return
			}

			res := v.Validate(params, o.contextFn(r))
			if !res.Success {
				o.writeErrors(w, r, http.StatusUnprocessableEntity, res.Errors)
				return
			}

			ctx := context.WithValue(r.Context(), valuesContextKey{}, res.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (o *options) language(r *http.Request) string {
	if lang, ok := i18n.Locale(r.Context()); ok {
		return lang
	}
	if lang := o.langFn(r); lang != "" {
		return lang
	}
	return o.cfg.DefaultLang
}

func (o *options) writeErrors(w http.ResponseWriter, r *http.Request, status int, env *validator.Envelope) {
	lang := o.language(r)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Language", lang)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Errors: o.catalog.Localize(env, lang)}); err != nil {
		o.logger.ErrorContext(r.Context(), "failed to write error response", logger.Error(err))
	}
}
