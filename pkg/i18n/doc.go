// Package i18n translates validation messages produced by pkg/validator.
//
// Every built-in validator message carries a code such as "validation.required"
// and placeholder parameters. A Catalog maps those codes to per-language
// templates with named placeholders (`%{min}`) and rewrites error trees and
// envelopes into the requested language. Messages without a code, like custom
// rejections, keep their text.
//
// Translations are loaded from JSON or YAML files. Nested keys are flattened
// with dots:
//
//	vi:
//	  validation:
//	    required: "Trường này là bắt buộc."
//
// # Usage
//
// The built-in catalog covers English and Vietnamese:
//
//	res := v.Validate(params, nil)
//	if !res.Success {
//	    env := i18n.Default().Localize(res.Errors, "vi")
//	    _ = json.NewEncoder(w).Encode(env)
//	}
//
// Custom catalogs are loaded from any fs.FS:
//
//	catalog, err := i18n.Load(ctx, os.DirFS("."), "translations",
//	    i18n.WithDefaultLanguage("en"),
//	    i18n.WithLogger(log),
//	)
//
// # HTTP Middleware
//
// Middleware negotiates the request language from a cookie, a query parameter
// or the Accept-Language header and stores it in the request context:
//
//	r.Use(i18n.Middleware(catalog, nil))
//	// later
//	lang := i18n.GetLocale(r.Context())
//
// Language negotiation uses golang.org/x/text/language, so "vi-VN" resolves
// to "vi" and unsupported languages resolve to the catalog default.
package i18n
