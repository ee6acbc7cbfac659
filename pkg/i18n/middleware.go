package i18n

import "net/http"

// Middleware negotiates the request language and stores it with SetLocale.
// A nil extractor means DefaultLangExtractor(c). Requests that name no
// language get the catalog's default.
func Middleware(c *Catalog, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor(c)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = c.DefaultLanguage()
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
