package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the negotiated language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// Locale returns the language stored by SetLocale.
func Locale(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok && locale != ""
}

// GetLocale returns the stored language or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, ok := Locale(ctx); ok {
		return locale
	}
	return DefaultLanguage
}
