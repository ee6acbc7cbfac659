package i18n

import (
	"context"
	"embed"
	"sync"
)

//go:embed translations/*.yaml
var builtin embed.FS

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(context.Background(), builtin, "translations")
	if err != nil {
		panic("i18n: built-in translations: " + err.Error())
	}
	return c
})

// Default returns the catalog of built-in validation messages in English
// and Vietnamese.
func Default() *Catalog {
	return defaultCatalog()
}
