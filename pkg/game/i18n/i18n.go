// Package i18n loads the message catalogs shipped with the binary into
// gotext's global storage.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain every message lives in
const Domain = "default"

// DefaultLanguage is used when no language is requested
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned for a language without a catalog
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales
var catalogs embed.FS

// Load installs the catalog of lang as the global gotext storage
func Load(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	buf, err := catalogs.ReadFile(path.Join("locales", lang, "LC_MESSAGES", Domain+".po"))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	po := gotext.NewPo()
	po.Parse(buf)

	// SetStorage takes the domain from the locale. gotext.SetDomain would
	// reload every locale from disk and drop the embedded catalog.
	locale := gotext.NewLocale("locales", lang)
	locale.AddTranslator(Domain, po)
	gotext.SetStorage(locale)
	return nil
}

// Languages lists the languages with a catalog
func Languages() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	return langs
}
