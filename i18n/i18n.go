// Package i18n holds the process-wide translation tables. They are
// loaded once from the embedded locale files and never mutated
// afterwards.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultLocale = "en"

//go:embed locales
var localeFiles embed.FS

var translations map[string]map[string]string

func init() {
	var err error
	translations, err = loadLocales(localeFiles)
	if err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
}

func loadLocales(fsys fs.FS) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, "locales")
	if err != nil {
		return nil, err
	}

	loaded := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		locale := strings.TrimSuffix(name, ".yml")
		if locale == name {
			continue
		}

		data, err := fs.ReadFile(fsys, "locales/"+name)
		if err != nil {
			return nil, err
		}
		table := make(map[string]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		loaded[locale] = table
	}

	if _, ok := loaded[DefaultLocale]; !ok {
		return nil, fmt.Errorf("missing default locale %q", DefaultLocale)
	}
	return loaded, nil
}

// Resolve translates key for the given locale. It is total: an unknown
// locale falls back to the default locale, an unknown key falls back to
// defaultText, and an empty defaultText falls back to the key itself.
func Resolve(key, defaultText, locale string) string {
	table, ok := translations[locale]
	if !ok {
		table = translations[DefaultLocale]
	}
	if text, ok := table[key]; ok && text != "" {
		return text
	}
	if defaultText != "" {
		return defaultText
	}
	return key
}

// Known reports whether the locale has a translation table.
func Known(locale string) bool {
	_, ok := translations[locale]
	return ok
}

// Locales lists the available locales in stable order.
func Locales() []string {
	names := make([]string, 0, len(translations))
	for locale := range translations {
		names = append(names, locale)
	}
	sort.Strings(names)
	return names
}
