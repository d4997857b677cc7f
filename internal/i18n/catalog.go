// Package i18n loads translation catalogs for the fault taxonomy from YAML
// locale files.
//
// A locale file is a flat mapping from fault kind name to a translated
// message template:
//
//	PageNotFound: "Seite `{{.page_name}}` wurde nicht gefunden."
//	InvalidURL: "`{{.url}}` ist keine gültige URL."
//
// The host process loads its locale once at startup and installs it with
// fault.SetCatalog before running any script. The loaded catalog is
// read-only.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// MessageCatalog is a read-only kind-name to template mapping satisfying
// fault.Catalog.
type MessageCatalog struct {
	locale   string
	messages map[string]string
}

// Load reads a locale file. The locale name is derived from the file name
// (de.yaml -> "de").
func Load(path string) (*MessageCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parse locale file %s: %w", path, err)
	}
	locale := filepath.Base(path)
	locale = locale[:len(locale)-len(filepath.Ext(locale))]
	return &MessageCatalog{locale: locale, messages: messages}, nil
}

// LoadLocale reads <dir>/<locale>.yaml.
func LoadLocale(dir, locale string) (*MessageCatalog, error) {
	return Load(filepath.Join(dir, locale+".yaml"))
}

// Locale returns the locale name the catalog was loaded for.
func (c *MessageCatalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Lookup resolves a kind name to its translated template. Untranslated keys
// are echoed back unchanged, following the gettext convention the fault
// package expects.
func (c *MessageCatalog) Lookup(key string) string {
	if c == nil {
		return key
	}
	if translated, ok := c.messages[key]; ok && translated != "" {
		return translated
	}
	return key
}

// Keys returns the translated kind names in sorted order.
func (c *MessageCatalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.messages))
	for key := range c.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Template returns the raw template for a key, without the echo fallback.
func (c *MessageCatalog) Template(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	translated, ok := c.messages[key]
	return translated, ok
}
