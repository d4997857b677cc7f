package fault

import "sync"

// Catalog is the read contract against the translation catalog. Lookup
// resolves a kind name to a translated message template. Following the
// gettext convention, an untranslated key is echoed back unchanged; this
// package also treats an empty result as untranslated so a localizable
// message can never come out empty.
type Catalog interface {
	Lookup(key string) string
}

var (
	catalogMu sync.RWMutex
	catalog   Catalog
)

// SetCatalog installs the process-wide translation catalog.
//
// The localization subsystem calls this once at process start, before any
// script runs; this package only ever reads the installed catalog. With no
// catalog installed, localizable kinds use their built-in templates.
func SetCatalog(c Catalog) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = c
}

// lookupTemplate resolves the message template for kind: the catalog
// translation when one exists, the fallback template otherwise.
func lookupTemplate(kind Kind, fallback string) string {
	catalogMu.RLock()
	c := catalog
	catalogMu.RUnlock()
	if c == nil {
		return fallback
	}
	key := string(kind)
	translated := c.Lookup(key)
	if translated == "" || translated == key {
		return fallback
	}
	return translated
}
