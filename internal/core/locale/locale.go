// Package locale loads YAML message catalogs and resolves templated
// messages with {placeholder} substitution and a fallback locale.
package locale

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is consulted when a message is missing from the
// requested locale.
const DefaultLocale = "en"

// Catalog holds messages keyed by locale and message id.
type Catalog struct {
	fallback string
	messages map[string]map[string]string
}

// NewCatalog creates an empty catalog with the given fallback locale;
// an empty fallback means DefaultLocale.
func NewCatalog(fallback string) *Catalog {
	if fallback == "" {
		fallback = DefaultLocale
	}
	return &Catalog{
		fallback: fallback,
		messages: make(map[string]map[string]string),
	}
}

// LoadLocale merges a YAML document of message id to template pairs
// into the given locale.
func (c *Catalog) LoadLocale(locale string, r io.Reader) error {
	var doc map[string]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("locale: decode %q: %w", locale, err)
	}

	bundle, ok := c.messages[locale]
	if !ok {
		bundle = make(map[string]string, len(doc))
		c.messages[locale] = bundle
	}
	for id, template := range doc {
		bundle[id] = template
	}
	return nil
}

// Message resolves a message id for the locale, falling back to the
// fallback locale and finally to the id itself. Placeholders of the
// form {name} are substituted from params.
func (c *Catalog) Message(locale, id string, params map[string]string) string {
	template, ok := c.lookup(locale, id)
	if !ok {
		return id
	}
	if len(params) == 0 {
		return template
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Has reports whether the message id resolves for the locale, fallback
// included.
func (c *Catalog) Has(locale, id string) bool {
	_, ok := c.lookup(locale, id)
	return ok
}

func (c *Catalog) lookup(locale, id string) (string, bool) {
	if bundle, ok := c.messages[locale]; ok {
		if template, ok := bundle[id]; ok {
			return template, true
		}
	}
	if locale != c.fallback {
		if bundle, ok := c.messages[c.fallback]; ok {
			if template, ok := bundle[id]; ok {
				return template, true
			}
		}
	}
	return "", false
}
