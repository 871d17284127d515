/*
Package bundle provides in-memory resource bundles with locale chain
resolution. Bundles hold plain key-value messages; loading them from
files is up to the caller.
*/
package bundle

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Bundle is a set of messages for one language.
type Bundle struct {
	tag      language.Tag
	messages map[string]string
}

// New creates a bundle for the given language with a copy of the
// messages.
func New(tag language.Tag, messages map[string]string) *Bundle {
	b := &Bundle{
		tag:      tag,
		messages: make(map[string]string, len(messages)),
	}
	maps.Copy(b.messages, messages)

	return b
}

// Tag returns the bundle's language tag.
func (b *Bundle) Tag() language.Tag {
	return b.tag
}

// Lookup returns the message stored under key.
func (b *Bundle) Lookup(key string) (string, bool) {
	msg, ok := b.messages[key]
	return msg, ok
}

// Keys returns the message keys in sorted order.
func (b *Bundle) Keys() []string {
	return slices.Sorted(maps.Keys(b.messages))
}

// Merge copies messages from other into the bundle and returns the
// bundle. Existing keys are kept: the receiver wins on conflict.
func (b *Bundle) Merge(other *Bundle) *Bundle {
	for k, v := range other.messages {
		if _, ok := b.messages[k]; !ok {
			b.messages[k] = v
		}
	}

	return b
}

// Catalog is a set of bundles indexed by language.
type Catalog struct {
	bundles map[language.Tag]*Bundle
	tags    []language.Tag
	matcher language.Matcher
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		bundles: make(map[language.Tag]*Bundle),
	}
}

// Add puts a bundle into the catalog. A bundle already in the catalog
// for the same language is merged with the new one and wins on
// conflict. The first bundle added is the fallback for preferences
// that match nothing.
func (c *Catalog) Add(b *Bundle) {
	if existing, ok := c.bundles[b.tag]; ok {
		existing.Merge(b)
		return
	}

	c.bundles[b.tag] = b
	c.tags = append(c.tags, b.tag)
	c.matcher = language.NewMatcher(c.tags)
}

// Tags returns the catalog's language tags in insertion order.
func (c *Catalog) Tags() []language.Tag {
	return slices.Clone(c.tags)
}

// Resolve looks up key for the best matching preferred language. When
// the matched bundle has no message for the key, parent languages are
// consulted up to the root.
func (c *Catalog) Resolve(key string, prefs ...language.Tag) (string, bool) {
	if len(c.tags) == 0 {
		return "", false
	}

	_, index, _ := c.matcher.Match(prefs...)
	tag := c.tags[index]

	for {
		if b, ok := c.bundles[tag]; ok {
			if msg, ok := b.Lookup(key); ok {
				return msg, true
			}
		}

		if tag == language.Und {
			return "", false
		}
		tag = tag.Parent()
	}
}
