package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog stores UI messages per locale.
type Catalog struct {
	messages map[Locale]map[string]string
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog embedded in the binary. It panics if the embedded files are
// malformed, which the package tests rule out.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadCatalog(embeddedLocales)
		if err != nil {
			panic(fmt.Sprintf("load embedded catalog: %s", err))
		}

		defaultCatalog = c
	})

	return defaultCatalog
}

// LoadCatalog reads every locales/*.yaml file of fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}

	sort.Strings(paths)

	c := &Catalog{messages: make(map[Locale]map[string]string, len(paths))}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}

		l, ok := Parse(file.Locale)
		if !ok {
			return nil, fmt.Errorf("catalog %s: unsupported locale %q", path, file.Locale)
		}

		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: messages map is required", path)
		}

		if _, dup := c.messages[l]; dup {
			return nil, fmt.Errorf("catalog %s: locale %s defined twice", path, l)
		}

		c.messages[l] = file.Messages
	}

	for _, l := range Supported() {
		if _, ok := c.messages[l]; !ok {
			return nil, fmt.Errorf("catalog for locale %s is missing", l)
		}
	}

	return c, nil
}

// Message looks key up in l, then in the other locale, and finally returns the key itself.
func (c *Catalog) Message(l Locale, key string) string {
	if msg, ok := c.messages[l][key]; ok {
		return msg
	}

	if msg, ok := c.messages[l.Other()][key]; ok {
		return msg
	}

	return key
}

// Section returns every message of l whose key starts with prefix, keyed without the prefix.
func (c *Catalog) Section(l Locale, prefix string) map[string]string {
	out := make(map[string]string)

	for _, locale := range []Locale{l.Other(), l} {
		for key, msg := range c.messages[locale] {
			if name, ok := strings.CutPrefix(key, prefix); ok {
				out[name] = msg
			}
		}
	}

	return out
}

// MissingKeys lists keys present in one locale but not the other.
func (c *Catalog) MissingKeys() []string {
	var missing []string

	for _, l := range Supported() {
		for key := range c.messages[l.Other()] {
			if _, ok := c.messages[l][key]; !ok {
				missing = append(missing, l.String()+":"+key)
			}
		}
	}

	sort.Strings(missing)

	return missing
}
