// Package i18n отдаёт сообщения об ошибках на языке клиента.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

type Localizer interface {
	Message(lang, key string) string
}

type Catalog struct {
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

// NewCatalog загружает встроенные каталоги; fallback — первый язык в списке
func NewCatalog(fallback string) (*Catalog, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("parse fallback language %q: %w", fallback, err)
	}

	c := &Catalog{}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json")
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", name, err)
		}

		data, err := locales.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %q: %w", name, err)
		}
		msgs := map[string]string{}
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("decode locale %q: %w", name, err)
		}

		if tag == fallbackTag {
			c.tags = append([]language.Tag{tag}, c.tags...)
			c.messages = append([]map[string]string{msgs}, c.messages...)
			continue
		}
		c.tags = append(c.tags, tag)
		c.messages = append(c.messages, msgs)
	}
	if len(c.tags) == 0 || c.tags[0] != fallbackTag {
		return nil, fmt.Errorf("no catalog for fallback language %q", fallback)
	}

	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Message принимает как одиночный тег ("pt-BR"), так и заголовок Accept-Language
func (c *Catalog) Message(lang, key string) string {
	if msg, ok := c.messages[c.index(lang)][key]; ok {
		return msg
	}
	if msg, ok := c.messages[0][key]; ok {
		return msg
	}
	return key
}

func (c *Catalog) index(lang string) int {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return 0
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return 0
	}
	return idx
}
