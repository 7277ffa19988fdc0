// Package i18n loads string tables and performs positional argument
// substitution on localized templates.
package i18n

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language is a loaded string table.
type Language struct {
	ID    string
	table map[string]string
}

// NewLanguage returns a Language backed by the given table.
//
// Postcondition: the table is copied; later changes to it do not affect the Language.
func NewLanguage(id string, table map[string]string) *Language {
	l := &Language{ID: id, table: make(map[string]string, len(table))}
	for k, v := range table {
		l.table[k] = v
	}
	return l
}

// LoadLanguage reads a string table file. The document is a mapping with a
// single key, the language ID, whose value maps string keys to templates:
//
//	en-US:
//	  STR_OK: "OK"
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a Language or a non-nil error.
func LoadLanguage(path string) (*Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading language file %s: %w", path, err)
	}
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing language file %s: %w", path, err)
	}
	if len(doc) != 1 {
		return nil, fmt.Errorf("language file %s: expected exactly one language key, got %d", path, len(doc))
	}
	var id string
	var table map[string]string
	for k, v := range doc {
		id, table = k, v
	}
	return NewLanguage(id, table), nil
}

// Tr returns the template for key. Unknown keys translate to themselves.
func (l *Language) Tr(key string) Text {
	if l != nil {
		if s, ok := l.table[key]; ok {
			return Text{s: s}
		}
	}
	return Text{s: key}
}

// Len returns the number of strings in the table.
func (l *Language) Len() int {
	return len(l.table)
}

// Text is a localized template with positional markers {0}, {1}, ...
type Text struct {
	s    string
	next int
}

// Arg replaces the next unfilled marker with v.
//
// Postcondition: every occurrence of the marker is replaced; a template
// without the marker is returned unchanged apart from advancing the position.
func (t Text) Arg(v string) Text {
	marker := "{" + strconv.Itoa(t.next) + "}"
	return Text{s: strings.ReplaceAll(t.s, marker, v), next: t.next + 1}
}

// String returns the text with all arguments applied so far.
func (t Text) String() string {
	return t.s
}
