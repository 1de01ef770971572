package i18n

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes one translation file. The result maps a language code to a
// tree of keys.
type Parser interface {
	Parse(content []byte) (map[string]map[string]any, error)
	SupportsFileExtension(ext string) bool
}

// YAMLParser reads files shaped like:
//
//	ko:
//	  form:
//	    name:
//	      required: "이름을 입력해주세요"
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q holds %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = tree
	}
	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
