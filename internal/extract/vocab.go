package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/shashankg86/catalog-extractor/constants"
)

// Vocabulary is the injectable table set the extractor runs on. Instances are
// built once and never mutated afterwards.
type Vocabulary struct {
	CurrencyTokens []string
	ExcludedNames  []string
	Categories     []constants.CategoryKeywords
}

// DefaultVocabulary returns the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		CurrencyTokens: constants.DefaultCurrencyTokens,
		ExcludedNames:  constants.DefaultExcludedNames,
		Categories:     constants.DefaultCategoryTable,
	}
}

// vocabOverride is the JSON shape accepted from a vocabulary override file.
type vocabOverride struct {
	CurrencyTokens []string `json:"currency_tokens"`
	ExcludedNames  []string `json:"excluded_names"`
	Categories     []struct {
		Category string   `json:"category"`
		Keywords []string `json:"keywords"`
	} `json:"categories"`
}

// overrideSchema constrains vocabulary override files before they are merged.
func overrideSchema() map[string]any {
	nonEmptyStrings := map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"currency_tokens": nonEmptyStrings,
			"excluded_names":  nonEmptyStrings,
			"categories": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"category", "keywords"},
					"properties": map[string]any{
						"category": map[string]any{"type": "string", "minLength": 1},
						"keywords": nonEmptyStrings,
					},
				},
			},
		},
	}
}

// validateAgainstSchema validates "data" against "schemaMap".
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("vocab.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("vocab.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal override: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("override does not match schema: %w", err)
	}
	return nil
}

// ApplyOverrides validates the override document and replaces any table it
// names; tables it omits keep their defaults.
func ApplyOverrides(base Vocabulary, data []byte) (Vocabulary, error) {
	if err := validateAgainstSchema(overrideSchema(), data); err != nil {
		return Vocabulary{}, err
	}
	var ov vocabOverride
	if err := json.Unmarshal(data, &ov); err != nil {
		return Vocabulary{}, fmt.Errorf("decode override: %w", err)
	}
	out := base
	if len(ov.CurrencyTokens) > 0 {
		out.CurrencyTokens = ov.CurrencyTokens
	}
	if len(ov.ExcludedNames) > 0 {
		out.ExcludedNames = ov.ExcludedNames
	}
	if len(ov.Categories) > 0 {
		cats := make([]constants.CategoryKeywords, 0, len(ov.Categories))
		for _, c := range ov.Categories {
			cats = append(cats, constants.CategoryKeywords{
				Category: constants.Category(c.Category),
				Keywords: c.Keywords,
			})
		}
		out.Categories = cats
	}
	return out, nil
}

// LoadVocabulary returns the defaults merged with the override file at path,
// or plain defaults when path is empty.
func LoadVocabulary(path string) (Vocabulary, error) {
	base := DefaultVocabulary()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary override: %w", err)
	}
	return ApplyOverrides(base, data)
}
