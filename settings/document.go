package settings

import (
	"encoding/json"
	"fmt"
)

// Document is the persisted settings payload: a base record plus
// per-section overrides.
type Document struct {
	Base       Settings           `json:"base"`
	Influences map[string]Partial `json:"influences"`
}

// DefaultDocument returns the compiled-in base and influence table.
func DefaultDocument() Document {
	return Document{Base: Defaults(), Influences: DefaultInfluences()}
}

// rawDocument keeps the base sparse so missing keys fall back to defaults.
type rawDocument struct {
	Base       Partial            `json:"base"`
	Influences map[string]Partial `json:"influences"`
}

// ParseDocument decodes a JSON payload and merges it over the defaults.
func ParseDocument(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("parsing settings document: %w", err)
	}
	return Merge(raw.Base, raw.Influences), nil
}

// Merge overlays base onto the default record and each known influence
// section onto its defaults. Sections without a default are dropped.
func Merge(base Partial, influences map[string]Partial) Document {
	doc := DefaultDocument()
	doc.Base.Overlay(base)
	for section, def := range doc.Influences {
		if over, ok := influences[section]; ok {
			doc.Influences[section] = def.Merge(over)
		}
	}
	return doc
}
