package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
)

// Partial is a sparse set of parameter values. Toggles are stored as 0 or 1.
type Partial map[Key]float64

// Clone returns an independent copy of p.
func (p Partial) Clone() Partial {
	out := make(Partial, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns base overlaid with the entries of over.
func (p Partial) Merge(over Partial) Partial {
	out := p.Clone()
	for k, v := range over {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the partial with camelCase keys, toggles as booleans.
func (p Partial) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(p))
	for k, v := range p {
		if k.IsBool() {
			raw[k.String()] = v != 0
		} else {
			raw[k.String()] = v
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes a JSON object. Values may be numbers or booleans for
// any key. Unknown keys, nulls and values of any other type are skipped so the
// key keeps whatever it is merged over.
func (p *Partial) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding settings partial: %w", err)
	}
	out := make(Partial, len(raw))
	for name, msg := range raw {
		k, ok := ParseKey(name)
		if !ok {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			continue
		}
		var num float64
		if err := json.Unmarshal(msg, &num); err == nil {
			out[k] = num
			continue
		}
		var b bool
		if err := json.Unmarshal(msg, &b); err == nil {
			out[k] = boolValue(b)
			continue
		}
		slog.Debug("skipping settings key", "key", name, "value", string(msg))
	}
	*p = out
	return nil
}

// SortedKeys returns the keys of p in declaration order.
func (p Partial) SortedKeys() []Key {
	keys := make([]Key, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
