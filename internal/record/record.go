// Package record models raw animal records and the alias-based field
// resolver that papers over the inconsistent source schemas.
package record

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// UnknownSkin labels records that carry no skin type.
const UnknownSkin = "Unknown"

// AllSkins is the filter sentinel that matches every record.
const AllSkins = "ALL"

// Record is one source animal's raw attribute mapping. Fields may be
// absent, empty, or nested under a "characteristics" sub-mapping; values
// are whatever the JSON decoder produced (string, list, nested map).
type Record map[string]any

// lookupCI returns the first value matching any of the aliases.
// Exact key matches win, in alias order; a case-insensitive pass over the
// map follows. Nil values are skipped only in the case-insensitive pass,
// mirroring the exact-match-returns-whatever-is-there contract.
func lookupCI(m map[string]any, aliases ...string) any {
	for _, k := range aliases {
		if v, ok := m[k]; ok {
			return v
		}
	}
	lower := make(map[string]any, len(m))
	for k, v := range m {
		lower[strings.ToLower(k)] = v
	}
	for _, k := range aliases {
		if v := lower[strings.ToLower(k)]; v != nil {
			return v
		}
	}
	return nil
}

// Field resolves a canonical field value for the given ordered aliases.
// The top level is tried first; only when it yields nothing is the nested
// "characteristics" mapping (itself located case-insensitively) consulted.
// String values are trimmed, and a whitespace-only string resolves as
// absent. Note the tier order means an empty top-level string masks a
// non-empty nested value; that is intentional and relied upon.
func (r Record) Field(aliases ...string) any {
	v := lookupCI(r, aliases...)
	if v == nil {
		if ch, ok := lookupCI(r, "characteristics").(map[string]any); ok {
			v = lookupCI(ch, aliases...)
		}
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return s
	}
	return v
}

// SkinType returns the record's normalized skin type, or UnknownSkin when
// the record has none.
func (r Record) SkinType() string {
	v := r.Field("skin_type", "skin type", "skintype")
	if v == nil {
		return UnknownSkin
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Decode parses a JSON document into records. The document is either an
// array of record objects or an object with a top-level "animals" array.
// Non-object entries are silently dropped; any other shape decodes to zero
// records without error.
func Decode(data []byte) ([]Record, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return FromValue(doc), nil
}

// FromValue extracts records from an already-decoded JSON value.
func FromValue(doc any) []Record {
	switch v := doc.(type) {
	case []any:
		return collect(v)
	case map[string]any:
		if list, ok := v["animals"].([]any); ok {
			return collect(list)
		}
	}
	return nil
}

func collect(list []any) []Record {
	recs := make([]Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			recs = append(recs, Record(m))
		}
	}
	return recs
}

// SkinTypeCount pairs a skin type with the number of records carrying it.
type SkinTypeCount struct {
	Name  string
	Count int
}

// SkinTypeCounts tallies skin types across records. Grouping is
// case-insensitive with the first-seen spelling as the display name;
// results are sorted case-insensitively by name with UnknownSkin kept last.
func SkinTypeCounts(recs []Record) []SkinTypeCount {
	tally := make(map[string]*SkinTypeCount)
	unknown := 0
	for _, r := range recs {
		st := r.SkinType()
		if st == UnknownSkin {
			unknown++
			continue
		}
		key := strings.ToLower(st)
		if c, ok := tally[key]; ok {
			c.Count++
		} else {
			tally[key] = &SkinTypeCount{Name: st, Count: 1}
		}
	}
	counts := make([]SkinTypeCount, 0, len(tally)+1)
	for _, c := range tally {
		counts = append(counts, *c)
	}
	sort.Slice(counts, func(i, j int) bool {
		return strings.ToLower(counts[i].Name) < strings.ToLower(counts[j].Name)
	})
	if unknown > 0 {
		counts = append(counts, SkinTypeCount{Name: UnknownSkin, Count: unknown})
	}
	return counts
}

// FilterBySkin restricts records to the chosen skin type. AllSkins keeps
// everything; UnknownSkin selects records with no skin type; any other
// choice matches case-insensitively.
func FilterBySkin(recs []Record, chosen string) []Record {
	if chosen == AllSkins {
		return recs
	}
	var out []Record
	for _, r := range recs {
		st := r.SkinType()
		if chosen == UnknownSkin {
			if st == UnknownSkin {
				out = append(out, r)
			}
			continue
		}
		if strings.EqualFold(st, chosen) {
			out = append(out, r)
		}
	}
	return out
}
