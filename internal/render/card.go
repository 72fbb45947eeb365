// Package render serializes resolved animal records into HTML card
// fragments and assembles the final page.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/wildpages/wildpages/internal/record"
)

// fact maps a display label to the ordered key aliases that may carry it.
type fact struct {
	label   string
	aliases []string
}

// extraFacts is the fixed catalog of secondary facts, rendered after the
// core ones in this exact order.
var extraFacts = []fact{
	{"Lifespan", []string{"lifespan", "lifespan_in_wild", "lifespan_in_captivity"}},
	{"Weight", []string{"weight", "avg_weight", "weight_range"}},
	{"Length", []string{"length", "avg_length", "length_range"}},
	{"Height", []string{"height", "avg_height", "height_range"}},
	{"Top speed", []string{"top_speed", "speed", "max_speed"}},
	{"Habitat", []string{"habitat"}},
	{"Temperament", []string{"temperament", "behavior"}},
	{"Color(s)", []string{"color", "colors"}},
	{"Scientific name", []string{"scientific_name", "latin_name"}},
	{"Family", []string{"family"}},
	{"Order", []string{"order"}},
	{"Class", []string{"class", "class_name"}},
	{"Geo range", []string{"geo_range", "native_region", "range"}},
	{"Conservation status", []string{"conservation_status", "status"}},
	{"Fun fact", []string{"fun_fact", "funfact"}},
	{"Description", []string{"description"}},
}

// formatValue renders a fact value as text: lists are comma-joined with
// blank elements dropped, then the whole thing is HTML-escaped as one unit.
func formatValue(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			s := strings.TrimSpace(fmt.Sprint(item))
			if s != "" {
				parts = append(parts, s)
			}
		}
		return html.EscapeString(strings.Join(parts, ", "))
	}
	return html.EscapeString(fmt.Sprint(v))
}

// resolvedFacts gathers the ordered (label, value) pairs present on a
// record: the core facts first, then the extras catalog.
func resolvedFacts(r record.Record) [][2]any {
	var facts [][2]any

	if diet := r.Field("diet"); diet != nil {
		facts = append(facts, [2]any{"Diet", diet})
	}

	// Location only ever shows the first entry of a multi-location list.
	if loc := firstLocation(r); loc != "" {
		facts = append(facts, [2]any{"Location", loc})
	}

	if typ := r.Field("type"); typ != nil {
		facts = append(facts, [2]any{"Type", typ})
	}

	if skin := r.SkinType(); skin != record.UnknownSkin {
		facts = append(facts, [2]any{"Skin type", skin})
	}

	for _, f := range extraFacts {
		if v := r.Field(f.aliases...); v != nil {
			facts = append(facts, [2]any{f.label, v})
		}
	}
	return facts
}

func firstLocation(r record.Record) string {
	switch locs := r.Field("locations", "location").(type) {
	case []any:
		if len(locs) > 0 {
			return strings.TrimSpace(fmt.Sprint(locs[0]))
		}
	case string:
		return strings.TrimSpace(locs)
	}
	return ""
}

// SerializeCard renders one record as an HTML list-item fragment.
// A record yielding neither a title nor any facts serializes to "".
func SerializeCard(r record.Record) string {
	var title string
	if name := r.Field("name"); name != nil {
		title = fmt.Sprintf("  <div class=\"card__title\">%s</div>\n", html.EscapeString(fmt.Sprint(name)))
	}

	facts := resolvedFacts(r)
	if title == "" && len(facts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(facts))
	for _, f := range facts {
		lines = append(lines, fmt.Sprintf(
			"        <li class=\"card__fact\"><span class=\"label\">%s:</span> %s</li>",
			html.EscapeString(f[0].(string)), formatValue(f[1]),
		))
	}

	var b strings.Builder
	b.WriteString("  <li class=\"cards__item\">\n")
	b.WriteString(title)
	b.WriteString("  <div class=\"card__text\">\n")
	b.WriteString("    <ul class=\"card__facts\">\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n    </ul>\n")
	b.WriteString("  </div>\n")
	b.WriteString("  </li>\n")
	return b.String()
}

// BuildCards renders records independently and concatenates the fragments
// in input order. The count reports cards actually emitted; records that
// serialize to nothing are not counted.
func BuildCards(recs []record.Record) (string, int) {
	var b strings.Builder
	cards := 0
	for _, r := range recs {
		if fragment := SerializeCard(r); fragment != "" {
			b.WriteString(fragment)
			cards++
		}
	}
	return b.String(), cards
}
