package record

import (
	"testing"
)

func TestFieldExactBeforeCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := Record{"Diet": "Herbivore", "diet": "Omnivore"}
	if got := r.Field("diet"); got != "Omnivore" {
		t.Fatalf("Field(diet) = %v, want exact-match Omnivore", got)
	}
	if got := r.Field("DIET"); got == nil {
		t.Fatal("expected case-insensitive fallback to find a value")
	}
}

func TestFieldTopLevelBeatsNested(t *testing.T) {
	t.Parallel()

	r := Record{
		"type":            "Mammal",
		"characteristics": map[string]any{"type": "Bird"},
	}
	if got := r.Field("type"); got != "Mammal" {
		t.Fatalf("Field(type) = %v, want top-level Mammal", got)
	}
}

func TestFieldFallsBackToCharacteristics(t *testing.T) {
	t.Parallel()

	r := Record{
		"Characteristics": map[string]any{"Diet": "Omnivore"},
	}
	if got := r.Field("diet"); got != "Omnivore" {
		t.Fatalf("Field(diet) = %v, want nested Omnivore", got)
	}
}

func TestFieldWhitespaceResolvesAbsent(t *testing.T) {
	t.Parallel()

	r := Record{"habitat": "   "}
	if got := r.Field("habitat"); got != nil {
		t.Fatalf("Field(habitat) = %v, want nil for whitespace value", got)
	}

	// An empty top-level value masks the nested tier; the resolver must
	// not fall through to characteristics.
	masked := Record{
		"habitat":         "",
		"characteristics": map[string]any{"habitat": "Forest"},
	}
	if got := masked.Field("habitat"); got != nil {
		t.Fatalf("Field(habitat) = %v, want nil when top level is empty", got)
	}
}

func TestFieldAliasOrder(t *testing.T) {
	t.Parallel()

	r := Record{"avg_weight": "5kg", "weight": "4kg"}
	if got := r.Field("weight", "avg_weight"); got != "4kg" {
		t.Fatalf("Field = %v, want first alias to win", got)
	}
}

func TestDecodeShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want int
	}{
		{"array", `[{"name":"Fox"},{"name":"Owl"}]`, 2},
		{"animals object", `{"animals":[{"name":"Fox"}]}`, 1},
		{"non-mapping entries dropped", `[{"name":"Fox"}, 42, "nope", null]`, 1},
		{"unrelated object", `{"items":[{"name":"Fox"}]}`, 0},
		{"scalar", `"hello"`, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recs, err := Decode([]byte(tc.in))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(recs) != tc.want {
				t.Fatalf("Decode() = %d records, want %d", len(recs), tc.want)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	if _, err := Decode([]byte(`{"animals": [`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestSkinTypeCounts(t *testing.T) {
	t.Parallel()

	recs := []Record{
		{"skin_type": "Fur"},
		{"skin_type": "fur"},
		{},
	}
	counts := SkinTypeCounts(recs)
	if len(counts) != 2 {
		t.Fatalf("got %d groups, want 2: %+v", len(counts), counts)
	}
	// "Fur" and "fur" merge under the first-seen spelling; Unknown trails.
	if counts[0].Name != "Fur" || counts[0].Count != 2 {
		t.Fatalf("first group = %+v, want Fur(2)", counts[0])
	}
	if counts[1].Name != UnknownSkin || counts[1].Count != 1 {
		t.Fatalf("last group = %+v, want %s(1)", counts[1], UnknownSkin)
	}
}

func TestSkinTypeCountsSortedCaseInsensitive(t *testing.T) {
	t.Parallel()

	recs := []Record{
		{"skin_type": "Scales"},
		{"skin_type": "feathers"},
		{"skin_type": "Fur"},
	}
	counts := SkinTypeCounts(recs)
	names := []string{counts[0].Name, counts[1].Name, counts[2].Name}
	want := []string{"feathers", "Fur", "Scales"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestFilterBySkin(t *testing.T) {
	t.Parallel()

	recs := []Record{
		{"name": "Fox", "skin_type": "Fur"},
		{"name": "Asp", "characteristics": map[string]any{"skin_type": "Scales"}},
		{"name": "Blob"},
	}

	if got := FilterBySkin(recs, AllSkins); len(got) != 3 {
		t.Fatalf("ALL filter kept %d, want 3", len(got))
	}
	if got := FilterBySkin(recs, "fur"); len(got) != 1 || got[0]["name"] != "Fox" {
		t.Fatalf("fur filter = %+v, want just Fox", got)
	}
	if got := FilterBySkin(recs, "Scales"); len(got) != 1 || got[0]["name"] != "Asp" {
		t.Fatalf("Scales filter = %+v, want just Asp (nested skin_type)", got)
	}
	if got := FilterBySkin(recs, UnknownSkin); len(got) != 1 || got[0]["name"] != "Blob" {
		t.Fatalf("Unknown filter = %+v, want just Blob", got)
	}
}
