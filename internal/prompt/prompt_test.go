package prompt

import (
	"strings"
	"testing"

	"github.com/wildpages/wildpages/internal/record"
)

var testCounts = []record.SkinTypeCount{
	{Name: "Feathers", Count: 2},
	{Name: "Fur", Count: 5},
	{Name: record.UnknownSkin, Count: 1},
}

func TestAnimalNameRepromptsUntilNonEmpty(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("\n   \nFox\n")
	var out strings.Builder
	name, err := AnimalName(in, &out)
	if err != nil {
		t.Fatalf("AnimalName() error = %v", err)
	}
	if name != "Fox" {
		t.Fatalf("AnimalName() = %q, want Fox", name)
	}
	if got := strings.Count(out.String(), "Enter a name"); got != 3 {
		t.Fatalf("prompted %d times, want 3", got)
	}
}

func TestAnimalNameInputClosed(t *testing.T) {
	t.Parallel()

	_, err := AnimalName(strings.NewReader(""), &strings.Builder{})
	if err == nil {
		t.Fatal("expected error on closed input")
	}
}

func TestSkinChoiceByOrdinal(t *testing.T) {
	t.Parallel()

	got := SkinChoice(strings.NewReader("2\n"), &strings.Builder{}, testCounts)
	if got != "Fur" {
		t.Fatalf("SkinChoice(2) = %q, want Fur", got)
	}
}

func TestSkinChoiceByNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := SkinChoice(strings.NewReader("fEaThErS\n"), &strings.Builder{}, testCounts)
	if got != "Feathers" {
		t.Fatalf("SkinChoice = %q, want canonical Feathers", got)
	}
}

func TestSkinChoiceInvalidDefaultsToAll(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	got := SkinChoice(strings.NewReader("99\n"), &out, testCounts)
	if got != record.AllSkins {
		t.Fatalf("SkinChoice(99) = %q, want ALL", got)
	}
	if !strings.Contains(out.String(), "Defaulting to showing all") {
		t.Fatalf("missing default notice in output: %q", out.String())
	}
}

func TestSkinChoiceSuggestsClosestName(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	got := SkinChoice(strings.NewReader("furr\n"), &out, testCounts)
	if got != record.AllSkins {
		t.Fatalf("SkinChoice(furr) = %q, want ALL", got)
	}
	if !strings.Contains(out.String(), `did you mean "Fur"?`) {
		t.Fatalf("missing suggestion in output: %q", out.String())
	}
}

func TestSkinChoiceListsCounts(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	SkinChoice(strings.NewReader("1\n"), &out, testCounts)
	for _, want := range []string{"1. Feathers (2)", "2. Fur (5)", "3. Unknown (1)"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("listing missing %q:\n%s", want, out.String())
		}
	}
}
