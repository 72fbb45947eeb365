// Package prompt implements the interactive operator prompts. All prompts
// run over injected reader/writer pairs so tests can drive them.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/wildpages/wildpages/internal/record"
)

// ErrInputClosed is returned when the input stream ends before a usable
// answer was read.
var ErrInputClosed = errors.New("input closed")

// suggestThreshold is the maximum edit distance for a did-you-mean hint.
const suggestThreshold = 2

// AnimalName asks for an animal name to search, re-prompting until the
// answer is non-empty.
func AnimalName(r io.Reader, w io.Writer) (string, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Enter a name of an animal: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read animal name: %w", err)
			}
			return "", ErrInputClosed
		}
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			return name, nil
		}
		fmt.Fprintln(w, "Please enter a non-empty name.")
	}
}

// SkinChoice lists the available skin types with counts and reads one
// selection, by ordinal position or case-insensitive name. Anything else
// defaults to showing all animals, with a closest-match hint when one of
// the known names is within editing distance.
func SkinChoice(r io.Reader, w io.Writer, counts []record.SkinTypeCount) string {
	fmt.Fprintf(w, "\nAvailable skin_type values:\n\n")
	for i, c := range counts {
		fmt.Fprintf(w, "  %d. %s (%d)\n", i+1, c.Name, c.Count)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "Choose a skin_type (name or number): ")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		fmt.Fprintln(w, "\nNo selection. Showing all animals.")
		return record.AllSkins
	}
	choice := strings.TrimSpace(scanner.Text())

	if idx, err := strconv.Atoi(choice); err == nil {
		if idx >= 1 && idx <= len(counts) {
			return counts[idx-1].Name
		}
	}
	for _, c := range counts {
		if strings.EqualFold(c.Name, choice) {
			return c.Name
		}
	}

	if hint := closestName(choice, counts); hint != "" {
		fmt.Fprintf(w, "Invalid choice (did you mean %q?). Defaulting to showing all animals.\n", hint)
	} else {
		fmt.Fprintln(w, "Invalid choice. Defaulting to showing all animals.")
	}
	return record.AllSkins
}

func closestName(choice string, counts []record.SkinTypeCount) string {
	choice = strings.ToLower(choice)
	if choice == "" {
		return ""
	}
	best, bestDist := "", suggestThreshold+1
	for _, c := range counts {
		if d := levenshtein.ComputeDistance(choice, strings.ToLower(c.Name)); d < bestDist {
			best, bestDist = c.Name, d
		}
	}
	return best
}
