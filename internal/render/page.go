package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// LoadTemplate reads the HTML template from disk.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return string(data), nil
}

// InjectCards substitutes the placeholder token with the rendered cards,
// exactly once. A template without the token passes through unchanged;
// that is deliberately not validated.
func InjectCards(template, placeholder, cards string) string {
	return strings.Replace(template, placeholder, cards, 1)
}

// NotFoundFragment is the page content used when zero records matched the
// query or filter selection.
func NotFoundFragment(query string) string {
	return fmt.Sprintf(
		"<h2 class=\"cards__not-found\">No animals found for \"%s\".</h2>\n",
		html.EscapeString(query),
	)
}

// WritePage writes the assembled page to disk, creating parent directories
// as needed.
func WritePage(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output dir for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write page %s: %w", path, err)
	}
	return nil
}
