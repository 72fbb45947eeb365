// Package site composes records, rendering, and file output into one
// generation pipeline.
package site

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wildpages/wildpages/internal/metrics"
	"github.com/wildpages/wildpages/internal/record"
	"github.com/wildpages/wildpages/internal/render"
)

// Builder turns a slice of records into the final HTML page on disk.
type Builder struct {
	templatePath string
	outputPath   string
	placeholder  string
	logger       *zap.Logger
}

// NewBuilder constructs a Builder.
func NewBuilder(templatePath, outputPath, placeholder string, logger *zap.Logger) *Builder {
	metrics.Init()
	return &Builder{
		templatePath: templatePath,
		outputPath:   outputPath,
		placeholder:  placeholder,
		logger:       logger,
	}
}

// Build renders the records and writes the output page. Zero records is
// not an error: the page is still written, carrying a not-found fragment
// naming the selection. One run, one artifact.
func (b *Builder) Build(recs []record.Record, selection, source string) error {
	log := b.logger.With(zap.String("run_id", uuid.NewString()))

	template, err := render.LoadTemplate(b.templatePath)
	if err != nil {
		return err
	}

	var (
		fragment string
		cards    int
	)
	if len(recs) == 0 {
		log.Warn("No matching animals; writing not-found page",
			zap.String("selection", selection))
		fragment = render.NotFoundFragment(selection)
	} else {
		fragment, cards = render.BuildCards(recs)
	}

	page := render.InjectCards(template, b.placeholder, fragment)
	if err := render.WritePage(b.outputPath, page); err != nil {
		return fmt.Errorf("build page: %w", err)
	}

	metrics.ObservePageGenerated(source, cards)
	log.Info("Wrote page",
		zap.String("path", b.outputPath),
		zap.String("source", source),
		zap.Int("animals", len(recs)),
		zap.Int("cards", cards),
	)
	return nil
}
