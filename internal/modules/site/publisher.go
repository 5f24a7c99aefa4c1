package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Publisher writes the static landing page.
type Publisher struct {
	assembler *Assembler
	output    string
	logger    *zap.Logger
}

func NewPublisher(assembler *Assembler, output string, logger *zap.Logger) *Publisher {
	return &Publisher{assembler: assembler, output: output, logger: logger}
}

// Output is the path of the published page.
func (p *Publisher) Output() string { return p.output }

// Publish renders the page with file-path images and overwrites the output
// file in place.
func (p *Publisher) Publish(ctx context.Context) error {
	content, err := p.assembler.Assemble(ctx, Publish, nil)
	if err != nil {
		p.logger.Error("publish failed", zap.Error(err))
		return err
	}
	html, err := Render(content)
	if err != nil {
		p.logger.Error("publish failed", zap.String("stage", "render"), zap.Error(err))
		return fmt.Errorf("render: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.output), 0o755); err != nil {
		p.logger.Error("publish failed", zap.String("path", p.output), zap.Error(err))
		return fmt.Errorf("create site dir: %w", err)
	}
	if err := os.WriteFile(p.output, []byte(html), 0o644); err != nil {
		p.logger.Error("publish failed", zap.String("path", p.output), zap.Error(err))
		return fmt.Errorf("write %s: %w", p.output, err)
	}
	p.logger.Info("site published", zap.String("path", p.output), zap.Int("bytes", len(html)))
	return nil
}
