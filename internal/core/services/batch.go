package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
	"github.com/vocalise-labs/vocalise-cli/internal/logger"
)

// Ensure BatchService implements the interface.
var _ driving.BatchService = (*BatchService)(nil)

// BatchService normalizes documents: files on disk or payloads handed
// in directly.
type BatchService struct {
	text driving.TextService
}

// NewBatchService creates a new batch service.
func NewBatchService(text driving.TextService) *BatchService {
	return &BatchService{text: text}
}

// ProcessDocument normalizes one document and returns it with the
// Output and ProcessedAt fields populated.
func (s *BatchService) ProcessDocument(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}

	out, err := s.text.Process(ctx, doc.Input)
	if err != nil {
		return domain.Document{}, fmt.Errorf("processing document %s: %w", doc.ID, err)
	}

	doc.Output = out
	doc.ProcessedAt = time.Now()
	logger.Info("Processed document %s (%d -> %d bytes)", doc.ID, len(doc.Input), len(doc.Output))
	return doc, nil
}

// ProcessFile reads, normalizes and returns the document for a file.
func (s *BatchService) ProcessFile(ctx context.Context, path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := domain.Document{
		ID:    uuid.New().String(),
		URI:   path,
		Input: string(data),
	}
	return s.ProcessDocument(ctx, doc)
}
