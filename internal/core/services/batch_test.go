package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
)

func newBatchService() *BatchService {
	return NewBatchService(NewTextService(newEngine(domain.DatePolicyUK)))
}

func TestProcessDocument(t *testing.T) {
	svc := newBatchService()

	doc, err := svc.ProcessDocument(context.Background(), domain.Document{
		Input: "I have 13 apples",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "I have thirteen apples", doc.Output)
	assert.False(t, doc.ProcessedAt.IsZero())
}

func TestProcessDocument_KeepsExistingID(t *testing.T) {
	svc := newBatchService()

	doc, err := svc.ProcessDocument(context.Background(), domain.Document{
		ID:    "doc-1",
		Input: "the 3rd door",
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("meet at 3:45pm"), 0600))

	svc := newBatchService()
	doc, err := svc.ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.URI)
	assert.Equal(t, "meet at 3:45pm", doc.Input)
	assert.Equal(t, "meet at three forty five pm", doc.Output)
}

func TestProcessFile_Missing(t *testing.T) {
	svc := newBatchService()

	_, err := svc.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatchInterfaceCompliance(t *testing.T) {
	var _ driving.BatchService = (*BatchService)(nil)
}
