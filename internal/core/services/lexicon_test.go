package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalise-labs/vocalise-cli/internal/adapters/driven/storage/memory"
	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
)

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewLexiconService(memory.NewLexiconStore())

	require.NoError(t, svc.Add(ctx, "  GmbH  ", "gesellschaft"))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gmbh", entries[0].Written)
	assert.Equal(t, "gesellschaft", entries[0].Spoken)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestAdd_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := NewLexiconService(memory.NewLexiconStore())

	assert.ErrorIs(t, svc.Add(ctx, "", "spoken"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Add(ctx, "written", "   "), domain.ErrInvalidInput)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := NewLexiconService(memory.NewLexiconStore())

	require.NoError(t, svc.Add(ctx, "api", "ay pee eye"))
	require.NoError(t, svc.Remove(ctx, "API"))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove_NotFound(t *testing.T) {
	svc := NewLexiconService(memory.NewLexiconStore())

	err := svc.Remove(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLexiconInterfaceCompliance(t *testing.T) {
	var _ driving.LexiconService = (*LexiconService)(nil)
}
