package lexicon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalise-labs/vocalise-cli/internal/adapters/driven/storage/memory"
	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

func newTestPass(t *testing.T, entries map[string]string) *Pass {
	t.Helper()
	store := memory.NewLexiconStore()
	for written, spoken := range entries {
		err := store.Put(context.Background(), domain.LexiconEntry{
			Written:   written,
			Spoken:    spoken,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}
	return New(store)
}

func TestApply(t *testing.T) {
	p := newTestPass(t, map[string]string{
		"gmbh": "gesellschaft mit beschraenkter haftung",
		"km/h": "kilometres per hour",
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "whole word",
			in:   "the GmbH was founded",
			want: "the gesellschaft mit beschraenkter haftung was founded",
		},
		{
			name: "unit with slash",
			in:   "120 km/h limit",
			want: "120 kilometres per hour limit",
		},
		{
			name: "sentence final dot survives",
			in:   "we drove 120 km/h.",
			want: "we drove 120 kilometres per hour.",
		},
		{
			name: "partial word untouched",
			in:   "kmh is not a unit",
			want: "kmh is not a unit",
		},
		{
			name: "no entries match",
			in:   "plain text",
			want: "plain text",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Apply(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApply_EmptyLexicon(t *testing.T) {
	p := newTestPass(t, nil)

	got, err := p.Apply(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Equal(t, "anything at all", got)
}

func TestName(t *testing.T) {
	assert.Equal(t, "lexicon", New(memory.NewLexiconStore()).Name())
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Pass = (*Pass)(nil)
}
