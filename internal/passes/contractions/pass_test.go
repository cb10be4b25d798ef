package contractions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "don't stop", want: "do not stop"},
		{name: "leading capital", in: "Don't stop", want: "Do not stop"},
		{name: "irregular", in: "I won't go", want: "I will not go"},
		{name: "multiple", in: "it's fine, they're here", want: "it is fine, they are here"},
		{name: "possessive untouched", in: "the dog's bowl", want: "the dog's bowl"},
		{name: "trailing punctuation", in: "can't.", want: "cannot."},
		{name: "no contractions", in: "plain text", want: "plain text"},
		{name: "empty", in: "", want: ""},
	}

	p := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Apply(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "contractions", New().Name())
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Pass = (*Pass)(nil)
}
