package punctuation

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
		{name: "sentence", in: "hello, world.", want: "hello world"},
		{name: "in word apostrophe kept", in: "three o'clock pm.", want: "three o'clock pm"},
		{name: "quotes dropped", in: `"quoted" text`, want: "quoted text"},
		{name: "dash collapses spaces", in: "one - two", want: "one two"},
		{name: "symbols dropped", in: "a + b = c", want: "a b c"},
		{name: "nothing to strip", in: "plain words", want: "plain words"},
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
	assert.Equal(t, "punctuation", New().Name())
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Pass = (*Pass)(nil)
}
