package interaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/interaction"
)

func TestParseType_ValidValues(t *testing.T) {
	for _, s := range []string{"apply", "bookmark"} {
		got, err := interaction.ParseType(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(got))
	}
}

func TestParseType_RejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "APPLY", "like", "view"} {
		_, err := interaction.ParseType(s)
		assert.Error(t, err, "ParseType(%q)", s)
	}
}
