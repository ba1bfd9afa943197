package ftype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genftype/internal/common"
)

func TestParseRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Rule
	}{
		{"empty", "", []Rule{}},
		{"single", "ab", []Rule{{'a', 'b'}}},
		{"chained", "abbc", []Rule{{'a', 'b'}, {'b', 'c'}}},
		{"space target", "- ", []Rule{{'-', ' '}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRules(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRulesOddLength(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"a", "abc", "d D"} {
		_, err := ParseRules(input)
		assert.True(t, errors.Is(err, common.ErrTranslateOddLength), "input %q", input)
	}
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		table string
		rules string
		want  string
	}{
		{"single rule", "?a?", "ab", "?b?"},
		{"no match", "?a?", "xy", "?a?"},
		{"chained rules cascade", "?a?", "abbc", "?c?"},
		{"chain only forward", "?a?", "bcab", "?b?"},
		{"swap is not a swap", "ab", "abba", "aa"},
		{"sentinel can be remapped", "?d", "? ", " d"},
		{"directory only", "????d???-?l?????", "dD", "????D???-?l?????"},
		{"no rules", "?pc?d", "", "?pc?d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rules, err := ParseRules(tt.rules)
			require.NoError(t, err)
			table := Table(tt.table)
			table.Translate(rules)
			assert.Equal(t, tt.want, table.String())
		})
	}
}
