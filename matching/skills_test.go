package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSkillSet(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{name: "nil input", raw: nil, want: []string{}},
		{name: "trims entries", raw: []string{"  Go ", "SQL\t"}, want: []string{"Go", "SQL"}},
		{name: "drops empty entries", raw: []string{"", "   ", "Docker"}, want: []string{"Docker"}},
		{name: "keeps first casing on duplicates", raw: []string{"React", "react", "REACT ", "Node.js"}, want: []string{"React", "Node.js"}},
		{name: "preserves order", raw: []string{"c", "b", "a"}, want: []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewSkillSet(tt.raw)
			assert.Equal(t, tt.want, set.Skills())
			assert.Equal(t, len(tt.want), set.Len())
		})
	}
}

func TestSkillSet_Contains(t *testing.T) {
	set := NewSkillSet([]string{"Node.js", "PostgreSQL"})

	assert.True(t, set.Contains("node.js"))
	assert.True(t, set.Contains(" POSTGRESQL "))
	assert.False(t, set.Contains("Node"))
	assert.False(t, set.Contains(""))
}

func TestSkillSet_ZeroValue(t *testing.T) {
	var set SkillSet

	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains("Go"))
	assert.Empty(t, set.Skills())
}

func TestSkillSet_SkillsReturnsCopy(t *testing.T) {
	set := NewSkillSet([]string{"Go"})
	skills := set.Skills()
	skills[0] = "Rust"

	assert.Equal(t, []string{"Go"}, set.Skills())
}
