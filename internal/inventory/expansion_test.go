package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpansionSetToggle(t *testing.T) {
	s := NewExpansionSet()

	assert.True(t, s.Toggle("p6"))
	assert.True(t, s.IsExpanded("p6"))
	assert.True(t, s.Toggle("p16"))
	assert.Equal(t, []string{"p16", "p6"}, s.IDs())

	assert.False(t, s.Toggle("p6"))
	assert.False(t, s.IsExpanded("p6"))
	assert.Equal(t, 1, s.Len())
}

func TestExpansionSetToggleTwiceRestores(t *testing.T) {
	s := NewExpansionSet()
	s.Toggle("p12")
	before := s.IDs()

	s.Toggle("p6")
	s.Toggle("p6")

	assert.Equal(t, before, s.IDs())
}

func TestExpansionSetZeroValue(t *testing.T) {
	var s ExpansionSet
	assert.False(t, s.IsExpanded("p1"))
	assert.True(t, s.Toggle("p1"))
	assert.Equal(t, 1, s.Len())

	var nilSet *ExpansionSet
	assert.False(t, nilSet.IsExpanded("p1"))
	assert.Zero(t, nilSet.Len())
	assert.Nil(t, nilSet.IDs())
}
