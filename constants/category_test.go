package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	got, ok := Canonicalize("main course")
	assert.True(t, ok)
	assert.Equal(t, MainCourse, got)

	got, ok = Canonicalize(" General ")
	assert.True(t, ok)
	assert.Equal(t, General, got)

	got, ok = Canonicalize("Pastries")
	assert.False(t, ok)
	assert.Equal(t, General, got)

	got, ok = Canonicalize("")
	assert.False(t, ok)
	assert.Equal(t, General, got)
}

func TestAllCategoriesOrder(t *testing.T) {
	all := AllCategories()
	assert.Equal(t, "Appetizers", all[0])
	assert.Equal(t, "General", all[len(all)-1])
	assert.Len(t, all, len(DefaultCategoryTable)+1)
}
