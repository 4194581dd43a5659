package charsheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/charsheet/modules/charsheet"
)

func TestClasses(t *testing.T) {
	t.Parallel()

	classes := charsheet.Classes()
	assert.Len(t, classes, 13)
	assert.Equal(t, charsheet.Class{ID: 1, Name: "Artificer"}, classes[0])
	assert.Equal(t, charsheet.Class{ID: 13, Name: "Wizard"}, classes[12])

	classes[0].Name = "changed"
	assert.Equal(t, "Artificer", charsheet.Classes()[0].Name)

	c, ok := charsheet.ClassByID(charsheet.RangerID)
	assert.True(t, ok)
	assert.Equal(t, "Ranger", c.Name)

	_, ok = charsheet.ClassByID(0)
	assert.False(t, ok)
}

func TestClassRemark(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Would You Like To Reconsider That", charsheet.ClassRemark(9))
	assert.Equal(t, "You Have Chosen Wisely", charsheet.ClassRemark(1))
	assert.Equal(t, "You Have Chosen Wisely", charsheet.ClassRemark(13))
}
