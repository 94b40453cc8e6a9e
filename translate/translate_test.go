package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLocale("en-US"))

	assert.Equal("jump target unknown", From("jump target unknown"))
	assert.Equal("pc 0000001f pc out of range", From("pc %08x %v", 31, "pc out of range"))
	assert.Equal("line 2 column 1 (offset 2) unbalanced loop",
		From("line %d column %d (offset %d) %v", 2, 1, 2, "unbalanced loop"))
}

func TestSetLocale(t *testing.T) {
	assert := assert.New(t)

	assert.Error(SetLocale("not a locale!"))
	assert.NoError(SetLocale("de-DE"))

	// No catalog entries, so the en-US format is used as is.
	assert.Equal("unbalanced loop", From("unbalanced loop"))

	assert.NoError(SetLocale("en-US"))
}
