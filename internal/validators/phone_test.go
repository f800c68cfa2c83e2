package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("+14155552671"))
	assert.True(t, IsPhoneValid("+1 (415) 555-2671"))
	assert.True(t, IsPhoneValid("4155552671"))

	assert.False(t, IsPhoneValid(""))
	assert.False(t, IsPhoneValid("+0123"))
	assert.False(t, IsPhoneValid("not-a-number"))
}
