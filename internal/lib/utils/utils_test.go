package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilIfBlank(t *testing.T) {
	blank := "   "
	padded := " ivan@example.com "

	assert.Nil(t, NilIfBlank(nil))
	assert.Nil(t, NilIfBlank(&blank))
	assert.Equal(t, "ivan@example.com", *NilIfBlank(&padded))
}

func TestDeref(t *testing.T) {
	v := 5
	assert.Equal(t, 5, Deref(&v))
	assert.Equal(t, 0, Deref[int](nil))
	assert.Equal(t, "", Deref[string](nil))
}
