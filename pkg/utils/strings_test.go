package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrimmed(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitTrimmed(" a , ,b ", ","))
	assert.Nil(t, SplitTrimmed("", ","))
	assert.Nil(t, SplitTrimmed(" , ", ","))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"x"}, RemoveEmptyStrings([]string{"", "x", ""}))
	assert.Nil(t, RemoveEmptyStrings(nil))
}
