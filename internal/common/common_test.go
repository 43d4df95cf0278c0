package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackagePath(t *testing.T) {
	assert.Equal(t, "", PackagePath(""))
	assert.Equal(t, "com/example/model", PackagePath("com.example.model"))
}

func TestIsSingle(t *testing.T) {
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]string{}))
	assert.False(t, IsSingle([]int{1, 2}))
}
