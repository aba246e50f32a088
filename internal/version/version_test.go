package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "dev", String())

	Commit = "abc1234"
	defer func() { Commit = "" }()
	assert.Equal(t, "dev (abc1234)", String())
}
