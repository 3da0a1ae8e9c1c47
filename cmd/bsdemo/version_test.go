package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFixtureVersion(t *testing.T) {
	assert.NoError(t, checkFixtureVersion(""))
	assert.NoError(t, checkFixtureVersion("1.0.0"))
	assert.NoError(t, checkFixtureVersion("1.4.2"))
	assert.Error(t, checkFixtureVersion("2.0.0"))
	assert.Error(t, checkFixtureVersion("not-a-version"))
}
