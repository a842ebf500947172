package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterLetter(t *testing.T) {
	present := true
	absent := false

	assert.Equal(t, "P", registerLetter(&present))
	assert.Equal(t, "A", registerLetter(&absent))
	assert.Equal(t, "", registerLetter(nil))
}
