package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopSetup(t *testing.T) {
	assert.NoError(t, Nop{}.Setup())
}

func TestDefaultIsUsable(t *testing.T) {
	env := Default()
	require.NotNil(t, env)
}
