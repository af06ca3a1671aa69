package i18n

import (
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookup reads catalog keys without go vet's format string check
var lookup = gotext.Get

func TestLoad(t *testing.T) {
	require.NoError(t, Load(""))
	assert.Equal(t, "Seat 1 wins!", lookup("WINNER", '1'))
	assert.Equal(t, "Nothing to undo", lookup("NOTHING_TO_UNDO"))
}

func TestLoad_OutsidePackageDirectory(t *testing.T) {
	// No catalog on disk here; only the embedded one can answer
	t.Chdir(t.TempDir())

	require.NoError(t, Load(DefaultLanguage))
	assert.Equal(t, "Seat 2 played step up", lookup("PLAYED", '2', "step up"))
	assert.Equal(t, "Quoridor", lookup("TITLE"))
}

func TestLoad_UnknownLanguage(t *testing.T) {
	assert.ErrorIs(t, Load("tlh"), ErrUnknownLanguage)
}

func TestLanguages(t *testing.T) {
	assert.Contains(t, Languages(), "en")
}
