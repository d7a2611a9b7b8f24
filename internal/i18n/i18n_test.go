package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Message(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)

	tests := []struct {
		name string
		lang string
		want string
	}{
		{"english", "en", "You can't disable yourself"},
		{"empty falls back", "", "You can't disable yourself"},
		{"unknown falls back", "ja", "You can't disable yourself"},
		{"garbage falls back", ";;;", "You can't disable yourself"},
		{"spanish", "es", "No puedes deshabilitarte a ti mismo"},
		{"brazilian", "pt-BR", "Você não pode desabilitar o seu próprio usuário"},
		{"accept-language header", "pt-BR,pt;q=0.9,en;q=0.8", "Você não pode desabilitar o seu próprio usuário"},
		{"region variant", "es-AR", "No puedes deshabilitarte a ti mismo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Message(tt.lang, "iam.errors.disablingHimself"))
		})
	}
}

func TestCatalog_UnknownKey(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "iam.errors.nope", c.Message("es", "iam.errors.nope"))
}

func TestNewCatalog_FallbackWithoutCatalog(t *testing.T) {
	_, err := NewCatalog("de")
	assert.Error(t, err)
}
