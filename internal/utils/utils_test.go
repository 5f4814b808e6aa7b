package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, VerificarSenha(hash, "segredo123"))
	assert.False(t, VerificarSenha(hash, "outra-senha"))
}

func TestEmailValido(t *testing.T) {
	assert.True(t, EmailValido("maria@empresa.com.br"))
	assert.True(t, EmailValido("  joao@exemplo.com  "))
	assert.True(t, EmailValido("")) // opcional

	assert.False(t, EmailValido("sem-arroba"))
	assert.False(t, EmailValido("dois@@exemplo.com"))
	assert.False(t, EmailValido("sem@dominio"))
}

func TestGerarSenhaTemporaria(t *testing.T) {
	a, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	b, err := GerarSenhaTemporaria()
	require.NoError(t, err)

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}
