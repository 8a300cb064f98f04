package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/MartinGalvanCastro/Software-Modernization/pkg/jwt"
)

const (
	testSecret  = "unit-test-secret"
	testSubject = "00000000-0000-0000-0000-000000000001"
	testIssuer  = "sales-platform-test"
)

func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject, subject)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_TokenBasura_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}
