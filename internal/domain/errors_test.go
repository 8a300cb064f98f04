package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
)

func TestNotFoundError_Mensaje(t *testing.T) {
	err := domain.NewNotFound("product", "123e4567-e89b-12d3-a456-426614174000")
	assert.Equal(t, "product not found: 123e4567-e89b-12d3-a456-426614174000", err.Error())
}

func TestDuplicateError_MensajeConCampoYValor(t *testing.T) {
	err := domain.NewDuplicate("seller", "email", "ana@example.com")
	assert.Equal(t, `seller with email="ana@example.com" already exists`, err.Error())
}

func TestInvalidPriceError_IncluyeElMonto(t *testing.T) {
	err := &domain.InvalidPriceError{Amount: decimal.NewFromFloat(-5)}
	assert.Contains(t, err.Error(), "-5")
	assert.Contains(t, err.Error(), "must be > 0")
}

func TestImageUploadError_EnvuelveLaCausa(t *testing.T) {
	cause := errors.New("connection reset")
	err := &domain.ImageUploadError{Err: cause}

	assert.ErrorIs(t, err, cause, "errors.Is debe alcanzar la causa vía Unwrap")
	assert.Contains(t, err.Error(), "connection reset")
}
