package repository

import (
	"context"
	"io"
)

// ImageStore puerto para el canal de subida de imágenes de producto.
// Upload persiste el contenido y devuelve la URL pública del objeto.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
