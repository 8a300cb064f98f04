package dto

import "io"

// ErrorResponse cuerpo de error de la API. Mismo contrato que consumen los
// clientes: title, detail y status en camelCase plano.
type ErrorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// ImageUpload imagen recibida por multipart, lista para subir al object store.
// El llamador es responsable de cerrar el reader subyacente.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}
