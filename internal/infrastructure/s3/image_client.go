package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/repository"
)

var _ repository.ImageStore = (*ImageClient)(nil)

// ImageClient adaptador del puerto ImageStore sobre un bucket S3 de
// imágenes de producto. Los objetos quedan con URL pública del bucket.
type ImageClient struct {
	client *awss3.Client
	bucket string
	region string
}

// NewImageClient construye el adaptador de subida de imágenes.
func NewImageClient(awsCfg aws.Config, bucket string) *ImageClient {
	return &ImageClient{
		client: awss3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: awsCfg.Region,
	}
}

// Upload sube el contenido al bucket y devuelve la URL pública del objeto.
func (c *ImageClient) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	_, err := c.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(filename),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("subir imagen %s: %w", filename, err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, filename), nil
}
