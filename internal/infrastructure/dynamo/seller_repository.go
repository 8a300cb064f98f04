package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/repository"
)

// Índice secundario global para buscar vendedores por email.
const sellerEmailIndex = "email-index"

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre la tabla
// DynamoDB de vendedores (partition key: code, GSI: email-index).
type SellerRepo struct {
	client *dynamodb.Client
	table  string
}

// NewSellerRepository construye el adaptador de persistencia para vendedores.
func NewSellerRepository(client *dynamodb.Client, table string) *SellerRepo {
	return &SellerRepo{client: client, table: table}
}

type sellerRecord struct {
	Code      string `dynamodbav:"code"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func newSellerRecord(s entity.Seller) sellerRecord {
	return sellerRecord{
		Code:      s.Code.String(),
		Name:      s.Name,
		Email:     s.Email,
		CreatedAt: s.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func (rec sellerRecord) toEntity() (entity.Seller, error) {
	code, err := uuid.Parse(rec.Code)
	if err != nil {
		return entity.Seller{}, fmt.Errorf("código de vendedor inválido %q: %w", rec.Code, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return entity.Seller{}, fmt.Errorf("created_at inválido para %s: %w", rec.Code, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if err != nil {
		return entity.Seller{}, fmt.Errorf("updated_at inválido para %s: %w", rec.Code, err)
	}
	return entity.Seller{
		Code:      code,
		Name:      rec.Name,
		Email:     rec.Email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// ListAll recorre la tabla completa (scan paginado).
func (r *SellerRepo) ListAll(ctx context.Context) ([]entity.Seller, error) {
	sellers := make([]entity.Seller, 0)
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan sellers: %w", err)
		}
		var recs []sellerRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal sellers: %w", err)
		}
		for _, rec := range recs {
			s, err := rec.toEntity()
			if err != nil {
				return nil, err
			}
			sellers = append(sellers, s)
		}
	}
	return sellers, nil
}

// GetByCode busca por partition key. Devuelve (nil, nil) si no hay ítem.
func (r *SellerRepo) GetByCode(ctx context.Context, code uuid.UUID) (*entity.Seller, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var rec sellerRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal seller: %w", err)
	}
	s, err := rec.toEntity()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByEmail consulta el GSI email-index y toma el primer resultado.
func (r *SellerRepo) GetByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(sellerEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query seller by email: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var rec sellerRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return nil, fmt.Errorf("unmarshal seller: %w", err)
	}
	s, err := rec.toEntity()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste el snapshot con un PutItem plano.
func (r *SellerRepo) Create(ctx context.Context, seller entity.Seller) (entity.Seller, error) {
	item, err := attributevalue.MarshalMap(newSellerRecord(seller))
	if err != nil {
		return entity.Seller{}, fmt.Errorf("marshal seller: %w", err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return entity.Seller{}, fmt.Errorf("put seller: %w", err)
	}
	return seller, nil
}

// Update verifica existencia y sobreescribe el ítem completo.
func (r *SellerRepo) Update(ctx context.Context, seller entity.Seller) (entity.Seller, error) {
	existing, err := r.GetByCode(ctx, seller.Code)
	if err != nil {
		return entity.Seller{}, err
	}
	if existing == nil {
		return entity.Seller{}, domain.NewNotFound("seller", seller.Code.String())
	}
	return r.Create(ctx, seller)
}

// Delete verifica existencia y borra el ítem.
func (r *SellerRepo) Delete(ctx context.Context, code uuid.UUID) error {
	existing, err := r.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewNotFound("seller", code.String())
	}
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code.String()},
		},
	}); err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	return nil
}

// Ping verifica que la tabla exista y sea alcanzable (readiness probe).
func (r *SellerRepo) Ping(ctx context.Context) error {
	if _, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	}); err != nil {
		return fmt.Errorf("tabla %s no disponible: %w", r.table, err)
	}
	return nil
}
