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
	"github.com/shopspring/decimal"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/repository"
)

// Índice secundario global para buscar productos por nombre.
const productNameIndex = "name-index"

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la tabla
// DynamoDB de productos (partition key: code, GSI: name-index).
type ProductRepo struct {
	client *dynamodb.Client
	table  string
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(client *dynamodb.Client, table string) *ProductRepo {
	return &ProductRepo{client: client, table: table}
}

// productRecord ítem de la tabla. El precio se guarda como atributo numérico
// y los timestamps como cadenas RFC3339, igual que el resto de servicios.
type productRecord struct {
	Code        string  `dynamodbav:"code"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
	ImageURL    string  `dynamodbav:"image_url,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

func newProductRecord(p entity.Product) productRecord {
	return productRecord{
		Code:        p.Code.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount().InexactFloat64(),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func (rec productRecord) toEntity() (entity.Product, error) {
	code, err := uuid.Parse(rec.Code)
	if err != nil {
		return entity.Product{}, fmt.Errorf("código de producto inválido %q: %w", rec.Code, err)
	}
	price, err := entity.NewPrice(decimal.NewFromFloat(rec.Price))
	if err != nil {
		return entity.Product{}, fmt.Errorf("precio almacenado inválido para %s: %w", rec.Code, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return entity.Product{}, fmt.Errorf("created_at inválido para %s: %w", rec.Code, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if err != nil {
		return entity.Product{}, fmt.Errorf("updated_at inválido para %s: %w", rec.Code, err)
	}
	return entity.Product{
		Code:        code,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       price,
		ImageURL:    rec.ImageURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// ListAll recorre la tabla completa (scan paginado, orden nativo del almacén).
func (r *ProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	products := make([]entity.Product, 0)
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan products: %w", err)
		}
		var recs []productRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
		}
		for _, rec := range recs {
			p, err := rec.toEntity()
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
	}
	return products, nil
}

// GetByCode busca por partition key. Devuelve (nil, nil) si no hay ítem.
func (r *ProductRepo) GetByCode(ctx context.Context, code uuid.UUID) (*entity.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var rec productRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	p, err := rec.toEntity()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByName consulta el GSI name-index. El nombre es lógicamente único, así
// que se toma el primer resultado aunque el índice pudiera devolver más.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(productNameIndex),
		KeyConditionExpression: aws.String("#n = :name"),
		ExpressionAttributeNames: map[string]string{
			"#n": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query product by name: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var rec productRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	p, err := rec.toEntity()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste el snapshot con un PutItem plano (sin escritura condicional:
// la unicidad del nombre la sondea el caso de uso).
func (r *ProductRepo) Create(ctx context.Context, product entity.Product) (entity.Product, error) {
	item, err := attributevalue.MarshalMap(newProductRecord(product))
	if err != nil {
		return entity.Product{}, fmt.Errorf("marshal product: %w", err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return entity.Product{}, fmt.Errorf("put product: %w", err)
	}
	return product, nil
}

// Update verifica existencia y sobreescribe el ítem completo.
func (r *ProductRepo) Update(ctx context.Context, product entity.Product) (entity.Product, error) {
	existing, err := r.GetByCode(ctx, product.Code)
	if err != nil {
		return entity.Product{}, err
	}
	if existing == nil {
		return entity.Product{}, domain.NewNotFound("product", product.Code.String())
	}
	return r.Create(ctx, product)
}

// Delete verifica existencia y borra el ítem (hard delete).
func (r *ProductRepo) Delete(ctx context.Context, code uuid.UUID) error {
	existing, err := r.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewNotFound("product", code.String())
	}
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code.String()},
		},
	}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Ping verifica que la tabla exista y sea alcanzable (readiness probe).
func (r *ProductRepo) Ping(ctx context.Context) error {
	if _, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	}); err != nil {
		return fmt.Errorf("tabla %s no disponible: %w", r.table, err)
	}
	return nil
}
