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

// Índice secundario global para buscar ventas por número de factura.
const saleInvoiceIndex = "invoice-number-index"

// La fecha de venta se guarda como fecha calendario ISO, sin hora.
const saleDateLayout = "2006-01-02"

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre la tabla DynamoDB
// de ventas (partition key: id, GSI: invoice-number-index).
type SaleRepo struct {
	client *dynamodb.Client
	table  string
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(client *dynamodb.Client, table string) *SaleRepo {
	return &SaleRepo{client: client, table: table}
}

type saleRecord struct {
	ID            string `dynamodbav:"id"`
	InvoiceNumber string `dynamodbav:"invoice_number"`
	SaleDate      string `dynamodbav:"sale_date"`
	SellerCode    string `dynamodbav:"seller_code"`
	ProductCode   string `dynamodbav:"product_code"`
	CreatedAt     string `dynamodbav:"created_at"`
}

func newSaleRecord(s entity.Sale) saleRecord {
	return saleRecord{
		ID:            s.ID.String(),
		InvoiceNumber: s.InvoiceNumber,
		SaleDate:      s.SaleDate.Format(saleDateLayout),
		SellerCode:    s.SellerCode.String(),
		ProductCode:   s.ProductCode.String(),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (rec saleRecord) toEntity() (entity.Sale, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return entity.Sale{}, fmt.Errorf("id de venta inválido %q: %w", rec.ID, err)
	}
	sellerCode, err := uuid.Parse(rec.SellerCode)
	if err != nil {
		return entity.Sale{}, fmt.Errorf("seller_code inválido para %s: %w", rec.ID, err)
	}
	productCode, err := uuid.Parse(rec.ProductCode)
	if err != nil {
		return entity.Sale{}, fmt.Errorf("product_code inválido para %s: %w", rec.ID, err)
	}
	saleDate, err := time.ParseInLocation(saleDateLayout, rec.SaleDate, time.UTC)
	if err != nil {
		return entity.Sale{}, fmt.Errorf("sale_date inválida para %s: %w", rec.ID, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return entity.Sale{}, fmt.Errorf("created_at inválido para %s: %w", rec.ID, err)
	}
	return entity.Sale{
		ID:            id,
		InvoiceNumber: rec.InvoiceNumber,
		SaleDate:      saleDate,
		SellerCode:    sellerCode,
		ProductCode:   productCode,
		CreatedAt:     createdAt,
	}, nil
}

// ListAll recorre la tabla completa (scan paginado).
func (r *SaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	sales := make([]entity.Sale, 0)
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan sales: %w", err)
		}
		var recs []saleRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal sales: %w", err)
		}
		for _, rec := range recs {
			s, err := rec.toEntity()
			if err != nil {
				return nil, err
			}
			sales = append(sales, s)
		}
	}
	return sales, nil
}

// GetByID busca por partition key. Devuelve (nil, nil) si no hay ítem.
func (r *SaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var rec saleRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal sale: %w", err)
	}
	s, err := rec.toEntity()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByInvoice consulta el GSI invoice-number-index y toma el primer resultado.
func (r *SaleRepo) GetByInvoice(ctx context.Context, invoiceNumber string) (*entity.Sale, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(saleInvoiceIndex),
		KeyConditionExpression: aws.String("invoice_number = :invoice"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice": &types.AttributeValueMemberS{Value: invoiceNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query sale by invoice: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var rec saleRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return nil, fmt.Errorf("unmarshal sale: %w", err)
	}
	s, err := rec.toEntity()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste el snapshot con un PutItem plano.
func (r *SaleRepo) Create(ctx context.Context, sale entity.Sale) (entity.Sale, error) {
	item, err := attributevalue.MarshalMap(newSaleRecord(sale))
	if err != nil {
		return entity.Sale{}, fmt.Errorf("marshal sale: %w", err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return entity.Sale{}, fmt.Errorf("put sale: %w", err)
	}
	return sale, nil
}

// Delete verifica existencia y borra el ítem.
func (r *SaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewNotFound("sale", id.String())
	}
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
	}); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// Ping verifica que la tabla exista y sea alcanzable (readiness probe).
func (r *SaleRepo) Ping(ctx context.Context) error {
	if _, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	}); err != nil {
		return fmt.Errorf("tabla %s no disponible: %w", r.table, err)
	}
	return nil
}
