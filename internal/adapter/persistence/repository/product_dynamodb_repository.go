package repository

import (
	"context"

	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	Style       string `dynamodbav:"style"`

	Price             string `dynamodbav:"price"`
	PricePDFM2        string `dynamodbav:"price_pdf_m2"`
	PricePDFSqft      string `dynamodbav:"price_pdf_sqft"`
	PriceEditableM2   string `dynamodbav:"price_editable_m2"`
	PriceEditableSqft string `dynamodbav:"price_editable_sqft"`

	Area     string `dynamodbav:"area"`
	AreaUnit string `dynamodbav:"area_unit"`

	ZipFileKey string `dynamodbav:"zip_file_key"`
	IsActive   bool   `dynamodbav:"is_active"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			products = append(products, fromProductItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:                it.ID,
		Name:              it.Name,
		Description:       it.Description,
		Category:          it.Category,
		Style:             it.Style,
		Price:             decimalFromString(it.Price),
		PricePDFM2:        decimalFromString(it.PricePDFM2),
		PricePDFSqft:      decimalFromString(it.PricePDFSqft),
		PriceEditableM2:   decimalFromString(it.PriceEditableM2),
		PriceEditableSqft: decimalFromString(it.PriceEditableSqft),
		Area:              parseFloatOrZero(it.Area),
		AreaUnit:          entities.AreaUnit(it.AreaUnit),
		ZipFileKey:        it.ZipFileKey,
		IsActive:          it.IsActive,
		CreatedAt:         timeFromString(it.CreatedAt),
		UpdatedAt:         timeFromString(it.UpdatedAt),
	}
}
