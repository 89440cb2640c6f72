package repository

import (
	"context"
	"encoding/json"

	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultDesignEntriesTableName = "design_entries"

type designEntryItem struct {
	ID            string `dynamodbav:"id"`
	AreaTotal     string `dynamodbav:"area_total"`
	AreaBasic     string `dynamodbav:"area_basica"`
	AreaAvailable string `dynamodbav:"area_disponible"`
	AreaUsed      string `dynamodbav:"area_usada"`
	OccupancyPct  string `dynamodbav:"porcentaje_ocupado"`
	Options       string `dynamodbav:"opciones"`
	TotalPrice    string `dynamodbav:"precio_total"`
	Email         string `dynamodbav:"correo,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// DesignEntryDynamoRepository persists DesignEntry quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Options are stored as a JSON string: they are an opaque snapshot of what
// the customer selected, never queried field-by-field.
type DesignEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDesignEntryRepository = (*DesignEntryDynamoRepository)(nil)

func NewDesignEntryDynamoRepository(ddb *dynamodb.Client) *DesignEntryDynamoRepository {
	return &DesignEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DESIGN_ENTRIES_TABLE", defaultDesignEntriesTableName),
	}
}

func (r *DesignEntryDynamoRepository) Create(ctx context.Context, e entities.DesignEntry) (entities.DesignEntry, error) {
	it, err := toDesignEntryItem(e)
	if err != nil {
		return entities.DesignEntry{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DesignEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DesignEntry{}, err
	}
	return e, nil
}

func (r *DesignEntryDynamoRepository) List(ctx context.Context) ([]entities.DesignEntry, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []designEntryItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	entries := make([]entities.DesignEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, fromDesignEntryItem(it))
	}
	return entries, nil
}

func toDesignEntryItem(e entities.DesignEntry) (designEntryItem, error) {
	opts, err := json.Marshal(e.Options)
	if err != nil {
		return designEntryItem{}, err
	}
	return designEntryItem{
		ID:            e.ID,
		AreaTotal:     floatToString(e.AreaTotal),
		AreaBasic:     floatToString(e.AreaBasic),
		AreaAvailable: floatToString(e.AreaAvailable),
		AreaUsed:      floatToString(e.AreaUsed),
		OccupancyPct:  floatToString(e.OccupancyPct),
		Options:       string(opts),
		TotalPrice:    floatToString(e.TotalPrice),
		Email:         e.Email,
		CreatedAt:     timeToString(e.CreatedAt),
	}, nil
}

func fromDesignEntryItem(it designEntryItem) entities.DesignEntry {
	var options []entities.DesignOption
	_ = json.Unmarshal([]byte(it.Options), &options)

	return entities.DesignEntry{
		ID:            it.ID,
		AreaTotal:     parseFloatOrZero(it.AreaTotal),
		AreaBasic:     parseFloatOrZero(it.AreaBasic),
		AreaAvailable: parseFloatOrZero(it.AreaAvailable),
		AreaUsed:      parseFloatOrZero(it.AreaUsed),
		OccupancyPct:  parseFloatOrZero(it.OccupancyPct),
		Options:       options,
		TotalPrice:    parseFloatOrZero(it.TotalPrice),
		Email:         it.Email,
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
