package repository

import (
	"context"

	"archmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSiteConfigTableName = "site_config"

type siteConfigItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SiteConfigDynamoRepository stores the site configuration one row per key.
//
// Table requirements:
//   - PK: key (string)
type SiteConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteConfigRepository = (*SiteConfigDynamoRepository)(nil)

func NewSiteConfigDynamoRepository(ddb *dynamodb.Client) *SiteConfigDynamoRepository {
	return &SiteConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITE_CONFIG_TABLE", defaultSiteConfigTableName),
	}
}

func (r *SiteConfigDynamoRepository) GetAll(ctx context.Context) (map[string]string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var items []siteConfigItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	pairs := make(map[string]string, len(items))
	for _, it := range items {
		pairs[it.Key] = it.Value
	}
	return pairs, nil
}

func (r *SiteConfigDynamoRepository) PutAll(ctx context.Context, pairs map[string]string) error {
	for k, v := range pairs {
		av, err := attributevalue.MarshalMap(siteConfigItem{Key: k, Value: v})
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}
