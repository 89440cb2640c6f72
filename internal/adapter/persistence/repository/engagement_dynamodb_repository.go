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

const defaultEngagementsTableName = "engagements"

type engagementItem struct {
	Entity     string `dynamodbav:"entity"`
	VisitorID  string `dynamodbav:"visitor_id"`
	EntityKind string `dynamodbav:"entity_kind"`
	EntityID   string `dynamodbav:"entity_id"`
	Liked      bool   `dynamodbav:"liked"`
	Favorited  bool   `dynamodbav:"favorited"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// EngagementDynamoRepository persists like/favorite state in DynamoDB.
//
// Table requirements:
//   - PK: entity (kind#id), SK: visitor_id
type EngagementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb *dynamodb.Client) *EngagementDynamoRepository {
	return &EngagementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGAGEMENTS_TABLE", defaultEngagementsTableName),
	}
}

func engagementPK(kind entities.EntityKind, entityID string) string {
	return string(kind) + "#" + entityID
}

func (r *EngagementDynamoRepository) Get(ctx context.Context, kind entities.EntityKind, entityID, visitorID string) (entities.Engagement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"entity":     &types.AttributeValueMemberS{Value: engagementPK(kind, entityID)},
			"visitor_id": &types.AttributeValueMemberS{Value: visitorID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func (r *EngagementDynamoRepository) Put(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	av, err := attributevalue.MarshalMap(engagementItem{
		Entity:     engagementPK(e.EntityKind, e.EntityID),
		VisitorID:  e.VisitorID,
		EntityKind: string(e.EntityKind),
		EntityID:   e.EntityID,
		Liked:      e.Liked,
		Favorited:  e.Favorited,
		UpdatedAt:  timeToString(e.UpdatedAt),
	})
	if err != nil {
		return entities.Engagement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	return e, nil
}

// Counts queries the entity partition and tallies client-side. Partitions
// hold one row per visitor who ever toggled, small enough to walk.
func (r *EngagementDynamoRepository) Counts(ctx context.Context, kind entities.EntityKind, entityID string) (entities.EngagementCounts, error) {
	var counts entities.EngagementCounts
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#entity = :entity"),
			ExpressionAttributeNames: map[string]string{
				"#entity": "entity",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":entity": &types.AttributeValueMemberS{Value: engagementPK(kind, entityID)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.EngagementCounts{}, err
		}

		var items []engagementItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return entities.EngagementCounts{}, err
		}
		for _, it := range items {
			if it.Liked {
				counts.Likes++
			}
			if it.Favorited {
				counts.Favorites++
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return counts, nil
}

func fromEngagementItem(it engagementItem) entities.Engagement {
	return entities.Engagement{
		EntityKind: entities.EntityKind(it.EntityKind),
		EntityID:   it.EntityID,
		VisitorID:  it.VisitorID,
		Liked:      it.Liked,
		Favorited:  it.Favorited,
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
}
