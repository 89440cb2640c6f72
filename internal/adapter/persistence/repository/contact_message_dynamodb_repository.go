package repository

import (
	"context"

	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultContactMessagesTableName = "contact_messages"

type contactMessageItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Email           string `dynamodbav:"email"`
	Phone           string `dynamodbav:"phone,omitempty"`
	ProjectLocation string `dynamodbav:"project_location,omitempty"`
	Timeline        string `dynamodbav:"timeline,omitempty"`
	Comments        string `dynamodbav:"comments"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// ContactMessageDynamoRepository persists contact inquiries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ContactMessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactMessageRepository = (*ContactMessageDynamoRepository)(nil)

func NewContactMessageDynamoRepository(ddb *dynamodb.Client) *ContactMessageDynamoRepository {
	return &ContactMessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACT_MESSAGES_TABLE", defaultContactMessagesTableName),
	}
}

func (r *ContactMessageDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	av, err := attributevalue.MarshalMap(contactMessageItem{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		ProjectLocation: m.ProjectLocation,
		Timeline:        m.Timeline,
		Comments:        m.Comments,
		Status:          string(m.Status),
		CreatedAt:       timeToString(m.CreatedAt),
	})
	if err != nil {
		return entities.ContactMessage{}, err
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
		return entities.ContactMessage{}, err
	}
	return m, nil
}

func (r *ContactMessageDynamoRepository) List(ctx context.Context) ([]entities.ContactMessage, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []contactMessageItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	messages := make([]entities.ContactMessage, 0, len(items))
	for _, it := range items {
		messages = append(messages, entities.ContactMessage{
			ID:              it.ID,
			Name:            it.Name,
			Email:           it.Email,
			Phone:           it.Phone,
			ProjectLocation: it.ProjectLocation,
			Timeline:        it.Timeline,
			Comments:        it.Comments,
			Status:          entities.ContactMessageStatus(it.Status),
			CreatedAt:       timeFromString(it.CreatedAt),
		})
	}
	return messages, nil
}
