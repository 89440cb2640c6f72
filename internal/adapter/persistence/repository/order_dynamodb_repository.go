package repository

import (
	"context"
	"errors"
	"time"

	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIndexName    = "user_id-index"
	ordersPaymentIndexName = "payment_intent_id-index"
)

type orderItemDoc struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	Quantity  int    `dynamodbav:"quantity"`
	Price     string `dynamodbav:"price"`
	ZipSent   bool   `dynamodbav:"zip_sent"`
	ZipSentAt string `dynamodbav:"zip_sent_at,omitempty"`
}

type orderDoc struct {
	ID              string         `dynamodbav:"id"`
	UserID          string         `dynamodbav:"user_id"`
	UserEmail       string         `dynamodbav:"user_email"`
	CustomerEmail   string         `dynamodbav:"customer_email"`
	TotalAmount     string         `dynamodbav:"total_amount"`
	Status          string         `dynamodbav:"status"`
	PaymentIntentID string         `dynamodbav:"payment_intent_id"`
	ZipFilesSent    bool           `dynamodbav:"zip_files_sent"`
	Items           []orderItemDoc `dynamodbav:"items"`
	CreatedAt       string         `dynamodbav:"created_at"`
	UpdatedAt       string         `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (user_id-index): PK user_id, SK created_at
//   - GSI2 (payment_intent_id-index): PK payment_intent_id
type OrderDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	cartsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		cartsTable: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

// CreateWithItems writes the order and deactivates the source cart in one
// transaction. Either both commit or neither does.
func (r *OrderDynamoRepository) CreateWithItems(ctx context.Context, o entities.Order, deactivateCartID string) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderDoc(o))
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.cartsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: deactivateCartID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("SET #is_active = :false, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#is_active":  "is_active",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":false":      &types.AttributeValueMemberBOOL{Value: false},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var doc orderDoc
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return entities.Order{}, err
	}
	return fromOrderDoc(doc), nil
}

func (r *OrderDynamoRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPaymentIndexName),
		KeyConditionExpression: aws.String("#payment_intent_id = :payment_intent_id"),
		ExpressionAttributeNames: map[string]string{
			"#payment_intent_id": "payment_intent_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment_intent_id": &types.AttributeValueMemberS{Value: paymentIntentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var doc orderDoc
	if err := attributevalue.UnmarshalMap(out.Items[0], &doc); err != nil {
		return entities.Order{}, err
	}

	// GSIs are eventually consistent; re-read by PK for the full row.
	return r.GetByID(ctx, doc.ID)
}

func (r *OrderDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIndexName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	var docs []orderDoc
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &docs); err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, fromOrderDoc(doc))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetCustomerEmail(ctx context.Context, id string, email string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #customer_email = :customer_email, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":customer_email": &types.AttributeValueMemberS{Value: email},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#customer_email": "customer_email",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

// MarkZipSent flags the order and each listed item as delivered. The whole
// item list is rewritten; orders have a handful of lines at most.
func (r *OrderDynamoRepository) MarkZipSent(ctx context.Context, id string, itemIDs []string) (entities.Order, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, nil
	}

	sentAt := time.Now().UTC()
	sent := make(map[string]bool, len(itemIDs))
	for _, itemID := range itemIDs {
		sent[itemID] = true
	}
	for i := range order.Items {
		if sent[order.Items[i].ID] {
			order.Items[i].ZipSent = true
			t := sentAt
			order.Items[i].ZipSentAt = &t
		}
	}

	docs := make([]orderItemDoc, 0, len(order.Items))
	for _, it := range order.Items {
		docs = append(docs, toOrderItemDoc(it))
	}
	itemsAV, err := attributevalue.Marshal(docs)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #zip_files_sent = :true, #items = :items, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":items":      itemsAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#zip_files_sent": "zip_files_sent",
			"#items":          "items",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var doc orderDoc
	if err := attributevalue.UnmarshalMap(out.Attributes, &doc); err != nil {
		return entities.Order{}, err
	}
	return fromOrderDoc(doc), nil
}

func toOrderDoc(o entities.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, toOrderItemDoc(it))
	}
	return orderDoc{
		ID:              o.ID,
		UserID:          o.UserID,
		UserEmail:       o.UserEmail,
		CustomerEmail:   o.CustomerEmail,
		TotalAmount:     decimalToString(o.TotalAmount),
		Status:          string(o.Status),
		PaymentIntentID: o.PaymentIntentID,
		ZipFilesSent:    o.ZipFilesSent,
		Items:           items,
		CreatedAt:       timeToString(o.CreatedAt),
		UpdatedAt:       timeToString(o.UpdatedAt),
	}
}

func toOrderItemDoc(it entities.OrderItem) orderItemDoc {
	doc := orderItemDoc{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     decimalToString(it.Price),
		ZipSent:   it.ZipSent,
	}
	if it.ZipSentAt != nil {
		doc.ZipSentAt = timeToString(*it.ZipSentAt)
	}
	return doc
}

func fromOrderDoc(doc orderDoc) entities.Order {
	items := make([]entities.OrderItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		item := entities.OrderItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     decimalFromString(it.Price),
			ZipSent:   it.ZipSent,
		}
		if it.ZipSentAt != "" {
			t := timeFromString(it.ZipSentAt)
			item.ZipSentAt = &t
		}
		items = append(items, item)
	}
	return entities.Order{
		ID:              doc.ID,
		UserID:          doc.UserID,
		UserEmail:       doc.UserEmail,
		CustomerEmail:   doc.CustomerEmail,
		TotalAmount:     decimalFromString(doc.TotalAmount),
		Status:          entities.OrderStatus(doc.Status),
		PaymentIntentID: doc.PaymentIntentID,
		ZipFilesSent:    doc.ZipFilesSent,
		Items:           items,
		CreatedAt:       timeFromString(doc.CreatedAt),
		UpdatedAt:       timeFromString(doc.UpdatedAt),
	}
}
