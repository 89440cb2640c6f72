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
	defaultCartsTableName = "carts"
	cartsUserIndexName    = "user_id-index"
)

type cartItemDoc struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	Quantity  int    `dynamodbav:"quantity"`
	Price     string `dynamodbav:"price"`
	AddedAt   string `dynamodbav:"added_at"`
}

type cartDoc struct {
	ID        string        `dynamodbav:"id"`
	UserID    string        `dynamodbav:"user_id"`
	IsActive  bool          `dynamodbav:"is_active"`
	Items     []cartItemDoc `dynamodbav:"items"`
	CreatedAt string        `dynamodbav:"created_at"`
	UpdatedAt string        `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists Cart entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (user_id-index): PK user_id, SK created_at
//
// Cart lines are embedded in the cart document: a cart is always read and
// written as a whole, and line counts are tiny.
type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Create(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartDoc(c))
	if err != nil {
		return entities.Cart{}, err
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
		return entities.Cart{}, err
	}
	return c, nil
}

func (r *CartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var doc cartDoc
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return entities.Cart{}, err
	}
	return fromCartDoc(doc), nil
}

func (r *CartDynamoRepository) GetActiveByUser(ctx context.Context, userID string) (entities.Cart, error) {
	carts, err := r.queryByUser(ctx, userID, false, 0)
	if err != nil {
		return entities.Cart{}, err
	}
	for _, c := range carts {
		if c.IsActive {
			return c, nil
		}
	}
	return entities.Cart{}, nil
}

func (r *CartDynamoRepository) GetLatestByUser(ctx context.Context, userID string) (entities.Cart, error) {
	carts, err := r.queryByUser(ctx, userID, true, 1)
	if err != nil {
		return entities.Cart{}, err
	}
	if len(carts) == 0 {
		return entities.Cart{}, nil
	}
	return carts[0], nil
}

func (r *CartDynamoRepository) SetActive(ctx context.Context, cartID string, active bool) (entities.Cart, error) {
	return r.update(ctx, cartID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_active = :is_active, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_active":  &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CartDynamoRepository) DeactivateAllForUser(ctx context.Context, userID string) error {
	carts, err := r.queryByUser(ctx, userID, false, 0)
	if err != nil {
		return err
	}
	for _, c := range carts {
		if !c.IsActive {
			continue
		}
		if _, err := r.SetActive(ctx, c.ID, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *CartDynamoRepository) PutItem(ctx context.Context, cartID string, item entities.CartItem) (entities.Cart, error) {
	cart, err := r.GetByID(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID == "" {
		return entities.Cart{}, nil
	}

	if idx := cart.FindItem(item.ID); idx >= 0 {
		cart.Items[idx] = item
	} else {
		cart.Items = append(cart.Items, item)
	}
	return r.replaceItems(ctx, cartID, cart.Items)
}

func (r *CartDynamoRepository) DeleteItem(ctx context.Context, cartID string, itemID string) (entities.Cart, error) {
	cart, err := r.GetByID(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID == "" {
		return entities.Cart{}, nil
	}

	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	return r.replaceItems(ctx, cartID, kept)
}

func (r *CartDynamoRepository) replaceItems(ctx context.Context, cartID string, items []entities.CartItem) (entities.Cart, error) {
	docs := make([]cartItemDoc, 0, len(items))
	for _, it := range items {
		docs = append(docs, toCartItemDoc(it))
	}
	itemsAV, err := attributevalue.Marshal(docs)
	if err != nil {
		return entities.Cart{}, err
	}

	return r.update(ctx, cartID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #items = :items, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":items":      itemsAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#items":      "items",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CartDynamoRepository) queryByUser(ctx context.Context, userID string, newestFirst bool, limit int32) ([]entities.Cart, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cartsUserIndexName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	}
	if newestFirst {
		in.ScanIndexForward = aws.Bool(false)
	}
	if limit > 0 {
		in.Limit = aws.Int32(limit)
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	var docs []cartDoc
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &docs); err != nil {
		return nil, err
	}
	carts := make([]entities.Cart, 0, len(docs))
	for _, doc := range docs {
		carts = append(carts, fromCartDoc(doc))
	}
	return carts, nil
}

func (r *CartDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Cart, error) {
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
			return entities.Cart{}, nil
		}
		return entities.Cart{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Cart{}, nil
	}

	var doc cartDoc
	if err := attributevalue.UnmarshalMap(out.Attributes, &doc); err != nil {
		return entities.Cart{}, err
	}
	return fromCartDoc(doc), nil
}

func toCartDoc(c entities.Cart) cartDoc {
	items := make([]cartItemDoc, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, toCartItemDoc(it))
	}
	return cartDoc{
		ID:        c.ID,
		UserID:    c.UserID,
		IsActive:  c.IsActive,
		Items:     items,
		CreatedAt: timeToString(c.CreatedAt),
		UpdatedAt: timeToString(c.UpdatedAt),
	}
}

func toCartItemDoc(it entities.CartItem) cartItemDoc {
	return cartItemDoc{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     decimalToString(it.Price),
		AddedAt:   timeToString(it.AddedAt),
	}
}

func fromCartDoc(doc cartDoc) entities.Cart {
	items := make([]entities.CartItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, entities.CartItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     decimalFromString(it.Price),
			AddedAt:   timeFromString(it.AddedAt),
		})
	}
	return entities.Cart{
		ID:        doc.ID,
		UserID:    doc.UserID,
		IsActive:  doc.IsActive,
		Items:     items,
		CreatedAt: timeFromString(doc.CreatedAt),
		UpdatedAt: timeFromString(doc.UpdatedAt),
	}
}
