package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nemid-codegen/internal/domain"
)

// IdentityRepo provides typed DynamoDB operations for the identities table.
// PK: nemid
type IdentityRepo struct {
	client    API
	tableName string
}

func NewIdentityRepo(client API, tableName string) *IdentityRepo {
	return &IdentityRepo{client: client, tableName: tableName}
}

func (r *IdentityRepo) Exists(ctx context.Context, nemID string) (bool, error) {
	proj, names := keyOnlyProjection(fieldNemID)
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      strKey(fieldNemID, nemID),
		ProjectionExpression:     proj,
		ExpressionAttributeNames: names,
	})
	if err != nil {
		return false, fmt.Errorf("get identity: %w", err)
	}
	return len(out.Item) > 0, nil
}

func (r *IdentityRepo) Put(ctx context.Context, i *domain.Identity) error {
	item, err := attributevalue.MarshalMap(i)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#k)"),
		ExpressionAttributeNames: map[string]string{"#k": fieldNemID},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("identity %s exists: %w", i.NemID, domain.ErrConflict)
	}
	return err
}
