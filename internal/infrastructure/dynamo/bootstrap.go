package dynamo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nemid-codegen/internal/config"
)

// Bootstrap creates the identities table if it doesn't already exist.
// Safe to call on every startup — skips tables that already exist.
func Bootstrap(ctx context.Context, client API, tables config.DynamoTables) error {
	return createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Identities),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(fieldNemID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(fieldNemID), KeyType: types.KeyTypeHash},
		},
	})
}

func createTable(ctx context.Context, client API, input *dynamodb.CreateTableInput) error {
	_, err := client.CreateTable(ctx, input)
	if err != nil {
		// ResourceInUseException means the table already exists — that's fine.
		var riue *types.ResourceInUseException
		if errors.As(err, &riue) {
			return nil
		}
		slog.Warn("could not create table", "table", *input.TableName, "err", err)
		return err
	}
	slog.Info("created table", "table", *input.TableName)
	return nil
}
