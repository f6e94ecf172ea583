package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// keyOnlyProjection restricts a read to the key attribute, so lookups never
// pull credential columns over the wire.
func keyOnlyProjection(name string) (expr *string, names map[string]string) {
	e := "#k"
	return &e, map[string]string{"#k": name}
}
