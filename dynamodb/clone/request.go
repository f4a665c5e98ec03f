package clone

import (
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BuildRequest translates a source table description into a create-table
// request for the destination table. Key schema and attribute definitions
// are copied element for element. Index lists are only set when the source
// has indexes of that kind.
func BuildRequest(source *types.TableDescription, destination string) *dynamodb.CreateTableInput {
	input := &dynamodb.CreateTableInput{
		TableName:             aws.String(destination),
		KeySchema:             slices.Clone(source.KeySchema),
		AttributeDefinitions:  slices.Clone(source.AttributeDefinitions),
		ProvisionedThroughput: CloneThroughput(source.ProvisionedThroughput),
	}

	if len(source.LocalSecondaryIndexes) > 0 {
		input.LocalSecondaryIndexes = CloneLocalIndexes(source.LocalSecondaryIndexes)
	}
	if len(source.GlobalSecondaryIndexes) > 0 {
		input.GlobalSecondaryIndexes = CloneGlobalIndexes(source.GlobalSecondaryIndexes)
	}

	if isOnDemand(source) {
		// Describe reports zero capacity for on-demand tables, which
		// CreateTable rejects in provisioned mode.
		input.BillingMode = types.BillingModePayPerRequest
		input.ProvisionedThroughput = nil
		input.GlobalSecondaryIndexes = withoutThroughput(input.GlobalSecondaryIndexes)
	}

	return input
}

func isOnDemand(source *types.TableDescription) bool {
	return source.BillingModeSummary != nil &&
		source.BillingModeSummary.BillingMode == types.BillingModePayPerRequest
}
