package clone

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ordersTable is the description of a provisioned table with one GSI.
func ordersTable() *types.TableDescription {
	return &types.TableDescription{
		TableName:   aws.String("Orders"),
		TableStatus: types.TableStatusActive,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("date"), AttributeType: types.ScalarAttributeTypeS},
		},
		ProvisionedThroughput: throughputDesc(5, 5),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndexDescription{
			{
				IndexName: aws.String("ByDate"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("date"), KeyType: types.KeyTypeHash},
				},
				Projection:            &types.Projection{ProjectionType: types.ProjectionTypeAll},
				ProvisionedThroughput: throughputDesc(5, 5),
			},
		},
		ItemCount: aws.Int64(42),
	}
}

func TestBuildRequest(t *testing.T) {
	src := ordersTable()

	req := BuildRequest(src, "OrdersCopy")

	assert.Equal(t, "OrdersCopy", aws.ToString(req.TableName))
	assert.Equal(t, src.KeySchema, req.KeySchema)
	assert.Equal(t, src.AttributeDefinitions, req.AttributeDefinitions)
	assert.Empty(t, req.BillingMode)

	require.NotNil(t, req.ProvisionedThroughput)
	assert.Equal(t, int64(5), aws.ToInt64(req.ProvisionedThroughput.ReadCapacityUnits))
	assert.Equal(t, int64(5), aws.ToInt64(req.ProvisionedThroughput.WriteCapacityUnits))

	assert.Nil(t, req.LocalSecondaryIndexes)
	require.Len(t, req.GlobalSecondaryIndexes, 1)
	gsi := req.GlobalSecondaryIndexes[0]
	assert.Equal(t, "ByDate", aws.ToString(gsi.IndexName))
	require.NotNil(t, gsi.ProvisionedThroughput)
	assert.NotSame(t, req.ProvisionedThroughput, gsi.ProvisionedThroughput)
	assert.NotSame(t, src.GlobalSecondaryIndexes[0].ProvisionedThroughput.ReadCapacityUnits, gsi.ProvisionedThroughput.ReadCapacityUnits)
}

func TestBuildRequest_LocalIndexes(t *testing.T) {
	src := ordersTable()
	src.GlobalSecondaryIndexes = nil
	src.KeySchema = append(src.KeySchema, types.KeySchemaElement{
		AttributeName: aws.String("date"), KeyType: types.KeyTypeRange,
	})
	src.LocalSecondaryIndexes = []types.LocalSecondaryIndexDescription{
		{
			IndexName: aws.String("ByStatus"),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("status"), KeyType: types.KeyTypeRange},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeKeysOnly},
		},
	}

	req := BuildRequest(src, "OrdersCopy")

	assert.Nil(t, req.GlobalSecondaryIndexes)
	require.Len(t, req.LocalSecondaryIndexes, 1)
	assert.Equal(t, "ByStatus", aws.ToString(req.LocalSecondaryIndexes[0].IndexName))
	assert.Equal(t, src.KeySchema, req.KeySchema)
}

func TestBuildRequest_OnDemand(t *testing.T) {
	src := ordersTable()
	src.BillingModeSummary = &types.BillingModeSummary{BillingMode: types.BillingModePayPerRequest}
	src.ProvisionedThroughput = throughputDesc(0, 0)
	src.GlobalSecondaryIndexes[0].ProvisionedThroughput = throughputDesc(0, 0)

	req := BuildRequest(src, "OrdersCopy")

	assert.Equal(t, types.BillingModePayPerRequest, req.BillingMode)
	assert.Nil(t, req.ProvisionedThroughput)
	require.Len(t, req.GlobalSecondaryIndexes, 1)
	assert.Nil(t, req.GlobalSecondaryIndexes[0].ProvisionedThroughput)
}

func TestBuildRequest_DoesNotMutateSource(t *testing.T) {
	src := ordersTable()

	req := BuildRequest(src, "OrdersCopy")
	req.KeySchema[0].AttributeName = aws.String("changed")
	*req.ProvisionedThroughput.ReadCapacityUnits = 99

	assert.Equal(t, "id", aws.ToString(src.KeySchema[0].AttributeName))
	assert.Equal(t, int64(5), aws.ToInt64(src.ProvisionedThroughput.ReadCapacityUnits))
}
