package clone

import (
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CloneThroughput copies the read and write capacity of a table or index
// description into a new create-time throughput value.
// Returns nil when the source carries no throughput.
func CloneThroughput(source *types.ProvisionedThroughputDescription) *types.ProvisionedThroughput {
	if source == nil {
		return nil
	}
	return &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(aws.ToInt64(source.ReadCapacityUnits)),
		WriteCapacityUnits: aws.Int64(aws.ToInt64(source.WriteCapacityUnits)),
	}
}

// CloneGlobalIndexes rebuilds global secondary index descriptions as create
// definitions, preserving order. Name, key schema and projection are copied,
// throughput goes through CloneThroughput.
func CloneGlobalIndexes(source []types.GlobalSecondaryIndexDescription) []types.GlobalSecondaryIndex {
	if source == nil {
		return nil
	}
	indexes := make([]types.GlobalSecondaryIndex, 0, len(source))
	for _, idx := range source {
		indexes = append(indexes, types.GlobalSecondaryIndex{
			IndexName:             idx.IndexName,
			KeySchema:             slices.Clone(idx.KeySchema),
			Projection:            idx.Projection,
			ProvisionedThroughput: CloneThroughput(idx.ProvisionedThroughput),
		})
	}
	return indexes
}

// CloneLocalIndexes rebuilds local secondary index descriptions as create
// definitions, preserving order. Local indexes consume the table's
// throughput, so only name, key schema and projection are carried over.
func CloneLocalIndexes(source []types.LocalSecondaryIndexDescription) []types.LocalSecondaryIndex {
	if source == nil {
		return nil
	}
	indexes := make([]types.LocalSecondaryIndex, 0, len(source))
	for _, idx := range source {
		indexes = append(indexes, types.LocalSecondaryIndex{
			IndexName:  idx.IndexName,
			KeySchema:  slices.Clone(idx.KeySchema),
			Projection: idx.Projection,
		})
	}
	return indexes
}

// withoutThroughput drops per-index throughput for on-demand tables.
func withoutThroughput(indexes []types.GlobalSecondaryIndex) []types.GlobalSecondaryIndex {
	for i := range indexes {
		indexes[i].ProvisionedThroughput = nil
	}
	return indexes
}
