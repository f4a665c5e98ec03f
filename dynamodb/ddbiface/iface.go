// Package ddbiface provides the table-level interface for DynamoDB control
// plane operations. This interface is satisfied by both the AWS SDK v2
// DynamoDB client and by ddbstore.Store, allowing the cloner to work with
// either real AWS DynamoDB or a local BadgerDB-backed table catalog.
package ddbiface

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// TableAPI is the interface for DynamoDB table operations.
// It mirrors the method signatures of the AWS SDK v2 *dynamodb.Client, so it
// also satisfies dynamodb.DescribeTableAPIClient for the table waiters.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// TableLister lists table names, mirroring *dynamodb.Client.
type TableLister interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

// TableDeleter deletes tables, mirroring *dynamodb.Client.
type TableDeleter interface {
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

// Catalog is a TableAPI that can also enumerate its tables.
type Catalog interface {
	TableAPI
	TableLister
}

var (
	_ Catalog                         = (*dynamodb.Client)(nil)
	_ TableDeleter                    = (*dynamodb.Client)(nil)
	_ dynamodb.DescribeTableAPIClient = TableAPI(nil)
)
