package ddbstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/ddbclone/dynamodb/ddbiface"
	"github.com/acksell/ddbclone/dynamodb/schema"
)

var (
	_ ddbiface.Catalog      = (*Store)(nil)
	_ ddbiface.TableDeleter = (*Store)(nil)
)

// DescribeTable returns the description of a table.
// Missing tables yield *types.ResourceNotFoundException, as DynamoDB does.
func (s *Store) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if params == nil {
		return nil, fmt.Errorf("params is required")
	}
	name := aws.ToString(params.TableName)
	if name == "" {
		return nil, fmt.Errorf("table name is required")
	}

	var rec tableRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tableKey(name))
		if err == badger.ErrKeyNotFound {
			return tableNotFound(name)
		}
		if err != nil {
			return err
		}
		rec, err = readRecord(item)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dynamodb.DescribeTableOutput{Table: describe(rec)}, nil
}

// CreateTable creates a table. Local tables are active immediately.
func (s *Store) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if params == nil {
		return nil, fmt.Errorf("params is required")
	}

	t := schema.FromCreateInput(params)
	if err := validateTable(t); err != nil {
		return nil, err
	}

	rec := tableRecord{Table: t, CreatedAt: s.now()}
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(tableKey(t.Name))
		if err == nil {
			return &types.ResourceInUseException{
				Message: aws.String(fmt.Sprintf("Table already exists: %s", t.Name)),
			}
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		return putRecord(txn, rec)
	})
	if err != nil {
		return nil, err
	}

	return &dynamodb.CreateTableOutput{TableDescription: describe(rec)}, nil
}

// DeleteTable removes a table and returns its last description.
// Local tables are gone immediately rather than passing through DELETING.
func (s *Store) DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	if params == nil {
		return nil, fmt.Errorf("params is required")
	}
	name := aws.ToString(params.TableName)
	if name == "" {
		return nil, fmt.Errorf("table name is required")
	}

	var rec tableRecord
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(tableKey(name))
		if err == badger.ErrKeyNotFound {
			return tableNotFound(name)
		}
		if err != nil {
			return err
		}
		if rec, err = readRecord(item); err != nil {
			return err
		}
		return txn.Delete(tableKey(name))
	})
	if err != nil {
		return nil, err
	}

	desc := describe(rec)
	desc.TableStatus = types.TableStatusDeleting
	return &dynamodb.DeleteTableOutput{TableDescription: desc}, nil
}

// ListTables returns table names in ascending order.
func (s *Store) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	if params == nil {
		params = &dynamodb.ListTablesInput{}
	}
	limit := int(aws.ToInt32(params.Limit))
	start := aws.ToString(params.ExclusiveStartTableName)

	out := &dynamodb.ListTablesOutput{}
	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.PrefetchValues = false
		iterOpts.Prefix = []byte(tablePrefix)
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		seekKey := []byte(tablePrefix)
		if start != "" {
			seekKey = tableKey(start)
		}
		for it.Seek(seekKey); it.Valid(); it.Next() {
			name := tableNameFromKey(it.Item().Key())
			if name == start {
				continue
			}
			if limit > 0 && len(out.TableNames) == limit {
				out.LastEvaluatedTableName = aws.String(out.TableNames[limit-1])
				return nil
			}
			out.TableNames = append(out.TableNames, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func describe(rec tableRecord) *types.TableDescription {
	desc := rec.Table.Description(types.TableStatusActive)
	desc.CreationDateTime = aws.Time(rec.CreatedAt)
	desc.TableArn = aws.String("arn:aws:dynamodb:local:000000000000:table/" + rec.Table.Name)
	return desc
}

func tableNotFound(name string) error {
	return &types.ResourceNotFoundException{
		Message: aws.String(fmt.Sprintf("Requested resource not found: Table: %s not found", name)),
	}
}
