package schema

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FromCreateInput converts a create-table request into a schema document.
func FromCreateInput(in *dynamodb.CreateTableInput) Table {
	t := Table{
		Name:                  aws.ToString(in.TableName),
		BillingMode:           string(in.BillingMode),
		KeySchema:             keyDefsFromSDK(in.KeySchema),
		ProvisionedThroughput: throughputFromSDK(in.ProvisionedThroughput),
	}
	for _, a := range in.AttributeDefinitions {
		t.AttributeDefinitions = append(t.AttributeDefinitions, Attribute{
			Name: aws.ToString(a.AttributeName),
			Type: string(a.AttributeType),
		})
	}
	for _, idx := range in.LocalSecondaryIndexes {
		t.LocalSecondaryIndexes = append(t.LocalSecondaryIndexes, Index{
			Name:       aws.ToString(idx.IndexName),
			KeySchema:  keyDefsFromSDK(idx.KeySchema),
			Projection: projectionFromSDK(idx.Projection),
		})
	}
	for _, idx := range in.GlobalSecondaryIndexes {
		t.GlobalSecondaryIndexes = append(t.GlobalSecondaryIndexes, Index{
			Name:                  aws.ToString(idx.IndexName),
			KeySchema:             keyDefsFromSDK(idx.KeySchema),
			Projection:            projectionFromSDK(idx.Projection),
			ProvisionedThroughput: throughputFromSDK(idx.ProvisionedThroughput),
		})
	}
	return t
}

// CreateInput converts the document into a create-table request.
func (t Table) CreateInput() *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:             aws.String(t.Name),
		BillingMode:           types.BillingMode(t.BillingMode),
		KeySchema:             keySchemaToSDK(t.KeySchema),
		ProvisionedThroughput: t.ProvisionedThroughput.sdk(),
	}
	for _, a := range t.AttributeDefinitions {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(a.Name),
			AttributeType: types.ScalarAttributeType(a.Type),
		})
	}
	for _, idx := range t.LocalSecondaryIndexes {
		in.LocalSecondaryIndexes = append(in.LocalSecondaryIndexes, types.LocalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  keySchemaToSDK(idx.KeySchema),
			Projection: idx.Projection.sdk(),
		})
	}
	for _, idx := range t.GlobalSecondaryIndexes {
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:             aws.String(idx.Name),
			KeySchema:             keySchemaToSDK(idx.KeySchema),
			Projection:            idx.Projection.sdk(),
			ProvisionedThroughput: idx.ProvisionedThroughput.sdk(),
		})
	}
	return in
}

// Description renders the document the way DescribeTable reports it.
// Indexes are reported with the same status as the table.
func (t Table) Description(status types.TableStatus) *types.TableDescription {
	desc := &types.TableDescription{
		TableName:             aws.String(t.Name),
		TableStatus:           status,
		KeySchema:             keySchemaToSDK(t.KeySchema),
		ProvisionedThroughput: t.ProvisionedThroughput.description(),
		ItemCount:             aws.Int64(0),
		TableSizeBytes:        aws.Int64(0),
	}
	if t.BillingMode != "" {
		desc.BillingModeSummary = &types.BillingModeSummary{
			BillingMode: types.BillingMode(t.BillingMode),
		}
	}
	for _, a := range t.AttributeDefinitions {
		desc.AttributeDefinitions = append(desc.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(a.Name),
			AttributeType: types.ScalarAttributeType(a.Type),
		})
	}
	for _, idx := range t.LocalSecondaryIndexes {
		desc.LocalSecondaryIndexes = append(desc.LocalSecondaryIndexes, types.LocalSecondaryIndexDescription{
			IndexName:  aws.String(idx.Name),
			KeySchema:  keySchemaToSDK(idx.KeySchema),
			Projection: idx.Projection.sdk(),
		})
	}
	indexStatus := types.IndexStatus(status)
	for _, idx := range t.GlobalSecondaryIndexes {
		desc.GlobalSecondaryIndexes = append(desc.GlobalSecondaryIndexes, types.GlobalSecondaryIndexDescription{
			IndexName:             aws.String(idx.Name),
			IndexStatus:           indexStatus,
			KeySchema:             keySchemaToSDK(idx.KeySchema),
			Projection:            idx.Projection.sdk(),
			ProvisionedThroughput: idx.ProvisionedThroughput.description(),
		})
	}
	return desc
}

func keySchemaToSDK(defs []KeyDef) []types.KeySchemaElement {
	if defs == nil {
		return nil
	}
	out := make([]types.KeySchemaElement, 0, len(defs))
	for _, k := range defs {
		out = append(out, types.KeySchemaElement{
			AttributeName: aws.String(k.Name),
			KeyType:       types.KeyType(k.Type),
		})
	}
	return out
}

func keyDefsFromSDK(elems []types.KeySchemaElement) []KeyDef {
	if elems == nil {
		return nil
	}
	out := make([]KeyDef, 0, len(elems))
	for _, e := range elems {
		out = append(out, KeyDef{
			Name: aws.ToString(e.AttributeName),
			Type: string(e.KeyType),
		})
	}
	return out
}

func throughputFromSDK(pt *types.ProvisionedThroughput) *Throughput {
	if pt == nil {
		return nil
	}
	return &Throughput{
		Read:  aws.ToInt64(pt.ReadCapacityUnits),
		Write: aws.ToInt64(pt.WriteCapacityUnits),
	}
}

func (tp *Throughput) sdk() *types.ProvisionedThroughput {
	if tp == nil {
		return nil
	}
	return &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(tp.Read),
		WriteCapacityUnits: aws.Int64(tp.Write),
	}
}

// description reports zero capacity when throughput is unset, matching
// what DescribeTable returns for on-demand tables.
func (tp *Throughput) description() *types.ProvisionedThroughputDescription {
	var read, write int64
	if tp != nil {
		read, write = tp.Read, tp.Write
	}
	return &types.ProvisionedThroughputDescription{
		ReadCapacityUnits:      aws.Int64(read),
		WriteCapacityUnits:     aws.Int64(write),
		NumberOfDecreasesToday: aws.Int64(0),
	}
}

func projectionFromSDK(p *types.Projection) Projection {
	if p == nil {
		return Projection{}
	}
	return Projection{
		Type:             string(p.ProjectionType),
		NonKeyAttributes: p.NonKeyAttributes,
	}
}

func (p Projection) sdk() *types.Projection {
	return &types.Projection{
		ProjectionType:   types.ProjectionType(p.Type),
		NonKeyAttributes: p.NonKeyAttributes,
	}
}
