package ddbstore

import (
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/acksell/ddbclone/dynamodb/schema"
)

// validateTable applies the create-time checks DynamoDB performs on a
// table definition.
func validateTable(t schema.Table) error {
	if t.Name == "" {
		return fmt.Errorf("table name is required")
	}

	defined := make(map[string]string, len(t.AttributeDefinitions))
	for _, a := range t.AttributeDefinitions {
		switch types.ScalarAttributeType(a.Type) {
		case types.ScalarAttributeTypeS, types.ScalarAttributeTypeN, types.ScalarAttributeTypeB:
		default:
			return fmt.Errorf("attribute %q: unsupported type %q", a.Name, a.Type)
		}
		defined[a.Name] = a.Type
	}

	if err := validateKeySchema("table", t.KeySchema, defined); err != nil {
		return err
	}

	switch types.BillingMode(t.BillingMode) {
	case "", types.BillingModeProvisioned:
		if t.ProvisionedThroughput == nil {
			return fmt.Errorf("provisioned throughput is required in %s billing mode", types.BillingModeProvisioned)
		}
		if err := validateThroughput("table", t.ProvisionedThroughput); err != nil {
			return err
		}
	case types.BillingModePayPerRequest:
		if t.ProvisionedThroughput != nil {
			return fmt.Errorf("provisioned throughput is not allowed in %s billing mode", types.BillingModePayPerRequest)
		}
	default:
		return fmt.Errorf("unsupported billing mode %q", t.BillingMode)
	}

	onDemand := types.BillingMode(t.BillingMode) == types.BillingModePayPerRequest
	indexNames := make(map[string]bool)
	if len(t.LocalSecondaryIndexes) > 0 && len(t.KeySchema) != 2 {
		return fmt.Errorf("local indexes require a table with a %s key", types.KeyTypeRange)
	}
	for _, idx := range t.LocalSecondaryIndexes {
		if err := validateIndex(idx, defined, indexNames); err != nil {
			return err
		}
		if len(idx.KeySchema) != 2 {
			return fmt.Errorf("local index %q: key schema must have a %s element", idx.Name, types.KeyTypeRange)
		}
		if idx.ProvisionedThroughput != nil {
			return fmt.Errorf("local index %q: throughput is not allowed", idx.Name)
		}
		if idx.KeySchema[0].Name != t.KeySchema[0].Name {
			return fmt.Errorf("local index %q: partition key must match the table's", idx.Name)
		}
	}
	for _, idx := range t.GlobalSecondaryIndexes {
		if err := validateIndex(idx, defined, indexNames); err != nil {
			return err
		}
		if onDemand {
			if idx.ProvisionedThroughput != nil {
				return fmt.Errorf("global index %q: throughput is not allowed in %s billing mode", idx.Name, types.BillingModePayPerRequest)
			}
			continue
		}
		if idx.ProvisionedThroughput == nil {
			return fmt.Errorf("global index %q: throughput is required", idx.Name)
		}
		if err := validateThroughput("global index "+idx.Name, idx.ProvisionedThroughput); err != nil {
			return err
		}
	}

	return validateAttributesUsed(t)
}

// validateAttributesUsed rejects attribute definitions that no table or
// index key refers to.
func validateAttributesUsed(t schema.Table) error {
	used := make(map[string]bool)
	for _, k := range t.KeySchema {
		used[k.Name] = true
	}
	for _, idx := range append(slices.Clone(t.LocalSecondaryIndexes), t.GlobalSecondaryIndexes...) {
		for _, k := range idx.KeySchema {
			used[k.Name] = true
		}
	}
	for _, a := range t.AttributeDefinitions {
		if !used[a.Name] {
			return fmt.Errorf("attribute %q is defined but not used in any key schema", a.Name)
		}
	}
	return nil
}

func validateIndex(idx schema.Index, defined map[string]string, seen map[string]bool) error {
	if idx.Name == "" {
		return fmt.Errorf("index name is required")
	}
	if seen[idx.Name] {
		return fmt.Errorf("duplicate index name %q", idx.Name)
	}
	seen[idx.Name] = true
	return validateKeySchema("index "+idx.Name, idx.KeySchema, defined)
}

// validateKeySchema requires one HASH element, optionally followed by one
// RANGE element, each backed by an attribute definition.
func validateKeySchema(owner string, keys []schema.KeyDef, defined map[string]string) error {
	if len(keys) == 0 || len(keys) > 2 {
		return fmt.Errorf("%s: key schema must have 1 or 2 elements, got %d", owner, len(keys))
	}
	if types.KeyType(keys[0].Type) != types.KeyTypeHash {
		return fmt.Errorf("%s: first key element must be %s", owner, types.KeyTypeHash)
	}
	if len(keys) == 2 && types.KeyType(keys[1].Type) != types.KeyTypeRange {
		return fmt.Errorf("%s: second key element must be %s", owner, types.KeyTypeRange)
	}
	for _, k := range keys {
		if _, ok := defined[k.Name]; !ok {
			return fmt.Errorf("%s: key attribute %q has no attribute definition", owner, k.Name)
		}
	}
	return nil
}

func validateThroughput(owner string, tp *schema.Throughput) error {
	if tp.Read < 1 || tp.Write < 1 {
		return fmt.Errorf("%s: read and write capacity must be at least 1, got %d/%d", owner, tp.Read, tp.Write)
	}
	return nil
}
