// Package schema defines YAML documents describing DynamoDB table schemas.
// They are what `ddbclone clone --dry-run` prints and what the local table
// catalog is seeded from. Conversions to and from the SDK types live in
// convert.go.
package schema

// Schema is the root type containing all table definitions.
// This maps directly to the structure of schema files.
type Schema struct {
	Tables []Table `yaml:"tables" json:"tables"`
}

// Table describes a DynamoDB table definition without its items.
type Table struct {
	Name                   string      `yaml:"name" json:"name"`
	BillingMode            string      `yaml:"billingMode,omitempty" json:"billingMode,omitempty"` // "PROVISIONED" or "PAY_PER_REQUEST"
	KeySchema              []KeyDef    `yaml:"keySchema" json:"keySchema"`
	AttributeDefinitions   []Attribute `yaml:"attributeDefinitions" json:"attributeDefinitions"`
	ProvisionedThroughput  *Throughput `yaml:"provisionedThroughput,omitempty" json:"provisionedThroughput,omitempty"`
	LocalSecondaryIndexes  []Index     `yaml:"localSecondaryIndexes,omitempty" json:"localSecondaryIndexes,omitempty"`
	GlobalSecondaryIndexes []Index     `yaml:"globalSecondaryIndexes,omitempty" json:"globalSecondaryIndexes,omitempty"`
}

// KeyDef is one element of a key schema.
type KeyDef struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"` // "HASH" or "RANGE"
}

// Attribute describes the type of a key attribute.
type Attribute struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"` // "S", "N", or "B"
}

// Throughput is provisioned read/write capacity.
type Throughput struct {
	Read  int64 `yaml:"read" json:"read"`
	Write int64 `yaml:"write" json:"write"`
}

// Index describes a local or global secondary index.
// Local indexes never carry throughput.
type Index struct {
	Name                  string      `yaml:"name" json:"name"`
	KeySchema             []KeyDef    `yaml:"keySchema" json:"keySchema"`
	Projection            Projection  `yaml:"projection" json:"projection"`
	ProvisionedThroughput *Throughput `yaml:"provisionedThroughput,omitempty" json:"provisionedThroughput,omitempty"`
}

// Projection describes which attributes are copied into an index.
type Projection struct {
	Type             string   `yaml:"type" json:"type"` // "ALL", "KEYS_ONLY", or "INCLUDE"
	NonKeyAttributes []string `yaml:"nonKeyAttributes,omitempty" json:"nonKeyAttributes,omitempty"`
}
