// Package clone copies the schema of an existing DynamoDB table into a new
// table. Only the table definition is copied: key schema, attribute
// definitions, throughput and secondary indexes. Items are never read.
//
// A clone runs as a linear sequence, each step terminal on failure:
//
//	describe source -> check destination absent -> build request -> create -> wait active
package clone

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/acksell/ddbclone/dynamodb/ddbiface"
)

// DefaultWaitTimeout bounds how long Clone blocks for the new table to
// become active.
const DefaultWaitTimeout = 5 * time.Minute

var (
	// ErrSourceNotFound is returned when the source table cannot be described.
	ErrSourceNotFound = errors.New("source table does not exist")
	// ErrDestinationExists is returned when the destination name is taken.
	ErrDestinationExists = errors.New("destination table already exists")
	// ErrInvalidWaitTimeout is returned when the wait timeout is not positive.
	ErrInvalidWaitTimeout = errors.New("wait timeout must be greater than zero")
)

// Cloner copies table schemas using an explicit table API handle.
type Cloner struct {
	client      ddbiface.TableAPI
	logger      *zap.Logger
	progress    io.Writer
	waitTimeout time.Duration
}

// Option configures a Cloner.
type Option func(*Cloner)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cloner) {
		c.logger = logger
	}
}

// WithProgress sets where human readable progress lines are written.
func WithProgress(w io.Writer) Option {
	return func(c *Cloner) {
		c.progress = w
	}
}

// WithWaitTimeout sets the maximum time to wait for the table to become active.
func WithWaitTimeout(d time.Duration) Option {
	return func(c *Cloner) {
		c.waitTimeout = d
	}
}

// New creates a Cloner bound to the given client.
func New(client ddbiface.TableAPI, opts ...Option) *Cloner {
	c := &Cloner{
		client:      client,
		logger:      zap.NewNop(),
		progress:    io.Discard,
		waitTimeout: DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Describe fetches the description of a table.
func (c *Cloner) Describe(ctx context.Context, name string) (*types.TableDescription, error) {
	out, err := c.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	if out.Table == nil {
		return nil, fmt.Errorf("describe %q: empty table description", name)
	}
	return out.Table, nil
}

// Plan validates both table names and returns the create request that Clone
// would submit. Nothing is created.
func (c *Cloner) Plan(ctx context.Context, source, destination string) (*dynamodb.CreateTableInput, error) {
	src, err := c.Describe(ctx, source)
	if err != nil {
		c.logger.Debug("describe source failed",
			zap.String("table", source),
			zap.String("code", errorCode(err)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	if err := c.checkAbsent(ctx, destination); err != nil {
		return nil, err
	}

	input := BuildRequest(src, destination)
	c.logger.Debug("built create table request",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Int("keySchema", len(input.KeySchema)),
		zap.Int("localIndexes", len(input.LocalSecondaryIndexes)),
		zap.Int("globalIndexes", len(input.GlobalSecondaryIndexes)),
		zap.String("billingMode", string(input.BillingMode)),
	)
	return input, nil
}

// Clone creates destination with the schema of source and blocks until the
// new table is active. A failed create or wait is returned as is; a table
// left half created is not cleaned up.
func (c *Cloner) Clone(ctx context.Context, source, destination string) error {
	if c.waitTimeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidWaitTimeout, c.waitTimeout)
	}
	input, err := c.Plan(ctx, source, destination)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.progress, "Provisioning new table %s\n", destination)
	if _, err := c.client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("create table %q: %w", destination, err)
	}
	c.logger.Info("create table accepted", zap.String("table", destination))

	waiter := dynamodb.NewTableExistsWaiter(c.client)
	start := time.Now()
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(destination)}, c.waitTimeout); err != nil {
		return fmt.Errorf("waiting for table %q to become active: %w", destination, err)
	}
	c.logger.Info("table active",
		zap.String("table", destination),
		zap.Duration("waited", time.Since(start)),
	)
	fmt.Fprintln(c.progress, "Table creation complete")
	return nil
}

// checkAbsent succeeds only when the service reports the table as missing.
// Any other describe failure is treated as unknown and aborts the clone.
func (c *Cloner) checkAbsent(ctx context.Context, name string) error {
	_, err := c.Describe(ctx, name)
	if err == nil {
		return fmt.Errorf("%w: %q", ErrDestinationExists, name)
	}
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("check destination table %q: %w", name, err)
}

func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
