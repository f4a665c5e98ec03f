package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/acksell/ddbclone/dynamodb/ddbiface"
	"github.com/acksell/ddbclone/dynamodb/ddbstore"
	"github.com/acksell/ddbclone/dynamodb/schema"
)

const (
	defaultRegion  = "us-east-1"
	defaultProfile = "default"
)

// backendOptions selects where tables live: AWS (optionally behind a custom
// endpoint) or the local BadgerDB catalog.
type backendOptions struct {
	region   string
	profile  string
	endpoint string
	localDir string
	memory   bool
	seed     string
}

func (o *backendOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.region, "region", defaultRegion, "AWS region to target")
	fs.StringVar(&o.profile, "profile", defaultProfile, "AWS credential profile to use")
	fs.StringVar(&o.endpoint, "endpoint", "", "DynamoDB endpoint URL, e.g. http://localhost:8000")
	fs.StringVar(&o.localDir, "local", "", "use the local table catalog stored in this directory instead of AWS")
	fs.BoolVar(&o.memory, "memory", false, "use an in-memory local table catalog")
	fs.StringVar(&o.seed, "seed", "", "schema YAML file with tables to create in the local catalog")
}

// applyConfig fills options that were not set on the command line.
func (o *backendOptions) applyConfig(fs *pflag.FlagSet, cfg Config) {
	if !fs.Changed("region") && cfg.Region != "" {
		o.region = cfg.Region
	}
	if !fs.Changed("profile") && cfg.Profile != "" {
		o.profile = cfg.Profile
	}
	if !fs.Changed("endpoint") && cfg.Endpoint != "" {
		o.endpoint = cfg.Endpoint
	}
	if !fs.Changed("local") && cfg.LocalDir != "" {
		o.localDir = cfg.LocalDir
	}
}

func (o *backendOptions) isLocal() bool {
	return o.localDir != "" || o.memory
}

// openCatalog constructs the table API handle once for the command. The
// returned close func releases local resources and is never nil.
func openCatalog(ctx context.Context, o backendOptions, logger *zap.Logger) (ddbiface.Catalog, func() error, error) {
	if o.isLocal() {
		return openLocal(o, logger)
	}
	if o.seed != "" {
		return nil, nil, fmt.Errorf("--seed requires --local or --memory")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(o.region),
		config.WithSharedConfigProfile(o.profile),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("load AWS config for profile %q: %w", o.profile, err)
	}

	client := dynamodb.NewFromConfig(cfg, func(opts *dynamodb.Options) {
		if o.endpoint != "" {
			opts.BaseEndpoint = aws.String(o.endpoint)
		}
	})
	logger.Debug("using DynamoDB",
		zap.String("region", o.region),
		zap.String("profile", o.profile),
		zap.String("endpoint", o.endpoint),
	)

	if o.endpoint == "" && logger.Core().Enabled(zap.InfoLevel) {
		logCallerIdentity(ctx, cfg, logger)
	}
	return client, func() error { return nil }, nil
}

func openLocal(o backendOptions, logger *zap.Logger) (ddbiface.Catalog, func() error, error) {
	var seed []schema.Table
	if o.seed != "" {
		s, err := schema.Load(o.seed)
		if err != nil {
			return nil, nil, fmt.Errorf("loading seed: %w", err)
		}
		seed = s.Tables
	}

	store, err := ddbstore.New(ddbstore.StoreOptions{
		Path:     o.localDir,
		InMemory: o.memory,
		Logger:   ddbstore.ZapLogger(logger.Named("badger")),
	}, seed...)
	if err != nil {
		return nil, nil, fmt.Errorf("creating store: %w", err)
	}
	logger.Debug("using local table catalog",
		zap.String("dir", o.localDir),
		zap.Bool("memory", o.memory),
		zap.Int("seeded", len(seed)),
	)
	return store, store.Close, nil
}

// logCallerIdentity reports which account the command is about to modify.
// Failures are logged and otherwise ignored.
func logCallerIdentity(ctx context.Context, cfg aws.Config, logger *zap.Logger) {
	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		logger.Warn("could not resolve caller identity", zap.Error(err))
		return
	}
	logger.Info("resolved caller identity",
		zap.String("account", aws.ToString(out.Account)),
		zap.String("arn", aws.ToString(out.Arn)),
	)
}
