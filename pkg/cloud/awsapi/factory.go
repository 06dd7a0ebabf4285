// Package awsapi binds the cloud.Client abstraction to the AWS SDK.
//
// Generated SDK clients expose one typed method per operation, so
// operation-by-name invocation goes through reflection: look the method
// up, build its zero-value input, call it, and decode the typed output
// into a generic field map. Services opt in through a constructor
// registry; unregistered services fail client construction rather than
// invocation.
package awsapi

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/regression-io/aws-list-all/pkg/cloud"
)

// Constructor builds a generated SDK client from a resolved aws.Config.
type Constructor func(cfg aws.Config) any

var (
	registryMu   sync.RWMutex
	constructors = map[string]Constructor{}
)

// Register adds a service client constructor to the registry. Later
// registrations for the same service replace earlier ones.
func Register(service string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	constructors[service] = ctor
}

// RegisteredServices returns the sorted services with an API binding.
func RegisteredServices() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupConstructor(service string) (Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := constructors[service]
	return ctor, ok
}

type configKey struct {
	region  string
	profile string
}

// Factory implements cloud.Factory over the AWS SDK.
//
// Resolved aws.Configs are cached per (region, profile) so a sweep does
// not re-run the credential chain for every service in a region.
type Factory struct {
	accessKeyID     string
	secretAccessKey string

	mu      sync.Mutex
	configs map[configKey]aws.Config
}

// NewFactory creates an AWS client factory using the SDK default
// credential chain.
func NewFactory() *Factory {
	return &Factory{configs: make(map[configKey]aws.Config)}
}

// WithStaticCredentials makes the factory use explicit credentials
// instead of the default chain. Empty values leave the chain in place.
// Returns the factory for chaining.
func (f *Factory) WithStaticCredentials(accessKeyID, secretAccessKey string) *Factory {
	f.accessKeyID = accessKeyID
	f.secretAccessKey = secretAccessKey
	return f
}

// Client constructs a cloud.Client for the triple, or fails when no API
// binding is registered for the service.
func (f *Factory) Client(ctx context.Context, service, region, profile string) (cloud.Client, error) {
	ctor, ok := lookupConstructor(service)
	if !ok {
		return nil, fmt.Errorf("no API binding registered for service %q", service)
	}
	cfg, err := f.config(ctx, region, profile)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for %s/%s: %w", region, profile, err)
	}
	return &serviceClient{
		service: service,
		region:  region,
		api:     ctor(cfg),
	}, nil
}

// CanConstruct reports whether a client can be built for the service in
// the region. Used by the region-cache diagnostic path.
func (f *Factory) CanConstruct(ctx context.Context, service, region string) bool {
	_, err := f.Client(ctx, service, region, "")
	return err == nil
}

func (f *Factory) config(ctx context.Context, region, profile string) (aws.Config, error) {
	key := configKey{region: region, profile: profile}

	f.mu.Lock()
	defer f.mu.Unlock()
	if cfg, ok := f.configs[key]; ok {
		return cfg, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	if f.accessKeyID != "" && f.secretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(f.accessKeyID, f.secretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	f.configs[key] = cfg
	return cfg, nil
}
