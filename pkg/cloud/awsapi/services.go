package awsapi

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Bindings for services whose SDK modules this binary links. Adding a
// service is one Register call plus its module in go.mod; the metadata
// catalog and the invoker need no changes.
func init() {
	Register("cloudformation", func(cfg aws.Config) any { return cloudformation.NewFromConfig(cfg) })
	Register("cloudfront", func(cfg aws.Config) any { return cloudfront.NewFromConfig(cfg) })
	Register("dynamodb", func(cfg aws.Config) any { return dynamodb.NewFromConfig(cfg) })
	Register("ec2", func(cfg aws.Config) any { return ec2.NewFromConfig(cfg) })
	Register("ecs", func(cfg aws.Config) any { return ecs.NewFromConfig(cfg) })
	Register("elasticache", func(cfg aws.Config) any { return elasticache.NewFromConfig(cfg) })
	Register("iam", func(cfg aws.Config) any { return iam.NewFromConfig(cfg) })
	Register("kms", func(cfg aws.Config) any { return kms.NewFromConfig(cfg) })
	Register("lambda", func(cfg aws.Config) any { return lambda.NewFromConfig(cfg) })
	Register("logs", func(cfg aws.Config) any { return cloudwatchlogs.NewFromConfig(cfg) })
	Register("rds", func(cfg aws.Config) any { return rds.NewFromConfig(cfg) })
	Register("route53", func(cfg aws.Config) any { return route53.NewFromConfig(cfg) })
	Register("s3", func(cfg aws.Config) any { return s3.NewFromConfig(cfg) })
	Register("sns", func(cfg aws.Config) any { return sns.NewFromConfig(cfg) })
	Register("sqs", func(cfg aws.Config) any { return sqs.NewFromConfig(cfg) })
}
