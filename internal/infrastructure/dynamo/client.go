package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewClient crea el cliente DynamoDB. Un endpoint no vacío redirige a un
// dynamodb-local (docker) en lugar de AWS.
func NewClient(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	var opts []func(*dynamodb.Options)
	if endpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, opts...)
}
