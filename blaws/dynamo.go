package blaws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cockroachdb/errors"
)

// ErrDynamoNotInitialized is returned when the DynamoDB client is requested before InitDynamo was called.
var ErrDynamoNotInitialized = errors.New("dynamodb client not initialized; call InitDynamo first")

// InitDynamo creates the DynamoDB client and the document client derived from it, replacing any previous pair.
func (r *Registry) InitDynamo(cfg aws.Config, docOpts DocumentOptions, optFns ...func(*dynamodb.Options)) *dynamodb.Client {
	client := r.dynamo.set(dynamodb.NewFromConfig(cfg, optFns...))
	r.document.set(NewDocumentClient(client, docOpts))

	return client
}

// Dynamo returns the DynamoDB client or ErrDynamoNotInitialized.
func (r *Registry) Dynamo() (*dynamodb.Client, error) {
	client, ok := r.dynamo.get()
	if !ok {
		return nil, ErrDynamoNotInitialized
	}

	return client, nil
}

// DynamoDocument returns the document client or ErrDynamoNotInitialized.
func (r *Registry) DynamoDocument() (*DocumentClient, error) {
	doc, ok := r.document.get()
	if !ok {
		return nil, ErrDynamoNotInitialized
	}

	return doc, nil
}

// ResetDynamo clears both the DynamoDB client and its document client.
func (r *Registry) ResetDynamo() {
	r.dynamo.reset()
	r.document.reset()
}
