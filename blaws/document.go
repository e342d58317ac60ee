package blaws

import (
	"context"
	"maps"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

// DocumentOptions tune how Go values are converted to and from DynamoDB attribute values.
type DocumentOptions struct {
	Marshal   []func(*attributevalue.EncoderOptions)
	Unmarshal []func(*attributevalue.DecoderOptions)

	// DropEmpty removes top-level attributes that are NULL, empty strings, empty binaries or empty sets from
	// marshaled items.
	DropEmpty bool
}

// OmitEmpty returns options that drop empty strings, sets and nil values from marshaled items.
func OmitEmpty() DocumentOptions {
	return DocumentOptions{DropEmpty: true}
}

func isEmptyAttribute(av types.AttributeValue) bool {
	switch v := av.(type) {
	case *types.AttributeValueMemberNULL:
		return true
	case *types.AttributeValueMemberS:
		return v.Value == ""
	case *types.AttributeValueMemberB:
		return len(v.Value) == 0
	case *types.AttributeValueMemberSS:
		return len(v.Value) == 0
	case *types.AttributeValueMemberNS:
		return len(v.Value) == 0
	case *types.AttributeValueMemberBS:
		return len(v.Value) == 0
	default:
		return false
	}
}

// DocumentClient reads and writes plain Go values against DynamoDB tables.
type DocumentClient struct {
	client *dynamodb.Client
	opts   DocumentOptions
}

// NewDocumentClient wraps client.
func NewDocumentClient(client *dynamodb.Client, opts DocumentOptions) *DocumentClient {
	return &DocumentClient{client: client, opts: opts}
}

// Client returns the underlying DynamoDB client.
func (d *DocumentClient) Client() *dynamodb.Client { return d.client }

// Put writes item to table.
func (d *DocumentClient) Put(ctx context.Context, table string, item any) error {
	av, err := d.marshal(item)
	if err != nil {
		return err
	}

	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	}); err != nil {
		return errors.Wrapf(err, "put item into %q", table)
	}

	return nil
}

// Get reads the item identified by key into out. It reports false when no such item exists.
func (d *DocumentClient) Get(ctx context.Context, table string, key, out any) (bool, error) {
	av, err := d.marshal(key)
	if err != nil {
		return false, err
	}

	res, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       av,
	})
	if err != nil {
		return false, errors.Wrapf(err, "get item from %q", table)
	}

	if len(res.Item) == 0 {
		return false, nil
	}

	if err := attributevalue.UnmarshalMapWithOptions(res.Item, out, d.opts.Unmarshal...); err != nil {
		return false, errors.Wrap(err, "unmarshal item")
	}

	return true, nil
}

// Delete removes the item identified by key.
func (d *DocumentClient) Delete(ctx context.Context, table string, key any) error {
	av, err := d.marshal(key)
	if err != nil {
		return err
	}

	if _, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       av,
	}); err != nil {
		return errors.Wrapf(err, "delete item from %q", table)
	}

	return nil
}

// Query runs keyCondition against table and unmarshals the first page of items into out, which must point to a
// slice. Placeholders in keyCondition are bound from values, e.g. map[string]any{":pk": "user#1"}.
func (d *DocumentClient) Query(ctx context.Context, table, keyCondition string, values, out any) error {
	av, err := d.marshal(values)
	if err != nil {
		return err
	}

	res, err := d.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String(keyCondition),
		ExpressionAttributeValues: av,
	})
	if err != nil {
		return errors.Wrapf(err, "query %q", table)
	}

	if err := attributevalue.UnmarshalListOfMapsWithOptions(res.Items, out, d.opts.Unmarshal...); err != nil {
		return errors.Wrap(err, "unmarshal items")
	}

	return nil
}

func (d *DocumentClient) marshal(v any) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMapWithOptions(v, d.opts.Marshal...)
	if err != nil {
		return nil, errors.Wrap(err, "marshal item")
	}

	if d.opts.DropEmpty {
		maps.DeleteFunc(av, func(_ string, v types.AttributeValue) bool { return isEmptyAttribute(v) })
	}

	return av, nil
}
