package blaws

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/cockroachdb/errors"
)

// AttributeType is the data type of a message attribute.
type AttributeType string

const (
	AttributeString      AttributeType = "String"
	AttributeNumber      AttributeType = "Number"
	AttributeBinary      AttributeType = "Binary"
	AttributeStringArray AttributeType = "String.Array"
)

// Attribute is a single typed message attribute. Binary attributes carry BinaryValue, every other type carries
// StringValue.
type Attribute struct {
	DataType    AttributeType
	StringValue string
	BinaryValue []byte
}

// Attributes maps attribute names to their values.
type Attributes map[string]Attribute

// StringAttribute returns a String attribute.
func StringAttribute(v string) Attribute {
	return Attribute{DataType: AttributeString, StringValue: v}
}

// NumberAttribute returns a Number attribute. The value is sent as its decimal text.
func NumberAttribute(v string) Attribute {
	return Attribute{DataType: AttributeNumber, StringValue: v}
}

// BinaryAttribute returns a Binary attribute.
func BinaryAttribute(v []byte) Attribute {
	return Attribute{DataType: AttributeBinary, BinaryValue: v}
}

// StringArrayAttribute returns a String.Array attribute. Only SNS accepts it.
func StringArrayAttribute(vs ...string) Attribute {
	data, _ := json.Marshal(vs)
	return Attribute{DataType: AttributeStringArray, StringValue: string(data)}
}

func (a Attributes) toSNS() (map[string]snstypes.MessageAttributeValue, error) {
	if len(a) == 0 {
		return nil, nil
	}

	out := make(map[string]snstypes.MessageAttributeValue, len(a))
	for name, attr := range a {
		switch attr.DataType {
		case AttributeString, AttributeNumber, AttributeStringArray:
			out[name] = snstypes.MessageAttributeValue{
				DataType:    aws.String(string(attr.DataType)),
				StringValue: aws.String(attr.StringValue),
			}
		case AttributeBinary:
			out[name] = snstypes.MessageAttributeValue{
				DataType:    aws.String(string(attr.DataType)),
				BinaryValue: attr.BinaryValue,
			}
		default:
			return nil, errors.Newf("attribute %q: unsupported data type %q", name, attr.DataType)
		}
	}

	return out, nil
}

func (a Attributes) toSQS() (map[string]sqstypes.MessageAttributeValue, error) {
	if len(a) == 0 {
		return nil, nil
	}

	out := make(map[string]sqstypes.MessageAttributeValue, len(a))
	for name, attr := range a {
		switch attr.DataType {
		case AttributeString, AttributeNumber:
			out[name] = sqstypes.MessageAttributeValue{
				DataType:    aws.String(string(attr.DataType)),
				StringValue: aws.String(attr.StringValue),
			}
		case AttributeBinary:
			out[name] = sqstypes.MessageAttributeValue{
				DataType:    aws.String(string(attr.DataType)),
				BinaryValue: attr.BinaryValue,
			}
		default:
			return nil, errors.Newf("attribute %q: data type %q is not supported by SQS", name, attr.DataType)
		}
	}

	return out, nil
}
