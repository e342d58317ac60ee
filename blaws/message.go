package blaws

import (
	"encoding/json"
	"time"
)

// MessageOption configures a published or sent message.
type MessageOption func(*messageOptions)

type messageOptions struct {
	subject    string
	groupID    string
	dedupID    string
	delay      time.Duration
	attributes Attributes
}

// WithSubject sets the subject of an SNS message. It has no effect on SQS.
func WithSubject(subject string) MessageOption {
	return func(o *messageOptions) { o.subject = subject }
}

// WithMessageGroupID sets the group of a message sent to a FIFO topic or queue.
func WithMessageGroupID(id string) MessageOption {
	return func(o *messageOptions) { o.groupID = id }
}

// WithDeduplicationID sets the deduplication id of a message sent to a FIFO topic or queue.
func WithDeduplicationID(id string) MessageOption {
	return func(o *messageOptions) { o.dedupID = id }
}

// WithDelay postpones delivery of an SQS message. It is truncated to whole seconds and has no effect on SNS.
func WithDelay(d time.Duration) MessageOption {
	return func(o *messageOptions) { o.delay = d }
}

// WithAttributes adds message attributes. Later calls overwrite attributes with the same name.
func WithAttributes(attrs Attributes) MessageOption {
	return func(o *messageOptions) {
		if o.attributes == nil {
			o.attributes = Attributes{}
		}

		for name, attr := range attrs {
			o.attributes[name] = attr
		}
	}
}

func newMessageOptions(opts []MessageOption) messageOptions {
	var o messageOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// encodePayload serializes a message body as JSON. Encoding errors are returned unchanged.
func encodePayload(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
