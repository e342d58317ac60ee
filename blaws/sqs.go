package blaws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// InitSQS creates the SQS client from cfg, replacing any previous one.
func (r *Registry) InitSQS(cfg aws.Config, optFns ...func(*sqs.Options)) *sqs.Client {
	return r.sqs.set(sqs.NewFromConfig(cfg, optFns...))
}

// SQS returns the SQS client, creating it from the base config when absent.
func (r *Registry) SQS(ctx context.Context) (*sqs.Client, error) {
	return onDemand(ctx, r, &r.sqs, func(cfg aws.Config) *sqs.Client {
		return sqs.NewFromConfig(cfg)
	})
}

// ResetSQS drops the SQS client.
func (r *Registry) ResetSQS() { r.sqs.reset() }

// Send enqueues payload as JSON and returns the message id SQS assigned, or an empty string when the response
// carries none. String.Array attributes are rejected before anything is sent.
func (r *Registry) Send(ctx context.Context, queueURL string, payload any, opts ...MessageOption) (string, error) {
	client, err := r.SQS(ctx)
	if err != nil {
		return "", err
	}

	body, err := encodePayload(payload)
	if err != nil {
		return "", err
	}

	o := newMessageOptions(opts)

	attrs, err := o.attributes.toSQS()
	if err != nil {
		return "", err
	}

	in := &sqs.SendMessageInput{
		QueueUrl:          aws.String(queueURL),
		MessageBody:       aws.String(body),
		MessageAttributes: attrs,
		DelaySeconds:      int32(o.delay / time.Second),
	}

	if o.groupID != "" {
		in.MessageGroupId = aws.String(o.groupID)
	}

	if o.dedupID != "" {
		in.MessageDeduplicationId = aws.String(o.dedupID)
	}

	out, err := client.SendMessage(ctx, in)
	if err != nil {
		return "", errors.Wrapf(err, "send to %q", queueURL)
	}

	return lo.FromPtr(out.MessageId), nil
}
