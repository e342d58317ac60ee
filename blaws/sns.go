package blaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// InitSNS creates the SNS client from cfg, replacing any previous one.
func (r *Registry) InitSNS(cfg aws.Config, optFns ...func(*sns.Options)) *sns.Client {
	return r.sns.set(sns.NewFromConfig(cfg, optFns...))
}

// SNS returns the SNS client, creating it from the base config when absent.
func (r *Registry) SNS(ctx context.Context) (*sns.Client, error) {
	return onDemand(ctx, r, &r.sns, func(cfg aws.Config) *sns.Client {
		return sns.NewFromConfig(cfg)
	})
}

// ResetSNS drops the SNS client.
func (r *Registry) ResetSNS() { r.sns.reset() }

// Publish sends payload as JSON to the topic and returns the message id SNS assigned, or an empty string when
// the response carries none.
func (r *Registry) Publish(ctx context.Context, topicARN string, payload any, opts ...MessageOption) (string, error) {
	client, err := r.SNS(ctx)
	if err != nil {
		return "", err
	}

	msg, err := encodePayload(payload)
	if err != nil {
		return "", err
	}

	o := newMessageOptions(opts)

	attrs, err := o.attributes.toSNS()
	if err != nil {
		return "", err
	}

	in := &sns.PublishInput{
		TopicArn:          aws.String(topicARN),
		Message:           aws.String(msg),
		MessageAttributes: attrs,
	}

	if o.subject != "" {
		in.Subject = aws.String(o.subject)
	}

	if o.groupID != "" {
		in.MessageGroupId = aws.String(o.groupID)
	}

	if o.dedupID != "" {
		in.MessageDeduplicationId = aws.String(o.dedupID)
	}

	out, err := client.Publish(ctx, in)
	if err != nil {
		return "", errors.Wrapf(err, "publish to %q", topicARN)
	}

	return lo.FromPtr(out.MessageId), nil
}
