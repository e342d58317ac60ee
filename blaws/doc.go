// Package blaws keeps one AWS SDK client per service for the lifetime of a Lambda process.
//
// A [Registry] owns a slot per service. DynamoDB is strict: the client must be set up with [Registry.InitDynamo]
// before [Registry.Dynamo] or [Registry.DynamoDocument] return it. All other services (SNS, SQS, Lambda, S3, SSM
// and Secrets Manager) are created on first use from the base config, which is loaded once with
// [LoadConfig]. Every slot can be replaced with an Init call and cleared with a Reset call; handles that were
// already handed out keep working.
//
// The package-level functions operate on [Default]:
//
//	blaws.InitDynamo(cfg, blaws.OmitEmpty())
//
//	id, err := blaws.Publish(ctx, topicARN, event, blaws.WithSubject("order placed"))
//	id, err = blaws.Send(ctx, queueURL, job, blaws.WithDelay(5*time.Second))
//	res, err := blaws.InvokeSync[Result](ctx, "resize-image", req)
//
// Payloads are always encoded as JSON. A failure reported by an invoked function is returned as a
// [*FunctionError] carrying the reported marker, e.g. "Unhandled".
package blaws
