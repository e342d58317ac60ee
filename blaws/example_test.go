package blaws_test

import (
	"context"
	"fmt"

	"github.com/advdv/blambda/blaws"
	"github.com/advdv/blambda/blaws/blawstest"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func ExampleRegistry_Send() {
	reg := blaws.NewRegistry()
	reg.InitSQS(blawstest.Returning(&sqs.SendMessageOutput{MessageId: aws.String("b9a1")}).Config())

	id, err := reg.Send(context.Background(), "https://sqs.eu-west-1.amazonaws.com/123456789012/jobs",
		map[string]string{"job": "resize"},
		blaws.WithAttributes(blaws.Attributes{"priority": blaws.NumberAttribute("1")}))
	if err != nil {
		panic(err)
	}

	fmt.Println(id)
	// Output: b9a1
}

func ExampleFunctionError() {
	reg := blaws.NewRegistry()
	reg.InitLambda(blawstest.Returning(&lambda.InvokeOutput{
		FunctionError: aws.String("Unhandled"),
		Payload:       []byte(`{"errorMessage":"boom"}`),
	}).Config())

	err := reg.InvokeAsync(context.Background(), "worker", nil)
	fmt.Println(err)
	// Output: function "worker" failed: Unhandled: boom
}
