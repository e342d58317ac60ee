// Package example implements a small order intake function on top of every blambda package.
package example

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/advdv/blambda"
	"github.com/advdv/blambda/blaws"
	"github.com/advdv/blambda/bllog"
	"github.com/aws/aws-lambda-go/events"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Order is the item stored per order.
type Order struct {
	ID       string `json:"id" dynamodbav:"pk"`
	Item     string `json:"item" dynamodbav:"item"`
	Quantity int    `json:"quantity" dynamodbav:"quantity"`
	Total    int    `json:"total" dynamodbav:"total"`
}

// Quote is the response of the pricing function.
type Quote struct {
	Total int `json:"total"`
}

// Orders handles the order routes.
type Orders struct {
	env *Env
	reg *blaws.Registry
}

// NewOrders inits the handlers.
func NewOrders(env *Env, reg *blaws.Registry) *Orders {
	return &Orders{env: env, reg: reg}
}

// Route dispatches on the API Gateway resource.
func (o *Orders) Route(ctx context.Context, req events.APIGatewayProxyRequest) (blambda.Response, error) {
	switch req.HTTPMethod + " " + req.Resource {
	case "POST /orders":
		return o.Create(ctx, req)
	case "GET /orders/{id}":
		return o.Get(ctx, req)
	default:
		return blambda.NotFound("", nil), nil
	}
}

// Create prices, stores and announces a new order.
func (o *Orders) Create(ctx context.Context, req events.APIGatewayProxyRequest) (blambda.Response, error) {
	var order Order
	if err := json.Unmarshal([]byte(req.Body), &order); err != nil {
		return blambda.Response{}, blambda.NewError(blambda.CodeBadRequest, errors.Wrap(err, "decode order"))
	}

	if order.ID == "" || order.Quantity < 1 {
		return blambda.BadRequest("order needs an id and a positive quantity", nil), nil
	}

	quote, err := blaws.Invoke[Quote](ctx, o.reg, o.env.PricingFunction, order)
	switch {
	case err != nil:
		return blambda.Response{}, blambda.NewError(blambda.CodeBadGateway, err)
	case quote == nil:
		return blambda.Response{}, blambda.NewError(blambda.CodeBadGateway, errors.New("pricing returned no quote"))
	}

	order.Total = quote.Total

	doc, err := o.reg.DynamoDocument()
	if err != nil {
		return blambda.Response{}, err
	}

	if err := doc.Put(ctx, o.env.TableName, order); err != nil {
		return blambda.Response{}, err
	}

	msgID, err := o.reg.Publish(ctx, o.env.TopicARN, order,
		blaws.WithSubject("order created"),
		blaws.WithAttributes(blaws.Attributes{
			"item":     blaws.StringAttribute(order.Item),
			"quantity": blaws.NumberAttribute(strconv.Itoa(order.Quantity)),
		}))
	if err != nil {
		return blambda.Response{}, err
	}

	if _, err := o.reg.Send(ctx, o.env.QueueURL, order, blaws.WithAttributes(blaws.Attributes{
		"source": blaws.StringAttribute("orders"),
	})); err != nil {
		return blambda.Response{}, err
	}

	bllog.Log(ctx).Info("order created",
		zap.String("order_id", order.ID),
		zap.String("message_id", msgID),
		zap.Int("total", order.Total))

	return blambda.Created(order, blambda.Headers{"Location": "/orders/" + order.ID})
}

// Get returns a stored order.
func (o *Orders) Get(ctx context.Context, req events.APIGatewayProxyRequest) (blambda.Response, error) {
	doc, err := o.reg.DynamoDocument()
	if err != nil {
		return blambda.Response{}, err
	}

	var order Order
	found, err := doc.Get(ctx, o.env.TableName, struct {
		ID string `dynamodbav:"pk"`
	}{req.PathParameters["id"]}, &order)
	if err != nil {
		return blambda.Response{}, err
	}

	if !found {
		return blambda.NotFound("order not found", nil), nil
	}

	return blambda.OK(order, nil)
}
