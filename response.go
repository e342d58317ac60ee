package blambda

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/samber/lo"
)

// Headers holds response headers. Values are expected to be strings, numbers or booleans.
type Headers map[string]any

// Response is the envelope an API Gateway proxy integration expects from a function.
type Response struct {
	StatusCode int     `json:"statusCode"`
	Headers    Headers `json:"headers"`
	Body       string  `json:"body"`
}

// NewResponse serializes body as JSON and wraps it in a response envelope. A nil headers map results in an empty
// one. Serialization errors are returned as-is.
func NewResponse(statusCode int, body any, headers Headers) (Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return Response{}, err
	}

	if headers == nil {
		headers = Headers{}
	}

	return Response{StatusCode: statusCode, Headers: headers, Body: string(data)}, nil
}

// OK creates a 200 response.
func OK(body any, headers Headers) (Response, error) {
	return NewResponse(http.StatusOK, body, headers)
}

// Created creates a 201 response.
func Created(body any, headers Headers) (Response, error) {
	return NewResponse(http.StatusCreated, body, headers)
}

// NoContent creates a 204 response. Unlike the other shorthands it does not serialize a body: a 204 carries
// none, so the body is always the empty string rather than the JSON of nil.
func NoContent(headers Headers) Response {
	if headers == nil {
		headers = Headers{}
	}

	return Response{StatusCode: http.StatusNoContent, Headers: headers}
}

// BadRequest creates a 400 response with body {"message": message}. An empty message defaults to "Bad Request".
func BadRequest(message string, headers Headers) Response {
	return messageResponse(http.StatusBadRequest, message, headers)
}

// NotFound creates a 404 response with body {"message": message}. An empty message defaults to "Not Found".
func NotFound(message string, headers Headers) Response {
	return messageResponse(http.StatusNotFound, message, headers)
}

// InternalServerError creates a 500 response with body {"message": message}. An empty message defaults to
// "Internal Server Error".
func InternalServerError(message string, headers Headers) Response {
	return messageResponse(http.StatusInternalServerError, message, headers)
}

type messageBody struct {
	Message string `json:"message"`
}

func messageResponse(statusCode int, message string, headers Headers) Response {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	// a struct with a single string field always serializes
	return lo.Must(NewResponse(statusCode, messageBody{Message: message}, headers))
}

// Proxy converts the envelope into the aws-lambda-go type for REST API (v1) proxy integrations.
func (r Response) Proxy() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.stringHeaders(),
		Body:       r.Body,
	}
}

// ProxyV2 converts the envelope into the aws-lambda-go type for HTTP API (v2) integrations.
func (r Response) ProxyV2() events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: r.StatusCode,
		Headers:    r.stringHeaders(),
		Body:       r.Body,
	}
}

func (r Response) stringHeaders() map[string]string {
	return lo.MapValues(r.Headers, func(v any, _ string) string {
		return fmt.Sprint(v)
	})
}
