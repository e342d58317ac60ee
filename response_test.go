package blambda_test

import (
	"testing"

	"github.com/advdv/blambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	resp, err := blambda.NewResponse(200, map[string]int{"a": 1}, nil)
	require.NoError(t, err)
	require.Equal(t, blambda.Response{StatusCode: 200, Headers: blambda.Headers{}, Body: `{"a":1}`}, resp)
}

func TestNewResponseSerializationError(t *testing.T) {
	_, err := blambda.NewResponse(200, make(chan int), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestShorthands(t *testing.T) {
	tests := []struct {
		name string
		resp blambda.Response
		want blambda.Response
	}{
		{
			name: "not found default",
			resp: blambda.NotFound("", nil),
			want: blambda.Response{StatusCode: 404, Headers: blambda.Headers{}, Body: `{"message":"Not Found"}`},
		},
		{
			name: "bad request with headers",
			resp: blambda.BadRequest("x", blambda.Headers{"H": "v"}),
			want: blambda.Response{StatusCode: 400, Headers: blambda.Headers{"H": "v"}, Body: `{"message":"x"}`},
		},
		{
			name: "bad request default",
			resp: blambda.BadRequest("", nil),
			want: blambda.Response{StatusCode: 400, Headers: blambda.Headers{}, Body: `{"message":"Bad Request"}`},
		},
		{
			name: "internal server error default",
			resp: blambda.InternalServerError("", nil),
			want: blambda.Response{
				StatusCode: 500, Headers: blambda.Headers{},
				Body: `{"message":"Internal Server Error"}`,
			},
		},
		{
			name: "no content",
			resp: blambda.NoContent(nil),
			want: blambda.Response{StatusCode: 204, Headers: blambda.Headers{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.resp)
		})
	}
}

func TestOKAndCreated(t *testing.T) {
	ok, err := blambda.OK([]string{"a"}, blambda.Headers{"X-Count": 1})
	require.NoError(t, err)
	require.Equal(t, 200, ok.StatusCode)
	require.Equal(t, `["a"]`, ok.Body)

	created, err := blambda.Created(map[string]string{"id": "1"}, nil)
	require.NoError(t, err)
	require.Equal(t, 201, created.StatusCode)
	require.Equal(t, `{"id":"1"}`, created.Body)
}

func TestProxyConversion(t *testing.T) {
	resp := blambda.BadRequest("x", blambda.Headers{"X-Num": 3, "X-Bool": true, "X-Str": "s"})

	v1 := resp.Proxy()
	require.Equal(t, 400, v1.StatusCode)
	require.Equal(t, map[string]string{"X-Num": "3", "X-Bool": "true", "X-Str": "s"}, v1.Headers)
	require.Equal(t, `{"message":"x"}`, v1.Body)

	v2 := resp.ProxyV2()
	require.Equal(t, v1.Headers, v2.Headers)
	require.Equal(t, v1.Body, v2.Body)
}
