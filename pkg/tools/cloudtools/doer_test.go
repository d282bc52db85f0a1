package cloudtools

import (
	"context"
	"net/url"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

// recordedCall captures one request dispatched through the fake client.
type recordedCall struct {
	Method string
	Path   string
	Body   any
	Query  url.Values
}

// fakeDoer stands in for the cloud client in tool tests. Results are
// consumed in order; the last one repeats once the queue runs out.
type fakeDoer struct {
	calls   []recordedCall
	results []*cloud.Result
}

func (f *fakeDoer) Do(_ context.Context, method, path string, body any, query url.Values) *cloud.Result {
	f.calls = append(f.calls, recordedCall{Method: method, Path: path, Body: body, Query: query})

	if len(f.results) == 0 {
		return &cloud.Result{Success: true, StatusCode: 200}
	}
	result := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return result
}

func okResult(data any) *cloud.Result {
	return &cloud.Result{Success: true, StatusCode: 200, Data: data}
}

func failResult(status int, message string) *cloud.Result {
	return &cloud.Result{Success: false, StatusCode: status, Error: message}
}
