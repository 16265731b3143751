// Package testutil provides fakes for exercising fetch.Client without
// touching the network: a stub http.RoundTripper that serves canned
// responses for known URLs and a 404 for everything else.
package testutil

import (
	"io/ioutil"
	"net/http"
	"strings"
)

// MapRoundTrip maps request URL (as a string) to a canned *http.Response.
// Requests for URLs not present in Responses get a 404.
type MapRoundTrip struct {
	Responses map[string]*http.Response
}

// RoundTrip implements http.RoundTripper.
func (m *MapRoundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	if res, ok := m.Responses[req.URL.String()]; ok {
		return res, nil
	}
	return Response404(), nil
}

// CancelRequest is a no-op implementing the legacy http.RoundTripper
// cancellation hook some transports still probe for.
func (m *MapRoundTrip) CancelRequest(req *http.Request) {}

// Response200 builds a canned 200 OK response carrying body as its content.
func Response200(body string) *http.Response {
	return &http.Response{
		Status:        "200 OK",
		StatusCode:    200,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"text/html"}},
		Body:          ioutil.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// Response404 builds a canned 404 Not Found response with an empty body.
func Response404() *http.Response {
	return &http.Response{
		Status:        "404 Not Found",
		StatusCode:    404,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"text/html"}},
		Body:          ioutil.NopCloser(strings.NewReader("")),
		ContentLength: 0,
	}
}
