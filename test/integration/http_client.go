//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives the router in-process with an optional bearer token.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{router: router, token: token}
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) DecodeJSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.do(http.MethodGet, path, nil)
}

func (c *HTTPClient) POST(path string, body interface{}) (*Response, error) {
	return c.do(http.MethodPost, path, body)
}

func (c *HTTPClient) PUT(path string, body interface{}) (*Response, error) {
	return c.do(http.MethodPut, path, body)
}

func (c *HTTPClient) do(method, path string, body interface{}) (*Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	return &Response{StatusCode: rec.Code, Body: rec.Body.Bytes()}, nil
}
