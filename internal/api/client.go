package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Alturino/inventory/internal/log"
	inOtel "github.com/Alturino/inventory/internal/otel"
	"github.com/Alturino/inventory/pkg/request"
	"github.com/Alturino/inventory/pkg/response"
)

// RequestError is any non-2xx answer from the backend. The client does not
// distinguish 4xx from 5xx; every failed mutation surfaces as the same
// generic notification upstream.
type RequestError struct {
	Method     string
	Path       string
	Body       string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf(
		"request %s %s failed with statusCode=%d body=%s",
		e.Method,
		e.Path,
		e.StatusCode,
		e.Body,
	)
}

// Client wraps the product REST resource. One shared transport, fixed base
// url, json content type. No retry and no timeout override.
type Client struct {
	baseUrl string
	http    *http.Client
}

func NewClient(baseUrl string) *Client {
	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (client *Client) ListProducts(c context.Context) ([]response.Product, error) {
	c, span := inOtel.Tracer.Start(c, "Client ListProducts")
	defer span.End()

	body, err := client.do(c, http.MethodGet, "/products", nil)
	if err != nil {
		err = fmt.Errorf("failed listing products with error=%w", err)
		inOtel.RecordError(err, span)
		return nil, err
	}

	products := []response.Product{}
	if err := json.Unmarshal(body, &products); err != nil {
		err = fmt.Errorf("failed decoding products with error=%w", err)
		inOtel.RecordError(err, span)
		return nil, err
	}
	return products, nil
}

func (client *Client) CreateProduct(
	c context.Context,
	param request.CreateProduct,
) (json.RawMessage, error) {
	c, span := inOtel.Tracer.Start(c, "Client CreateProduct")
	defer span.End()

	body, err := client.do(c, http.MethodPost, "/products", param)
	if err != nil {
		err = fmt.Errorf("failed creating product with error=%w", err)
		inOtel.RecordError(err, span)
		return nil, err
	}
	return body, nil
}

func (client *Client) UpdateProduct(
	c context.Context,
	id int64,
	param request.CreateProduct,
) (json.RawMessage, error) {
	c, span := inOtel.Tracer.Start(c, "Client UpdateProduct")
	defer span.End()

	body, err := client.do(c, http.MethodPut, fmt.Sprintf("/products/%d", id), param)
	if err != nil {
		err = fmt.Errorf("failed updating product with id=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		return nil, err
	}
	return body, nil
}

func (client *Client) DeleteProduct(c context.Context, id int64) error {
	c, span := inOtel.Tracer.Start(c, "Client DeleteProduct")
	defer span.End()

	_, err := client.do(c, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
	if err != nil {
		err = fmt.Errorf("failed deleting product with id=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		return err
	}
	return nil
}

func (client *Client) do(
	c context.Context,
	method string,
	path string,
	body interface{},
) (json.RawMessage, error) {
	requestId := uuid.NewString()
	c = log.AttachRequestIDToContext(c, requestId)
	url := client.baseUrl + path

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "Client do").
		Str(log.KeyRequestID, requestId).
		Str(log.KeyHTTPMethod, method).
		Str(log.KeyRequestURL, url).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "encoding request body").Logger()
	var reader io.Reader
	if body != nil {
		logger.Trace().Msg("encoding request body")
		encoded, err := json.Marshal(body)
		if err != nil {
			err = fmt.Errorf("failed encoding request body with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		reader = bytes.NewReader(encoded)
		logger.Trace().Msg("encoded request body")
	}

	logger = logger.With().Str(log.KeyProcess, "sending request").Logger()
	logger.Trace().Msg("sending request")
	req, err := http.NewRequestWithContext(c, method, url, reader)
	if err != nil {
		err = fmt.Errorf("failed creating request with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestId)

	res, err := client.http.Do(req)
	if err != nil {
		err = fmt.Errorf("failed sending request with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	defer res.Body.Close()
	logger = logger.With().Int(log.KeyStatusCode, res.StatusCode).Logger()
	logger.Trace().Msg("received response")

	logger = logger.With().Str(log.KeyProcess, "reading response body").Logger()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		err = fmt.Errorf("failed reading response body with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		err := &RequestError{
			Method:     method,
			Path:       path,
			Body:       string(resBody),
			StatusCode: res.StatusCode,
		}
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	logger.Debug().Msg("request succeeded")
	return resBody, nil
}
