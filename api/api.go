package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/sendpost/sendpost-go/errors"
	"github.com/sendpost/sendpost-go/logger"
	"github.com/sendpost/sendpost-go/parsers"
	"github.com/sendpost/sendpost-go/rate"
)

const (
	DefaultBaseUrl = "https://api.sendpost.io/api/v1"

	// HeaderAccountApiKey authenticates account-level resources:
	// sub-accounts, webhooks, IPs, IP pools, messages and stats.
	HeaderAccountApiKey = "X-Account-ApiKey"
	// HeaderSubAccountApiKey authenticates sub-account resources:
	// domains and email sending.
	HeaderSubAccountApiKey = "X-SubAccount-ApiKey"
)

// Backend is the HTTP plumbing shared by every resource API.
type Backend struct {
	BaseUrl    string
	HttpClient *http.Client
	Limiter    rate.Limiter
	Logger     logger.Logger
}

func (b Backend) withDefaults() Backend {
	if b.BaseUrl == "" {
		b.BaseUrl = DefaultBaseUrl
	}
	if b.HttpClient == nil {
		b.HttpClient = &http.Client{}
	}
	if b.Limiter == nil {
		b.Limiter = rate.NoopLimiter{}
	}
	if b.Logger == nil {
		b.Logger = logger.Noop{}
	}
	return b
}

type apiClient struct {
	authHeader string
	apiKey     string
	baseUrl    string
	httpClient *http.Client
	limiter    rate.Limiter
	logger     logger.Logger
}

func newApiClient(
	authHeader string,
	apiKey string,
	backend Backend,
) *apiClient {
	backend = backend.withDefaults()
	return &apiClient{
		authHeader: authHeader,
		apiKey:     apiKey,
		baseUrl:    backend.BaseUrl,
		httpClient: backend.HttpClient,
		limiter:    backend.Limiter,
		logger:     backend.Logger,
	}
}

func (c *apiClient) getJson(path string, query url.Values, resData any) *errors.ApiError {
	return c.sendJson(http.MethodGet, withQuery(path, query), nil, resData)
}

func (c *apiClient) postJson(path string, reqData, resData any) *errors.ApiError {
	return c.sendJson(http.MethodPost, path, reqData, resData)
}

func (c *apiClient) sendJson(
	httpMethod string,
	path string,
	reqData any,
	resData any,
) *errors.ApiError {
	body, err := c.send(httpMethod, path, reqData)
	if err != nil {
		if msg, ok := parsers.ErrorMessageFromBody(err.Body); ok {
			err.SendPostMessage = msg
		}
		return err
	}
	jsonErr := json.Unmarshal(body, resData)
	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

func (c *apiClient) send(
	httpMethod string,
	path string,
	reqData any,
) ([]byte, *errors.ApiError) {
	endpoint := c.baseUrl + "/" + path

	var err error
	var req *http.Request

	if reqData != nil {
		data, jsonErr := json.Marshal(reqData)
		if jsonErr != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		req, err = http.NewRequest(
			httpMethod, endpoint, bytes.NewBuffer(data),
		)
	} else {
		req, err = http.NewRequest(
			httpMethod, endpoint, nil,
		)
	}

	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add(c.authHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.limiter.Limit(req)
	c.logger.Debugf("sendpost: %s %s", httpMethod, path)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var body []byte
		if res.Body != nil {
			body, _ = io.ReadAll(res.Body)
			defer func() { _ = res.Body.Close() }()
		}
		c.logger.Warnf("sendpost: %s %s returned %d", httpMethod, path, res.StatusCode)
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
	}

	body, err := io.ReadAll(res.Body)
	defer func() { _ = res.Body.Close() }()
	if err != nil {
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	return body, nil
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
