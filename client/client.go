package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// ErrSessionExpired is returned when the server answers 401. The persisted
// session is evicted before this is returned; the caller must log in again.
var ErrSessionExpired = errors.New("session expired")

// RequestError carries the server's envelope message for a failed request.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the admin API with the session's bearer token.
type Client struct {
	http    *resty.Client
	session *Session
}

func New(baseURL string, session *Session) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token, ok := session.Token(); ok {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			if err := session.Clear(); err != nil {
				return err
			}
			return ErrSessionExpired
		}
		return nil
	})

	return &Client{http: httpClient, session: session}
}

type loginResult struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token and persists it in the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/login")
	if err != nil {
		return err
	}

	var result loginResult
	if err := decode(resp, &result); err != nil {
		return err
	}
	return c.session.SetToken(result.Token)
}

// Collection is a typed view over one /admin resource.
type Collection[T any] struct {
	client   *Client
	resource string
}

func NewCollection[T any](c *Client, resource string) Collection[T] {
	return Collection[T]{client: c, resource: resource}
}

func (col Collection[T]) List(ctx context.Context, query map[string]string) ([]T, error) {
	req := col.client.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get("/admin/" + col.resource)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := decode(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (col Collection[T]) Get(ctx context.Context, id uint) (T, error) {
	var item T

	resp, err := col.client.http.R().SetContext(ctx).Get(col.itemPath(id))
	if err != nil {
		return item, err
	}

	err = decode(resp, &item)
	return item, err
}

func (col Collection[T]) Create(ctx context.Context, body any) (T, error) {
	var item T

	resp, err := col.client.http.R().SetContext(ctx).SetBody(body).Post("/admin/" + col.resource)
	if err != nil {
		return item, err
	}

	err = decode(resp, &item)
	return item, err
}

func (col Collection[T]) Update(ctx context.Context, id uint, body any) (T, error) {
	var item T

	resp, err := col.client.http.R().SetContext(ctx).SetBody(body).Put(col.itemPath(id))
	if err != nil {
		return item, err
	}

	err = decode(resp, &item)
	return item, err
}

func (col Collection[T]) Delete(ctx context.Context, id uint) error {
	resp, err := col.client.http.R().SetContext(ctx).Delete(col.itemPath(id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func (col Collection[T]) itemPath(id uint) string {
	return "/admin/" + col.resource + "/" + strconv.FormatUint(uint64(id), 10)
}

// decode unpacks the {status,message,data} envelope, surfacing the server's
// message on failure and falling back to a generic one.
func decode(resp *resty.Response, out any) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if !resp.IsSuccess() {
			return &RequestError{StatusCode: resp.StatusCode(), Message: "request failed"}
		}
		return err
	}

	if !resp.IsSuccess() || !env.Status {
		message := env.Message
		if message == "" {
			message = "request failed"
		}
		return &RequestError{StatusCode: resp.StatusCode(), Message: message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
