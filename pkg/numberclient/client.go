// Package numberclient talks to the standalone WhatsApp number service.
package numberclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNotSet       = errors.New("no number has been set")
	ErrUnauthorized = errors.New("admin password rejected")
)

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{http: resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")}
}

type numberResponse struct {
	Number string `json:"number"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) Get(ctx context.Context) (string, error) {
	var out numberResponse
	var fail errorResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).SetError(&fail).Get("/whatsapp")
	if err != nil {
		return "", fmt.Errorf("number service: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return out.Number, nil
	case http.StatusNotFound:
		return "", ErrNotSet
	default:
		return "", fmt.Errorf("number service: %s (status %d)", fail.Error, resp.StatusCode())
	}
}

func (c *Client) Set(ctx context.Context, number, password string) error {
	var fail errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"number": number, "password": password}).
		SetError(&fail).
		Post("/whatsapp")
	if err != nil {
		return fmt.Errorf("number service: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("number service: %s (status %d)", fail.Error, resp.StatusCode())
	}
}
