// Package upstream fetches raw product and brand records from the remote catalog.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"catalogproxy/internal/catalog"
)

// Source is anything that can list upstream products and brands.
type Source interface {
	Electronics(ctx context.Context) ([]catalog.Item, error)
	Brands(ctx context.Context) ([]catalog.Item, error)
}

// Client talks to the remote catalog over HTTP. There is no retry; a zero
// Timeout leaves the request unbounded.
type Client struct {
	BaseURL         string
	ElectronicsPath string
	BrandsPath      string
	Timeout         time.Duration
}

func NewClient(baseURL, electronicsPath, brandsPath string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:         strings.TrimRight(baseURL, "/"),
		ElectronicsPath: electronicsPath,
		BrandsPath:      brandsPath,
		Timeout:         timeout,
	}
}

func (c *Client) Electronics(ctx context.Context) ([]catalog.Item, error) {
	return c.list(ctx, c.ElectronicsPath)
}

func (c *Client) Brands(ctx context.Context) ([]catalog.Item, error) {
	return c.list(ctx, c.BrandsPath)
}

func (c *Client) list(ctx context.Context, path string) ([]catalog.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := fiber.Get(c.BaseURL + path)
	a.MaxRedirectsCount(5)
	if c.Timeout > 0 {
		a.Timeout(c.Timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if code < 200 || code > 299 {
		return nil, fmt.Errorf("request failed with status code %d", code)
	}
	return decodeList(body), nil
}

// decodeList turns a response body into items. Anything other than a JSON
// array yields an empty list; array elements that are not objects become
// empty items so the completeness check drops them.
func decodeList(body []byte) []catalog.Item {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return []catalog.Item{}
	}
	arr, ok := raw.([]any)
	if !ok {
		return []catalog.Item{}
	}
	out := make([]catalog.Item, 0, len(arr))
	for _, v := range arr {
		m, ok := v.(map[string]any)
		if !ok {
			m = catalog.Item{}
		}
		out = append(out, m)
	}
	return out
}

// FetchBoth lists products and brands concurrently. Either failure fails the pair.
func FetchBoth(ctx context.Context, src Source) (products, brands []catalog.Item, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = src.Electronics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = src.Brands(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, brands, nil
}
