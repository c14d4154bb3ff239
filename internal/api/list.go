package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"ecokosova-dashboard/internal/models"
)

// maxPages bounds a full-collection walk over paged endpoints
const maxPages = 200

// getList accepts either a bare JSON array or a paged envelope
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, *models.Page[T], error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, query, &raw); err != nil {
		return nil, nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, decodeError(path, err)
		}
		return items, nil, nil
	}

	var page models.Page[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, nil, decodeError(path, err)
	}
	return page.Content, &page, nil
}

// getAll walks every page of a paged list endpoint
func getAll[T any](ctx context.Context, c *Client, path string, pageSize int) ([]T, error) {
	var all []T
	for p := 0; p < maxPages; p++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(p))
		q.Set("size", strconv.Itoa(pageSize))

		items, page, err := getList[T](ctx, c, path, q)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if page == nil || page.Last || len(items) == 0 || p+1 >= page.TotalPages {
			return all, nil
		}
	}
	return all, nil
}

func decodeError(path string, err error) *Error {
	return &Error{
		Message:    "Përgjigje e pavlefshme nga serveri",
		StatusCode: 200,
		Err:        fmt.Errorf("decode %s: %w", path, err),
	}
}
