package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/garciapp2/gameaccounts/internal/domain"
)

// searchRoute maps a filter kind onto its endpoint segment and query
// parameter name, e.g. min-price -> /search/min-price?minPrice=.
type searchRoute struct {
	segment string
	param   string
}

// entityClient implements domain.Gateway for one entity type. T is
// the read model, D the write draft.
type entityClient[T any, D any] struct {
	client *Client

	// path is the collection segment, e.g. "game-accounts".
	path string

	searches         map[domain.FilterKind]searchRoute
	defaultSort      string
	defaultDirection string
}

func (e *entityClient[T, D]) List(ctx context.Context) ([]T, error) {
	op := e.path + " list"
	var items []T
	err := e.client.send(ctx, op, http.MethodGet, e.client.url(e.path), nil, http.StatusOK, &items)
	return items, err
}

func (e *entityClient[T, D]) ListPage(ctx context.Context, page domain.PageRequest) (domain.Page[T], error) {
	op := e.path + " list paged"
	query := e.pageQuery(page)

	var result domain.Page[T]
	u := e.client.url(e.path) + "/paged?" + query.Encode()
	err := e.client.send(ctx, op, http.MethodGet, u, nil, http.StatusOK, &result)
	return result, err
}

func (e *entityClient[T, D]) Search(ctx context.Context, kind domain.FilterKind, value string, page domain.PageRequest) (domain.Page[T], error) {
	route, ok := e.searches[kind]
	if !ok {
		return domain.Page[T]{}, domain.NewUnsupportedFilterError(e.path, kind)
	}

	op := fmt.Sprintf("%s search by %s", e.path, kind)
	query := e.pageQuery(page)
	query.Set(route.param, value)

	var result domain.Page[T]
	u := e.client.url(e.path) + "/search/" + route.segment + "?" + query.Encode()
	err := e.client.send(ctx, op, http.MethodGet, u, nil, http.StatusOK, &result)
	return result, err
}

func (e *entityClient[T, D]) GetByID(ctx context.Context, id int64) (T, error) {
	op := fmt.Sprintf("%s get %d", e.path, id)
	var item T
	err := e.client.send(ctx, op, http.MethodGet, e.itemURL(id), nil, http.StatusOK, &item)
	if domain.IsNotFound(err) {
		return item, domain.NewNotFoundError(e.path, id)
	}
	return item, err
}

func (e *entityClient[T, D]) Create(ctx context.Context, draft D) (T, error) {
	op := e.path + " create"
	var item T
	err := e.client.send(ctx, op, http.MethodPost, e.client.url(e.path), draft, http.StatusCreated, &item)
	return item, err
}

func (e *entityClient[T, D]) Update(ctx context.Context, id int64, draft D) (T, error) {
	op := fmt.Sprintf("%s update %d", e.path, id)
	var item T
	err := e.client.send(ctx, op, http.MethodPut, e.itemURL(id), draft, http.StatusOK, &item)
	if domain.IsNotFound(err) {
		return item, domain.NewNotFoundError(e.path, id)
	}
	return item, err
}

func (e *entityClient[T, D]) Delete(ctx context.Context, id int64) error {
	op := fmt.Sprintf("%s delete %d", e.path, id)
	err := e.client.send(ctx, op, http.MethodDelete, e.itemURL(id), nil, http.StatusNoContent, nil)
	if domain.IsNotFound(err) {
		return domain.NewNotFoundError(e.path, id)
	}
	return err
}

func (e *entityClient[T, D]) itemURL(id int64) string {
	return e.client.url(e.path) + "/" + strconv.FormatInt(id, 10)
}

func (e *entityClient[T, D]) pageQuery(page domain.PageRequest) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page.Page))
	query.Set("size", strconv.Itoa(page.Size))

	sort := page.Sort
	if sort == "" {
		sort = e.defaultSort
	}
	direction := page.Direction
	if direction == "" {
		direction = e.defaultDirection
	}
	if sort != "" {
		query.Set("sort", sort)
		query.Set("direction", direction)
	}
	return query
}
