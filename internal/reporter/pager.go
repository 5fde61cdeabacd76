// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reporter

import (
	"context"

	"github.com/pdiddy/grant-reporter/internal/criteria"
)

// FetchFirst issues exactly one page request at the given page size and
// returns the server-reported total alongside the (possibly partial)
// result set. Used for quick previews where one page is enough.
func (c *Client) FetchFirst(ctx context.Context, crit criteria.SearchCriteria, fields []string, limit int) (int, ResultSet, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	page, total, err := c.fetchPage(ctx, crit, fields, limit, 0)
	if err != nil {
		return 0, ResultSet{}, err
	}

	if c.Progress != nil {
		c.Progress.Page(1, 0, total)
	}

	return total, ResultSet{Meta: page.Meta, Results: page.Results}, nil
}

// FetchAll retrieves every record matching the criteria, walking the
// paged result set at the maximum page size. Pages are requested in
// strictly increasing offset order and appended in arrival order, so
// the accumulated set preserves the upstream's ordering.
//
// Raw record counts drive termination regardless of record shape, so
// the loop always finishes when the server's total is reached. Any page
// failure fails the whole fetch; no partial set is returned.
// fetchAllPageSize is the stride FetchAll pages with. Tests lower it to
// exercise multi-page fetches with small fixtures.
var fetchAllPageSize = MaxPageSize

func (c *Client) FetchAll(ctx context.Context, crit criteria.SearchCriteria, fields []string) (ResultSet, error) {
	limit := fetchAllPageSize
	offset := 0
	pages := 0

	page, total, err := c.fetchPage(ctx, crit, fields, limit, offset)
	if err != nil {
		return ResultSet{}, err
	}
	all := ResultSet{Meta: page.Meta, Results: page.Results}
	pages++
	if c.Progress != nil {
		c.Progress.Page(pages, offset, total)
	}

	for offset+limit < total {
		offset += limit
		page, total, err = c.fetchPage(ctx, crit, fields, limit, offset)
		if err != nil {
			return ResultSet{}, err
		}
		all.Meta = page.Meta
		all.Results = append(all.Results, page.Results...)
		pages++
		if c.Progress != nil {
			c.Progress.Page(pages, offset, total)
		}
	}

	return all, nil
}
