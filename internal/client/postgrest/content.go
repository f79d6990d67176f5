package postgrest

import (
	"context"
	"net/url"
)

// queryLimit caps every content query; feeds only render the most recent
// entries.
const queryLimit = "20"

// tagIDs resolves tag names to their numeric identifiers. Names are matched
// case-sensitively. An empty result is not an error: dependent queries
// short-circuit to an empty set rather than running unfiltered.
func (c *Client) tagIDs(ctx context.Context, tagNames []string) ([]int64, error) {
	if len(tagNames) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("tag_name", inStrings(tagNames))
	params.Set("select", "tag_id")

	var rows []tagIDRow
	if err := c.get(ctx, "tag", params, &rows); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.TagID)
	}
	return ids, nil
}

// byTagIDs runs the common tag-filtered list query against table, ordered by
// orderBy (empty for unordered).
func byTagIDs[R any](ctx context.Context, c *Client, table, orderBy string, tags []string) ([]R, error) {
	ids, err := c.tagIDs(ctx, tags)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []R{}, nil
	}

	params := url.Values{}
	params.Set("tag_id", inInts(ids))
	if orderBy != "" {
		params.Set("order", orderBy)
	}
	params.Set("limit", queryLimit)
	params.Set("select", "*")

	var rows []R
	if err := c.get(ctx, table, params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
