package aecdm

import "context"

// paginationInput builds the pagination argument for one request. The first
// request carries only the limit, subsequent requests the cursor as well.
func paginationInput(cursor string, limit int) map[string]any {
	if cursor == "" {
		return map[string]any{"limit": limit}
	}
	return map[string]any{"cursor": cursor, "limit": limit}
}

// forEachPage drives a cursor loop. fetch executes one request using the
// given pagination input and reports the cursor the API returned along with
// the number of results in the page.
//
// The loop stops when the response carries no cursor, repeats the previous
// cursor, or the page is empty. The repeated-cursor check guards against an
// API that keeps echoing the same cursor back.
func forEachPage(ctx context.Context, limit int, fetch func(ctx context.Context, pagination map[string]any) (cursor string, resultCount int, err error)) error {
	cursor := ""
	for {
		next, n, err := fetch(ctx, paginationInput(cursor, limit))
		if err != nil {
			return err
		}
		if next == "" || next == cursor || n == 0 {
			return nil
		}
		cursor = next
	}
}
