package webflow

import (
	"context"
	"fmt"
	"log/slog"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// pageFunc fetches one page of a collection at the given offset.
type pageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, Pagination, error)

// fetchAll exhaustively retrieves a paginated collection. The first page's
// reported total is authoritative; fetching continues until that many items
// have accumulated. A short page before the total is reached stops the loop
// and returns the items fetched so far wrapped in bumblebee.ErrIncomplete,
// never a silent truncation. A server that delivers more items than it
// promised, or keeps promising items it never delivers, fails with
// *IntegrityError.
func fetchAll[T any](ctx context.Context, logger *slog.Logger, fetch pageFunc[T]) ([]T, error) {
	var all []T

	items, pg, err := fetch(ctx, 0, PageLimit)
	if err != nil {
		return nil, err
	}
	all = append(all, items...)
	total := pg.Total

	logger.Info("fetch-page", "offset", 0, "count", len(items), "total", total)

	// Total is authoritative even at zero: any items beyond it are an
	// overrun, not a bonus.
	if len(all) > 0 && len(all) > total {
		return nil, overrunError(total, len(all))
	}
	if total <= 0 {
		return all, nil
	}

	// One extra page of slack over the arithmetic minimum.
	maxPages := total/PageLimit + 2

	for page := 1; len(all) < total; page++ {
		if page >= maxPages {
			return nil, &bumblebee.IntegrityError{
				Message:  "pagination total never reached",
				Expected: total,
				Got:      len(all),
			}
		}
		if len(items) < PageLimit && len(all) < total {
			// Server returned a short page with items still outstanding.
			logger.Warn("fetch-page short", "fetched", len(all), "total", total)
			return all, fmt.Errorf("%w: got %d of %d items", bumblebee.ErrIncomplete, len(all), total)
		}

		offset := page * PageLimit
		items, _, err = fetch(ctx, offset, PageLimit)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			logger.Warn("fetch-page empty", "fetched", len(all), "total", total)
			return all, fmt.Errorf("%w: got %d of %d items", bumblebee.ErrIncomplete, len(all), total)
		}
		all = append(all, items...)
		logger.Info("fetch-page", "offset", offset, "count", len(items), "total", total)
		if len(all) > total {
			return nil, overrunError(total, len(all))
		}
	}

	return all, nil
}

// overrunError reports a server that delivered more items than the total it
// promised on the first page.
func overrunError(total, got int) error {
	return &bumblebee.IntegrityError{
		Message:  "pagination overran reported total",
		Expected: total,
		Got:      got,
	}
}
