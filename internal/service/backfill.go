package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
)

// MaxBackfillPageSize is the largest page BackfillAliases will request.
const MaxBackfillPageSize = 1000

// BackfillReport counts the work done by BackfillAliases.
type BackfillReport struct {
	Foods   int `json:"foods"`
	Aliases int `json:"aliases"`
	Pages   int `json:"pages"`
}

// BackfillAliases pages through the catalog by id and writes the alias set of
// every food. Alias creation skips duplicates, so a partially completed run
// can simply be started again. Cancellation stops before the next store call.
func (s *Service) BackfillAliases(ctx context.Context, pageSize int) (BackfillReport, error) {
	if pageSize <= 0 || pageSize > MaxBackfillPageSize {
		return BackfillReport{}, invalid("page_size", "must be between 1 and %d, got %d", MaxBackfillPageSize, pageSize)
	}

	var report BackfillReport
	after := ""
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		foods, err := s.q.ListFoodsPaged(ctx, db.ListFoodsPagedParams{After: after, Limit: int32(pageSize)})
		if err != nil {
			return report, fmt.Errorf("list foods after %q: %w", after, err)
		}
		if len(foods) == 0 {
			break
		}
		report.Pages++

		for _, f := range foods {
			for _, alias := range AliasSet(f.Name, f.CategoryID.String) {
				if err := ctx.Err(); err != nil {
					return report, err
				}
				if err := s.q.CreateFoodAlias(ctx, db.CreateFoodAliasParams{FoodID: f.ID, Alias: alias}); err != nil {
					return report, fmt.Errorf("create alias %q for food %s: %w", alias, f.ID, err)
				}
				report.Aliases++
			}
			report.Foods++
		}

		after = foods[len(foods)-1].ID
		if len(foods) < pageSize {
			break
		}
	}

	slog.Info("alias backfill complete", "foods", report.Foods, "aliases", report.Aliases, "pages", report.Pages)
	return report, nil
}
