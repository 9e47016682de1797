package page

import (
	"context"
	"time"

	"github.com/mifimn/portfolio/internal/logging"
	"github.com/mifimn/portfolio/internal/projects"
)

// Lister fetches the raw repository listing for an account.
type Lister interface {
	ListRepos(ctx context.Context, account string) ([]byte, error)
}

// Loader performs the page's single listing read.
type Loader struct {
	lister  Lister
	account string
}

func NewLoader(lister Lister, account string) *Loader {
	return &Loader{lister: lister, account: account}
}

// Load fetches and decodes the listing once. Every failure collapses into an
// empty collection and a log line; there is no retry.
func (l *Loader) Load(ctx context.Context) []projects.Record {
	logger := logging.FromContext(ctx)
	start := time.Now()

	body, err := l.lister.ListRepos(ctx, l.account)
	if err != nil {
		logger.Warn("repository listing unavailable", "account", l.account, "err", err)
		return []projects.Record{}
	}

	records, err := projects.Decode(body)
	if err != nil {
		logger.Warn("repository listing unreadable", "account", l.account, "err", err)
		return records
	}
	logger.Debug("repository listing fetched",
		"account", l.account,
		"records", len(records),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return records
}
