package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/report"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const revisionHeader = "X-Ledger-Revision"

// reportFunc builds a JSON response body from every ledger entry
type reportFunc func(entries []ledger.Entry) interface{}

func categoryTotals(entries []ledger.Entry) interface{} {
	return map[string]interface{}{
		"Categories": report.CategoryTotals(entries),
	}
}

func cashFlow(entries []ledger.Entry) interface{} {
	return map[string]interface{}{
		"Days": report.CashFlow(entries),
	}
}

func overview(entries []ledger.Entry) interface{} {
	return report.Summarize(entries)
}

func tax(entries []ledger.Entry) interface{} {
	return report.TaxSummary(report.FromLedger(entries))
}

// reportCache keeps report responses until the ledger's revision changes or they expire
type reportCache struct {
	books *Books
	cache *cache.Cache
}

func newReportCache(books *Books, expiration time.Duration) *reportCache {
	return &reportCache{
		books: books,
		cache: cache.New(expiration, 2*expiration),
	}
}

func cacheKey(path string, revision uint64) string {
	return fmt.Sprintf("%s@%d", path, revision)
}

func (r *reportCache) handler(build reportFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		revision := r.books.Revision()
		body, found := r.cache.Get(cacheKey(path, revision))
		if !found {
			unlock := r.books.lock()
			revision = r.books.Revision()
			body = build(r.books.Ledger.All())
			unlock()
			r.cache.Set(cacheKey(path, revision), body, cache.DefaultExpiration)
		}
		c.Header(revisionHeader, fmt.Sprintf("%d", revision))
		c.JSON(http.StatusOK, body)
	}
}
