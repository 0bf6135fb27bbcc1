package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// file datasets published by the generation pipelines use this envelope.
type envelope struct {
	Puzzles []Record `json:"puzzles"`
	Count   int      `json:"count"`
}

// Cache loads a puzzle dataset exactly once and keeps the decoded records
// for the life of the process. It replaces the old pattern of a lazily
// initialized file-scope variable: the lifecycle is explicit and the cache
// is injected into whoever needs it.
//
// Network and parse failures never cross this boundary as errors; they are
// logged and degrade to an empty record set, leaving error display to the
// caller.
type Cache struct {
	source string
	client *http.Client
	logger *log.Logger

	once    sync.Once
	records []Record
}

// NewCache creates a cache for the given source, which is either an
// http(s) URL or a local file path.
func NewCache(source string, logger *log.Logger) *Cache {
	return &Cache{
		source: source,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Load returns the dataset records, fetching and decoding them on the
// first call. Subsequent calls return the cached slice. The returned
// slice is shared; callers must treat it as read-only.
func (c *Cache) Load(ctx context.Context) []Record {
	c.once.Do(func() {
		records, err := c.fetch(ctx)
		if err != nil {
			c.logger.Warn("dataset unavailable, continuing with empty set",
				"source", c.source, "err", err)
			return
		}
		c.records = records
		c.logger.Debug("dataset loaded", "source", c.source, "records", len(records))
	})
	return c.records
}

func (c *Cache) fetch(ctx context.Context) ([]Record, error) {
	var body []byte
	if strings.HasPrefix(c.source, "http://") || strings.HasPrefix(c.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		body, err = os.ReadFile(c.source)
		if err != nil {
			return nil, err
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return env.Puzzles, nil
}
