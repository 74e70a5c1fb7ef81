// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"strings"
	"sync"

	"recbrowse/cli/internal/record"
)

// columnCache keeps DescribeTable results per table name so repeated lookups
// do not hit information_schema again.
type columnCache struct {
	// cache stores column lists keyed by table name
	cache map[string][]record.Column
	// mu protects concurrent access to the cache
	mu sync.RWMutex
}

func newColumnCache() *columnCache {
	return &columnCache{cache: make(map[string][]record.Column)}
}

// get returns the cached columns for table or loads and caches them.
// Failed loads are not cached.
func (c *columnCache) get(table string, load func() ([]record.Column, error)) ([]record.Column, error) {
	c.mu.RLock()
	if cols, ok := c.cache[table]; ok {
		c.mu.RUnlock()
		return cols, nil
	}
	c.mu.RUnlock()

	cols, err := load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[table] = cols
	c.mu.Unlock()
	return cols, nil
}

// parseTableName splits "schema.table" into its parts. An unqualified name
// returns an empty schema.
func parseTableName(tableName string) (schema string, table string) {
	if i := strings.IndexByte(tableName, '.'); i >= 0 {
		return tableName[:i], tableName[i+1:]
	}
	return "", tableName
}
