package catalog

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

// Names of the bundled example queries, in catalog order.
const (
	OverallPerformance = "overall_performance"
	PerformanceBySplit = "performance_by_split"
	TaskSuccessRates   = "task_success_rates"
	PassAtK            = "pass_at_k"
)

// ErrUnknownQuery is returned when a lookup names no catalog entry.
var ErrUnknownQuery = errors.New("unknown query name")

//go:embed queries/*.sql
var queryFiles embed.FS

var order = []string{
	OverallPerformance,
	PerformanceBySplit,
	TaskSuccessRates,
	PassAtK,
}

// Entry is one named example query.
type Entry struct {
	Name string
	SQL  string
}

// Catalog is an ordered name to SQL mapping.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// Default builds the catalog of bundled leaderboard queries.
func Default() (*Catalog, error) {
	entries := make([]Entry, 0, len(order))
	for _, name := range order {
		data, err := queryFiles.ReadFile("queries/" + name + ".sql")
		if err != nil {
			return nil, fmt.Errorf("read query %s: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, SQL: string(data)})
	}
	return New(entries)
}

// MustDefault is Default for package initialization paths that cannot fail
// unless the binary was built without its embedded queries.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog preserving the order of entries.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, errors.New("catalog: entry name is required")
		}
		if _, ok := c.index[name]; ok {
			return nil, fmt.Errorf("catalog: duplicate entry %q", name)
		}
		c.index[name] = len(c.entries)
		c.entries = append(c.entries, Entry{Name: name, SQL: entry.SQL})
	}
	return c, nil
}

// Names returns entry names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		names = append(names, entry.Name)
	}
	return names
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the SQL for name.
func (c *Catalog) Lookup(name string) (Entry, error) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownQuery, name, strings.Join(c.Names(), ", "))
	}
	return c.entries[i], nil
}
