package question

// Catalog exposes question retrieval for HTTP handlers and the answer
// recorder. Catalog order is the canonical presentation order.
type Catalog interface {
	List() []Definition
	FindByID(id string) (Definition, bool)
}

// MemoryCatalog implements Catalog with an in-memory slice, suitable for a
// fixed questionnaire loaded once at startup.
type MemoryCatalog struct {
	items []Definition
	byID  map[string]Definition
}

// NewMemoryCatalog returns a MemoryCatalog preloaded with the supplied
// questions. Question ids are assumed unique; a later duplicate would
// shadow the earlier one in lookups.
func NewMemoryCatalog(items []Definition) *MemoryCatalog {
	byID := make(map[string]Definition, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &MemoryCatalog{items: append([]Definition(nil), items...), byID: byID}
}

// List returns the questionnaire in canonical order.
func (c *MemoryCatalog) List() []Definition {
	return append([]Definition(nil), c.items...)
}

// FindByID looks up a question by identifier.
func (c *MemoryCatalog) FindByID(id string) (Definition, bool) {
	item, ok := c.byID[id]
	return item, ok
}
