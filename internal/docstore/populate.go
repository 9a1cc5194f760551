package docstore

import "context"

// Finder is the read side of a Collection used for population.
type Finder[T any] interface {
	Find(ctx context.Context, f Filter, opts FindOptions) ([]*T, error)
}

// FindByIDs fetches the documents referenced by ids in one query and returns
// them in the order of ids. Ids without a document are skipped.
func FindByIDs[T any](ctx context.Context, c Finder[T], ids []string, idOf func(*T) string) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}

	docs, err := c.Find(ctx, Where(In(FieldID, ids...)), FindOptions{})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*T, len(docs))
	for _, d := range docs {
		byID[idOf(d)] = d
	}

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
