package sync

import (
	"slices"
	"time"

	"github.com/iudanet/gymkeeper/internal/client/store"
)

// SyncResult contains the outcome of one pull
type SyncResult struct {
	Pulled  int // количество полученных из облака записей
	Added   int // новые записи, которых не было локально
	Updated int // локальные записи, замененные более свежими удаленными
	Kept    int // локальные записи, оказавшиеся новее или равными удаленным
}

// Changed reports whether the merge modified the local collection.
func (r SyncResult) Changed() bool {
	return r.Added > 0 || r.Updated > 0
}

// Merge applies last-writer-wins to local using remote.
// A remote entity with an unknown id is appended; a known one replaces the
// local copy only when its timestamp is strictly greater. Ties keep local.
func Merge[T store.Entity[T]](local, remote []T, timestamp func(T) time.Time) ([]T, SyncResult) {
	res := SyncResult{Pulled: len(remote)}

	index := make(map[string]int, len(local))
	for i, item := range local {
		index[item.GetID()] = i
	}

	for _, item := range remote {
		i, ok := index[item.GetID()]
		if !ok {
			index[item.GetID()] = len(local)
			local = append(local, item)
			res.Added++
			continue
		}

		if timestamp(item).After(timestamp(local[i])) {
			local[i] = item
			res.Updated++
		} else {
			res.Kept++
		}
	}

	return local, res
}

// sortItems orders items with less, keeping equal items in place.
func sortItems[T any](items []T, less func(a, b T) bool) {
	if less == nil {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}
