// Package relationloader batches dependent-row fetches for assembled
// listings, so a page of videos costs one notes query instead of one per
// video. Loaders are request-scoped: construct one per read call.
package relationloader

import (
	"context"
	"fmt"
	"time"

	"github.com/creativeshelf/creativeshelf/internal/domain"
	"github.com/creativeshelf/creativeshelf/internal/repository"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader"
)

type NoteLoader struct {
	loader *dataloader.Loader
}

func NewNoteLoader(repo repository.LibraryRepository) *NoteLoader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		ids := make([]uuid.UUID, len(keys))
		for i, key := range keys {
			id, err := uuid.Parse(key.String())
			if err != nil {
				return errorResults(keys, fmt.Errorf("invalid video id key: %w", err))
			}
			ids[i] = id
		}

		grouped, err := repo.ListNotesByVideoIDs(ctx, ids)
		if err != nil {
			return errorResults(keys, err)
		}

		results := make([]*dataloader.Result, len(keys))
		for i, id := range ids {
			results[i] = &dataloader.Result{Data: grouped[id]}
		}
		return results
	}

	return &NoteLoader{
		loader: dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(2*time.Millisecond)),
	}
}

// NotesFor batch-loads the notes for a set of videos, grouped per video.
// Videos without notes map to an absent entry.
func (l *NoteLoader) NotesFor(ctx context.Context, videoIDs []uuid.UUID) (map[uuid.UUID][]domain.Note, error) {
	if len(videoIDs) == 0 {
		return map[uuid.UUID][]domain.Note{}, nil
	}

	keys := make(dataloader.Keys, len(videoIDs))
	for i, id := range videoIDs {
		keys[i] = dataloader.StringKey(id.String())
	}

	data, errs := l.loader.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	grouped := make(map[uuid.UUID][]domain.Note, len(videoIDs))
	for i, item := range data {
		notes, ok := item.([]domain.Note)
		if !ok || len(notes) == 0 {
			continue
		}
		grouped[videoIDs[i]] = notes
	}
	return grouped, nil
}

func errorResults(keys dataloader.Keys, err error) []*dataloader.Result {
	results := make([]*dataloader.Result, len(keys))
	for i := range results {
		results[i] = &dataloader.Result{Error: err}
	}
	return results
}
