package services

import (
	"context"
	"errors"
	"net/http"
	"sort"

	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/eventbus"
)

// EventPublisher - то, что сервисам нужно от шины событий.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

// notFound превращает ErrNotFound в ответ 404 с понятным сообщением.
func notFound(err error, message string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewHttpError(http.StatusNotFound, message, err, nil)
	}
	return err
}

// uniqueIDs убирает повторы, сохраняя порядок.
func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	result := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// diffIDs сравнивает текущий и желаемый наборы и возвращает, что добавить и что убрать.
// Оба результата отсортированы.
func diffIDs(current, desired []uint64) (added, removed []uint64) {
	currentSet := make(map[uint64]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	desiredSet := make(map[uint64]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
	}

	added = make([]uint64, 0)
	for id := range desiredSet {
		if _, ok := currentSet[id]; !ok {
			added = append(added, id)
		}
	}
	removed = make([]uint64, 0)
	for id := range currentSet {
		if _, ok := desiredSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return added, removed
}
