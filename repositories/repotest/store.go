// Package repotest provides in-memory repositories with the same contracts as
// the Mongo-backed ones, for service and handler tests.
package repotest

import (
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type store[T any] struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]T
	idOf  func(*T) primitive.ObjectID
}

func newStore[T any](idOf func(*T) primitive.ObjectID) *store[T] {
	return &store[T]{docs: map[primitive.ObjectID]T{}, idOf: idOf}
}

func (s *store[T]) put(doc *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idOf(doc)
	if _, ok := s.docs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.docs[id] = *doc
}

func (s *store[T]) get(id primitive.ObjectID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil
	}
	return &doc
}

func (s *store[T]) filter(keep func(*T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for _, id := range s.order {
		doc := s.docs[id]
		if keep == nil || keep(&doc) {
			out = append(out, doc)
		}
	}
	return out
}

func (s *store[T]) byIDs(ids []primitive.ObjectID) []T {
	want := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	return s.filter(func(doc *T) bool { return want[s.idOf(doc)] })
}

// update applies a $set style field map through a bson round trip so the
// fake honours the same field names as the Mongo repositories.
func (s *store[T]) update(id primitive.ObjectID, set bson.M) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, nil
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	fields := bson.M{}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	for k, v := range set {
		fields[k] = v
	}
	if raw, err = bson.Marshal(fields); err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var next T
	if err := bson.Unmarshal(raw, &next); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	s.docs[id] = next
	return &next, nil
}

func (s *store[T]) mutate(id primitive.ObjectID, fn func(*T)) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil
	}
	fn(&doc)
	s.docs[id] = doc
	return &doc
}

func (s *store[T]) remove(id primitive.ObjectID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
