package store

import (
	"context"
	"time"
)

// NamespacedStore wraps another Store and prefixes every key with
// "namespace:", mirroring the domain attribute a browser agent would scope
// its cookies with.
type NamespacedStore struct {
	next      Store
	namespace string
}

// WithNamespace wraps next so all keys are scoped under namespace. An empty
// namespace returns next unchanged.
func WithNamespace(next Store, namespace string) Store {
	if namespace == "" {
		return next
	}
	return &NamespacedStore{next: next, namespace: namespace}
}

func (s *NamespacedStore) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyKey
	}
	return s.next.Get(ctx, s.namespace+":"+name)
}

func (s *NamespacedStore) Set(ctx context.Context, name, value string, ttl time.Duration) error {
	if name == "" {
		return ErrEmptyKey
	}
	return s.next.Set(ctx, s.namespace+":"+name, value, ttl)
}

func (s *NamespacedStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyKey
	}
	return s.next.Delete(ctx, s.namespace+":"+name)
}
