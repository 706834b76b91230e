// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reverso

import "context"

// fetchPageFunc produces one page of results. page is the zero-based page
// index; more reports whether another page exists after it.
type fetchPageFunc[T any] func(ctx context.Context, page int) (items []T, more bool, err error)

// Iter is a lazy, pull-based iterator over remote results, in the style of
// sql.Rows. No network I/O happens before the first call to Next; paginated
// endpoints are fetched one eager HTTP call per page, at the page boundary.
//
// The usage pattern is:
//
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// handle transport/parse/auth errors here
//	}
//
// An Iter is single-use and not safe for concurrent use. Calling the Client
// method again returns a fresh iterator that restarts the sequence.
type Iter[T any] struct {
	ctx   context.Context
	fetch fetchPageFunc[T]

	buf  []T
	cur  T
	page int
	more bool
	done bool
	err  error
}

func newIter[T any](ctx context.Context, fetch fetchPageFunc[T]) *Iter[T] {
	return &Iter[T]{ctx: ctx, fetch: fetch, more: true}
}

// Next advances the iterator, fetching the next page from the service when
// the buffered one is exhausted. It returns false when the sequence ends or
// an error occurs; distinguish the two with Err.
func (it *Iter[T]) Next() bool {
	if it.done {
		return false
	}

	for len(it.buf) == 0 {
		if !it.more {
			it.done = true
			return false
		}

		items, more, err := it.fetch(it.ctx, it.page)
		if err != nil {
			it.err = err
			it.done = true
			return false
		}

		it.page++
		it.more = more
		it.buf = items
	}

	it.cur = it.buf[0]
	it.buf = it.buf[1:]
	return true
}

// Value returns the element the last successful Next advanced to. It is only
// valid after Next has returned true.
func (it *Iter[T]) Value() T {
	return it.cur
}

// Err returns the first error encountered while advancing, or nil. It should
// be checked once Next returns false.
func (it *Iter[T]) Err() error {
	return it.err
}

// Collect drains it into a slice. It returns the items consumed so far
// together with the iterator error, if any.
func Collect[T any](it *Iter[T]) ([]T, error) {
	var items []T
	for it.Next() {
		items = append(items, it.Value())
	}
	return items, it.Err()
}
