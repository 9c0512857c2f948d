package tree

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyTree is returned if a walk is started with an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Action is a function performed for a tree node during a walk.
type Action[T comparable] func(node *Node[T]) error

// WalkOption configures a walk.
type WalkOption func(*walkConfig)

type walkConfig struct {
	workers int
}

// Concurrency sets the maximum number of nodes processed concurrently.
// n < 1 selects the number of CPUs; n == 1 processes nodes sequentially
// in the calling goroutine.
func Concurrency(n int) WalkOption {
	return func(conf *walkConfig) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		conf.workers = n
	}
}

// PreOrder calls action for every node of the (sub-)tree rooted at node,
// parents before children, siblings in order. The walk stops at the first
// error, which is returned.
func PreOrder[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return preorder(node, action)
}

func preorder[T comparable](node *Node[T], action Action[T]) error {
	if err := action(node); err != nil {
		return err
	}
	for _, ch := range node.Children() {
		if ch == nil {
			continue
		}
		if err := preorder(ch, action); err != nil {
			return err
		}
	}
	return nil
}

// TopDown calls action for every node of the (sub-)tree rooted at node.
// Actions may run concurrently: clients must not rely on any ordering
// between actions for different nodes. TopDown returns after all actions
// have finished, returning the first error encountered. After an action
// failed, no further actions are started.
//
// Without options, TopDown uses as many workers as there are CPUs.
func TopDown[T comparable](node *Node[T], action Action[T], opts ...WalkOption) error {
	if node == nil {
		return ErrEmptyTree
	}
	conf := walkConfig{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.workers == 1 {
		return preorder(node, action)
	}
	tracer().Debugf("tree: concurrent walk with %d workers", conf.workers)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(conf.workers)
	// the walking goroutine only enqueues; actions never wait for each other
	preorder(node, func(n *Node[T]) error {
		if err := ctx.Err(); err != nil {
			return err // stop enqueueing
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return action(n)
		})
		return nil
	})
	return g.Wait()
}
