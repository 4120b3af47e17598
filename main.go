// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"slices"

	"github.com/tsuru/collections/internal/config"
	"github.com/tsuru/collections/internal/heap"
	"github.com/tsuru/collections/internal/list"
	"github.com/tsuru/collections/internal/logger"
)

func main() {
	log := logger.NewLogger(map[string]string{"emitter": "collections-walkthrough"}, os.Stdout)

	input := config.Spec.HeapSortInput
	log.Info("heapsort with aux space", "input", input, "sorted", heap.HeapSortAux(input))

	inPlace := slices.Clone(input)
	log.Info("heapsort in-place", "input", input, "sorted", heap.HeapSortInPlace(inPlace))

	arranged := slices.Clone(input)
	h := heap.Heapify(arranged)
	root, _ := h.Peek()
	log.Info("heapify in linear time", "heap", arranged, "min", root)

	log.Info("top k", "k", config.Spec.TopK, "values", heap.TopK(input, config.Spec.TopK))

	l := list.New[int]()
	l.AppendLeft(1).AppendLeft(2).Append(3)
	log.Info("linked list", "list", l.String(), "len", l.Len())
	if node, ok := l.PopLeft(); ok {
		log.Info("popleft", "node", node.String(), "list", l.String())
	}
	if _, err := l.Get(l.Len()); err != nil {
		log.Warn("index lookup failed", "error", err)
	}
}
