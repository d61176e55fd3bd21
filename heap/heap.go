// Package heap keeps the K keys with the largest estimated counts.
package heap

import (
	"container/heap"
	"slices"
	"sort"
	"unsafe"

	"github.com/keilerkonzept/countmin/internal/sizeof"
)

type Item struct {
	Key   int64
	Count int64
}

type Min struct {
	Items []Item
	Index map[int64]int
}

func NewMin(k int) *Min {
	return &Min{
		Items: make([]Item, 0, k),
		Index: make(map[int64]int, k),
	}
}

var _ heap.Interface = &Min{}

const (
	sizeofMinStruct = int(unsafe.Sizeof(Min{}))
	sizeofItem      = int(unsafe.Sizeof(Item{}))
)

func (me Min) SizeBytes() int {
	structSize := sizeofMinStruct
	itemsSize := cap(me.Items) * sizeofItem
	indexSize := sizeof.Int64Int + (sizeof.Int+sizeof.Int64)*len(me.Index)
	return structSize + itemsSize + indexSize
}

// Reinit restores the heap ordering and drops zero-count items.
func (me *Min) Reinit() {
	heap.Init(me)
	for me.Len() > 0 && me.Items[0].Count == 0 {
		heap.Pop(me)
	}
}

func (me Min) Full() bool { return len(me.Items) == cap(me.Items) }

// Len is container/heap.Interface.Len().
func (me Min) Len() int { return len(me.Items) }

// Less is container/heap.Interface.Less().
func (me Min) Less(i, j int) bool { return less(me.Items[i], me.Items[j]) }

// less orders by count, then by descending key so that smaller keys rank higher.
func less(a, b Item) bool {
	if a.Count == b.Count {
		return a.Key > b.Key
	}
	return a.Count < b.Count
}

// Swap is container/heap.Interface.Swap().
func (me Min) Swap(i, j int) {
	keyi := me.Items[i].Key
	keyj := me.Items[j].Key
	me.Items[i], me.Items[j] = me.Items[j], me.Items[i]
	me.Index[keyi] = j
	me.Index[keyj] = i
}

// Push is container/heap.Interface.Push().
func (me *Min) Push(x interface{}) {
	b := x.(Item)
	me.Items = append(me.Items, b)
	me.Index[b.Key] = len(me.Items) - 1
}

// Pop is container/heap.Interface.Pop().
func (me *Min) Pop() interface{} {
	old := me.Items
	n := len(old)
	x := old[n-1]
	me.Items = old[0 : n-1]
	delete(me.Index, x.Key)
	return x
}

// Min returns the minimum count in the heap or 0 if the heap is empty.
func (me Min) Min() int64 {
	if len(me.Items) == 0 {
		return 0
	}
	return me.Items[0].Count
}

func (me Min) Find(key int64) (i int) {
	if i, ok := me.Index[key]; ok {
		return i
	}
	return -1
}

func (me Min) Contains(key int64) bool {
	_, ok := me.Index[key]
	return ok
}

func (me Min) Get(key int64) *Item {
	if i, ok := me.Index[key]; ok {
		return &me.Items[i]
	}
	return nil
}

// Update sets the key's count, inserting it if it belongs in the top K.
// It returns false if the key was not kept.
func (me *Min) Update(key int64, count int64) bool {
	if cap(me.Items) == 0 {
		return false
	}
	if i := me.Find(key); i >= 0 { // already in heap: update count
		me.Items[i].Count = count
		heap.Fix(me, i)
		return true
	}

	if !me.Full() { // heap not full: add to heap
		heap.Push(me, Item{Key: key, Count: count})
		return true
	}

	item := Item{Key: key, Count: count}
	if !less(me.Items[0], item) { // not in top k: ignore
		return false
	}

	// replace min on heap
	delete(me.Index, me.Items[0].Key)
	me.Items[0] = item
	me.Index[key] = 0
	heap.Fix(me, 0)
	return true
}

// SortedSlice returns the items by descending count, ties broken by ascending key.
func (me Min) SortedSlice() []Item {
	out := slices.Clone(me.Items)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].Count, out[j].Count
		if ci == cj {
			return out[i].Key < out[j].Key
		}
		return ci > cj
	})
	return out
}

// Reset empties the heap, keeping its capacity.
func (me *Min) Reset() {
	me.Items = me.Items[:0]
	clear(me.Index)
}
