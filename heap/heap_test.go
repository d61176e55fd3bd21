package heap_test

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/keilerkonzept/countmin/heap"
	"github.com/keilerkonzept/countmin/internal/sizeof"
)

func TestMinHeap_LessSwap(t *testing.T) {
	h := heap.NewMin(5)
	h.Push(heap.Item{Key: 1, Count: 5})
	h.Push(heap.Item{Key: 2, Count: 2})
	h.Push(heap.Item{Key: 3, Count: 2})

	// Check Less function
	if !h.Less(1, 0) {
		t.Errorf("expected Less(1, 0) to be true")
	}
	if h.Less(0, 1) {
		t.Errorf("expected Less(0, 1) to be false")
	}
	// equal counts: the larger key is the smaller item
	if !h.Less(2, 1) {
		t.Errorf("expected Less(2, 1) to be true")
	}

	// Check Swap function
	h.Swap(0, 1)
	if h.Items[0].Key != 2 || h.Items[1].Key != 1 {
		t.Errorf("expected Swap to switch keys 1 and 2")
	}
	if h.Find(2) != 0 || h.Find(1) != 1 {
		t.Errorf("expected Swap to update the index")
	}
}

func TestMinHeap_Full(t *testing.T) {
	h := heap.NewMin(2)

	h.Update(1, 2)
	if h.Full() {
		t.Errorf("expected heap to not be full")
	}

	h.Update(2, 2)
	if !h.Full() {
		t.Errorf("expected heap to be full")
	}
}

func TestMinHeap_Update(t *testing.T) {
	h := heap.NewMin(2)

	if !h.Update(10, 10) {
		t.Errorf("expected key 10 to enter the heap")
	}
	h.Update(20, 5)
	h.Update(30, 8)
	if h.Update(40, 1) {
		t.Errorf("expected key 40 to be rejected")
	}

	// 20 has the lowest count and the heap is full
	if h.Contains(20) {
		t.Errorf("expected key 20 to be removed from the heap")
	}
	if h.Contains(40) {
		t.Errorf("expected key 40 to never enter the heap")
	}

	// Update an existing item
	h.Update(30, 15)
	expected := []heap.Item{{Key: 30, Count: 15}, {Key: 10, Count: 10}}
	if diff := cmp.Diff(expected, h.SortedSlice()); diff != "" {
		t.Error(diff)
	}
}

func TestMinHeap_UpdateZeroCapacity(t *testing.T) {
	h := heap.NewMin(0)
	if h.Update(1, 100) {
		t.Errorf("expected zero-capacity heap to reject every key")
	}
	if h.Len() != 0 {
		t.Errorf("expected empty heap, got %d items", h.Len())
	}
}

func TestMinHeap_Min(t *testing.T) {
	h := heap.NewMin(2)

	if h.Min() != 0 {
		t.Errorf("expected Min to return 0 for empty heap")
	}

	h.Update(1, 10)
	h.Update(2, 5)
	h.Update(3, 3)

	if h.Min() != 5 {
		t.Errorf("expected Min to return 5, got %d", h.Min())
	}
}

func TestMinHeap_Reinit(t *testing.T) {
	h := heap.NewMin(3)

	h.Push(heap.Item{Key: 1, Count: 0})
	h.Push(heap.Item{Key: 2, Count: 2})
	h.Push(heap.Item{Key: 3, Count: 3})

	// Reinit should remove items with 0 count
	h.Reinit()
	if h.Len() != 2 {
		t.Errorf("expected Len after Reinit to be 2, got %d", h.Len())
	}
	if h.Contains(1) {
		t.Errorf("expected key 1 to be removed from the heap")
	}
}

func TestMinHeap_FindGet(t *testing.T) {
	h := heap.NewMin(3)
	h.Update(-7, 10)

	if idx := h.Find(-7); idx != 0 {
		t.Errorf("expected key -7 at index 0, got %d", idx)
	}
	if idx := h.Find(0); idx != -1 {
		t.Errorf("expected key 0 to not be found, got %d", idx)
	}

	if item := h.Get(-7); item == nil || item.Count != 10 {
		t.Errorf("expected to get key -7, got '%v'", item)
	}
	if item := h.Get(0); item != nil {
		t.Errorf("expected nil for missing key, got '%v'", item)
	}
}

func TestMinHeap_SortedSlice(t *testing.T) {
	h := heap.NewMin(4)
	h.Update(5, 3)
	h.Update(2, 7)
	h.Update(9, 3)
	h.Update(1, 1)
	h.Update(4, 3)

	expected := []heap.Item{
		{Key: 2, Count: 7},
		{Key: 4, Count: 3},
		{Key: 5, Count: 3},
		{Key: 9, Count: 3},
	}
	if diff := cmp.Diff(expected, h.SortedSlice()); diff != "" {
		t.Error(diff)
	}
}

func TestMinHeap_SizeBytes(t *testing.T) {
	h := heap.NewMin(3)

	const (
		sizeofMinStruct = int(unsafe.Sizeof(heap.Min{}))
		sizeofItem      = int(unsafe.Sizeof(heap.Item{}))
	)

	expectedSize := sizeofMinStruct + 3*sizeofItem + sizeof.Int64Int
	if h.SizeBytes() != expectedSize {
		t.Errorf("expected SizeBytes to be %d, got %d", expectedSize, h.SizeBytes())
	}

	h.Update(1, 5)
	expectedSize += sizeof.Int + sizeof.Int64
	if h.SizeBytes() != expectedSize {
		t.Errorf("expected SizeBytes to be %d, got %d", expectedSize, h.SizeBytes())
	}
}

func TestMin_Reset(t *testing.T) {
	h := heap.NewMin(3)
	h.Update(1, 10)
	h.Update(2, 20)
	h.Update(3, 5)

	if len(h.Items) != 3 || len(h.Index) != 3 {
		t.Fatalf("expected 3 items, got %d items and %d index entries", len(h.Items), len(h.Index))
	}

	h.Reset()

	if len(h.Items) != 0 {
		t.Fatalf("expected heap length 0 after reset, got %d", len(h.Items))
	}
	if len(h.Index) != 0 {
		t.Fatalf("expected index length 0 after reset, got %d", len(h.Index))
	}
	if !h.Update(4, 1) || !h.Contains(4) {
		t.Fatalf("expected heap to accept items after reset")
	}
}
