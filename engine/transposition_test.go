package engine

import (
	"math/bits"
	"testing"
	"unsafe"
)

func TestEntryLayout(t *testing.T) {
	if sz := unsafe.Sizeof(tableEntry{}); sz != 16 {
		t.Fatalf("entry should pack to 16 bytes, got %d", sz)
	}
	if sz := unsafe.Sizeof(tableBucket{}); sz != 32 {
		t.Fatalf("bucket should pack to 32 bytes, got %d", sz)
	}
}

func TestTTDataRoundTrip(t *testing.T) {
	d := packTTData(0xBEEF, -1204, CutNode, 37, -5)
	if d.Move() != 0xBEEF {
		t.Fatalf("move decoded to %x", d.Move())
	}
	if d.Score() != -1204 {
		t.Fatalf("score decoded to %d", d.Score())
	}
	if d.NodeType() != CutNode {
		t.Fatalf("node type decoded to %d", d.NodeType())
	}
	if d.Age() != 37 {
		t.Fatalf("age decoded to %d", d.Age())
	}
	if d.Depth() != -5 {
		t.Fatalf("depth decoded to %d", d.Depth())
	}
}

func TestSetSizeRoundsToPowerOfTwo(t *testing.T) {
	for _, mb := range []int{1, 2, 7, 16, 100} {
		tt := NewTransTable(mb)
		n := uint64(len(tt.buckets))
		if n&(n-1) != 0 {
			t.Fatalf("%d MB gave non-power-of-two bucket count %d", mb, n)
		}
		if n*uint64(unsafe.Sizeof(tableBucket{})) > uint64(mb)<<20 {
			t.Fatalf("%d MB table overshoots its budget with %d buckets", mb, n)
		}
		if tt.Size() != int(n)*2 {
			t.Fatalf("Size reported %d entries for %d buckets", tt.Size(), n)
		}
	}
}

func TestAddAndGet(t *testing.T) {
	tt := NewTransTable(1)

	key := uint64(0x9D39247E33776D41)
	tt.Add(key, 0x1234, -300, PVNode, 12)

	d, ok := tt.Get(key)
	if !ok {
		t.Fatalf("stored entry not found")
	}
	if d.Move() != 0x1234 || d.Score() != -300 || d.NodeType() != PVNode || d.Depth() != 12 {
		t.Fatalf("entry decoded to move %x score %d type %d depth %d",
			d.Move(), d.Score(), d.NodeType(), d.Depth())
	}
	if _, ok := tt.Get(key ^ 1); ok {
		t.Fatalf("probe hit for a key that was never stored")
	}

	// Same key overwrites in place.
	tt.Add(key, 0x4321, 55, CutNode, 3)
	d, ok = tt.Get(key)
	if !ok || d.Move() != 0x4321 || d.Score() != 55 {
		t.Fatalf("same-key store did not overwrite: ok %v move %x", ok, d.Move())
	}
}

// collidingKeys returns distinct nonzero keys that hash to the same bucket.
func collidingKeys(tt *TransTable, n int) []uint64 {
	keys := make([]uint64, 0, n)
	target := mix(1) & tt.mask
	for k := uint64(1); len(keys) < n; k++ {
		if mix(k)&tt.mask == target {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestBucketReplacementPrefersShallow(t *testing.T) {
	tt := NewTransTable(1)
	keys := collidingKeys(tt, 3)

	tt.Add(keys[0], 1, 0, PVNode, 20)
	tt.Add(keys[1], 2, 0, PVNode, 5)
	// Bucket full, same age everywhere: the shallow entry must give way.
	tt.Add(keys[2], 3, 0, PVNode, 10)

	if _, ok := tt.Get(keys[0]); !ok {
		t.Fatalf("deep entry was evicted")
	}
	if _, ok := tt.Get(keys[1]); ok {
		t.Fatalf("shallow entry survived a full bucket")
	}
	if _, ok := tt.Get(keys[2]); !ok {
		t.Fatalf("new entry was not stored")
	}
}

func TestBucketReplacementTotalTie(t *testing.T) {
	tt := NewTransTable(1)
	keys := collidingKeys(tt, 3)

	tt.Add(keys[0], 1, 0, PVNode, 7)
	tt.Add(keys[1], 2, 0, PVNode, 7)
	// Equal age and equal depth: the first slot gives way.
	tt.Add(keys[2], 3, 0, PVNode, 7)

	if _, ok := tt.Get(keys[0]); ok {
		t.Fatalf("first slot survived a total tie")
	}
	if _, ok := tt.Get(keys[1]); !ok {
		t.Fatalf("second slot was evicted on a total tie")
	}
	if _, ok := tt.Get(keys[2]); !ok {
		t.Fatalf("new entry was not stored")
	}
}

func TestBucketReplacementPrefersStale(t *testing.T) {
	tt := NewTransTable(1)
	keys := collidingKeys(tt, 3)

	tt.Add(keys[0], 1, 0, PVNode, 5) // old age, shallow
	tt.IncrementAge()
	tt.Add(keys[1], 2, 0, PVNode, 30) // fresh age, deep
	tt.IncrementAge()
	// Age outranks depth: the stalest entry goes first even though it is
	// not the shallowest after the second bump.
	tt.Add(keys[2], 3, 0, PVNode, 1)

	if _, ok := tt.Get(keys[0]); ok {
		t.Fatalf("stalest entry survived replacement")
	}
	if _, ok := tt.Get(keys[1]); !ok {
		t.Fatalf("fresher deep entry was evicted")
	}
}

func TestAgeWraps(t *testing.T) {
	tt := NewTransTable(1)
	for i := 0; i < int(ageMask)+1; i++ {
		tt.IncrementAge()
	}
	if tt.Age() != 0 {
		t.Fatalf("age should wrap to 0, got %d", tt.Age())
	}
}

func TestClearAndHashfull(t *testing.T) {
	tt := NewTransTable(1)
	if hf := tt.EstimateHashfull(); hf != 0 {
		t.Fatalf("fresh table reports hashfull %d", hf)
	}

	// Fill every sampled bucket.
	sample := min(1000, len(tt.buckets))
	for b := 0; b < sample; b++ {
		stored := 0
		for k := uint64(1); stored < 2; k++ {
			if mix(k)&tt.mask == uint64(b) {
				tt.Add(k, 0, 0, AllNode, 1)
				stored++
			}
		}
	}
	if hf := tt.EstimateHashfull(); hf != 1000 {
		t.Fatalf("saturated sample should report 1000 permille, got %d", hf)
	}

	tt.IncrementAge()
	if hf := tt.EstimateHashfull(); hf != 0 {
		t.Fatalf("entries from a previous age still count as full: %d", hf)
	}

	tt.Clear()
	if hf := tt.EstimateHashfull(); hf != 0 {
		t.Fatalf("cleared table reports hashfull %d", hf)
	}
	if _, ok := tt.Get(1); ok {
		t.Fatalf("cleared table still answers probes")
	}
	if bits.OnesCount64(tt.mask+1) != 1 {
		t.Fatalf("clear corrupted the bucket mask %x", tt.mask)
	}
}
