package engine

import (
	"math/bits"
	"unsafe"
)

// Node types stored with a cache entry.
const (
	PVNode uint8 = iota
	CutNode
	AllNode
	NoNodeInfo
)

const ageMask = 0x3f

// TTData is the payload half of a cache entry: move in the low 16 bits, then
// score, a 2-bit node type, a 6-bit age and the search depth.
type TTData uint64

func packTTData(move uint16, score int16, nodeType, age uint8, depth int8) TTData {
	return TTData(uint64(move) |
		uint64(uint16(score))<<16 |
		uint64(nodeType&3)<<32 |
		uint64(age&ageMask)<<34 |
		uint64(uint8(depth))<<40)
}

func (d TTData) Move() uint16    { return uint16(d) }
func (d TTData) Score() int16    { return int16(uint16(d >> 16)) }
func (d TTData) NodeType() uint8 { return uint8(d>>32) & 3 }
func (d TTData) Age() uint8      { return uint8(d>>34) & ageMask }
func (d TTData) Depth() int8     { return int8(uint8(d >> 40)) }

type tableEntry struct {
	key  uint64
	data TTData
}

// Each bucket holds two entries so a deep entry and a fresh entry can coexist
// for colliding positions.
type tableBucket struct {
	slots [2]tableEntry
}

// TransTable is a fixed-capacity shared transposition cache. Probes and
// stores go through plain slice accesses with no locking; concurrent
// searchers may race on a bucket, and the worst outcome is a lost or torn
// entry, never a wrong lookup for a matching key written by a single store.
type TransTable struct {
	buckets []tableBucket
	mask    uint64
	age     uint8
}

// NewTransTable allocates a table of at most megabytes MB, rounded down to a
// power of two bucket count.
func NewTransTable(megabytes int) *TransTable {
	t := &TransTable{}
	t.SetSize(megabytes)
	return t
}

// SetSize reallocates the table for the given budget in MB and drops all
// stored entries. The bucket count is the largest power of two that fits.
func (t *TransTable) SetSize(megabytes int) {
	bytes := uint64(max(1, megabytes)) << 20
	bucketBytes := uint64(unsafe.Sizeof(tableBucket{}))
	n := bytes / bucketBytes
	if n == 0 {
		n = 1
	}
	n = uint64(1) << (63 - bits.LeadingZeros64(n))

	t.buckets = make([]tableBucket, n)
	t.mask = n - 1
	t.age = 0
}

// Size is the table capacity in entries.
func (t *TransTable) Size() int {
	return len(t.buckets) * 2
}

// mix scrambles the position key before masking so that keys differing only
// in high bits spread over the buckets.
func mix(key uint64) uint64 {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	return key
}

// Add stores an entry for key, replacing within the target bucket by
// priority: a slot with the same key or an empty slot, then the staler slot
// by age, then the shallower slot by depth. A total tie falls on the first
// slot.
func (t *TransTable) Add(key uint64, move uint16, score int16, nodeType uint8, depth int8) {
	b := &t.buckets[mix(key)&t.mask]

	slot := -1
	for i := range b.slots {
		if b.slots[i].key == key {
			slot = i
			break
		}
	}
	if slot < 0 {
		for i := range b.slots {
			if b.slots[i].key == 0 {
				slot = i
				break
			}
		}
	}
	if slot < 0 {
		a0 := (t.age - b.slots[0].data.Age()) & ageMask
		a1 := (t.age - b.slots[1].data.Age()) & ageMask
		switch {
		case a0 != a1:
			if a0 > a1 {
				slot = 0
			} else {
				slot = 1
			}
		case b.slots[1].data.Depth() < b.slots[0].data.Depth():
			slot = 1
		default:
			slot = 0
		}
	}
	b.slots[slot] = tableEntry{key: key, data: packTTData(move, score, nodeType, t.age, depth)}
}

// Get probes both slots of the key's bucket.
func (t *TransTable) Get(key uint64) (TTData, bool) {
	b := &t.buckets[mix(key)&t.mask]
	for i := range b.slots {
		if b.slots[i].key == key {
			return b.slots[i].data, true
		}
	}
	return 0, false
}

// IncrementAge advances the table age at the start of a new search so old
// entries lose replacement priority. Wraps at the stored age width.
func (t *TransTable) IncrementAge() {
	t.age = (t.age + 1) & ageMask
}

func (t *TransTable) Age() uint8 {
	return t.age
}

// Clear drops every entry and resets the age.
func (t *TransTable) Clear() {
	for i := range t.buckets {
		t.buckets[i] = tableBucket{}
	}
	t.age = 0
}

// EstimateHashfull samples the table and reports the permille of slots
// holding an entry from the current age. Counting only the current age
// follows the UCI "info hashfull" convention, where the number tracks
// utilization by the ongoing search rather than lifetime occupancy.
func (t *TransTable) EstimateHashfull() int {
	sample := min(1000, len(t.buckets))
	used := 0
	for i := 0; i < sample; i++ {
		for _, s := range t.buckets[i].slots {
			if s.key != 0 && s.data.Age() == t.age {
				used++
			}
		}
	}
	return used * 1000 / (sample * 2)
}
