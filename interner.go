package sonnyjim

import (
	"crypto/rand"
	"log/slog"

	"github.com/minio/highwayhash"
)

// interner canonicalizes object-key byte ranges into [StringKey]
// handles. It is an open-addressing hash table over a seeded 64-bit
// HighwayHash of the decoded key bytes, with linear probing and a 7/8
// load factor, doubling capacity on overflow. The hash only narrows the
// search to a handful of candidate slots; key equality is always
// confirmed against the actual resolved bytes, so hash collisions can
// never intern two different strings as the same key.
type interner struct {
	seed [highwayhash.Size]byte

	hashes []uint64    // parallel to keys; occ[i] says whether the slot is live
	keys   []StringKey
	occ    []bool

	len int // number of occupied slots
	cap int // power of two

	log *slog.Logger
}

const internerInitialCap = 16

func newInterner(log *slog.Logger) *interner {
	if log == nil {
		log = slog.Default()
	}
	in := &interner{cap: internerInitialCap, log: log}
	if _, err := rand.Read(in.seed[:]); err != nil {
		// crypto/rand.Read does not fail on any supported platform in
		// practice; falling back to a zero seed only costs HashDoS
		// hardness, not correctness.
		in.seed = [highwayhash.Size]byte{}
	}
	in.hashes = make([]uint64, in.cap)
	in.keys = make([]StringKey, in.cap)
	in.occ = make([]bool, in.cap)
	return in
}

func (in *interner) hash(b []byte) uint64 {
	return highwayhash.Sum64(b, in.seed[:])
}

// probe finds either the occupied slot holding a key equal to b, or the
// first empty slot where it could be inserted, for a hash already known
// to be h.
func (in *interner) probe(a *Arena, h uint64, b []byte) (idx int, occupied bool) {
	mask := in.cap - 1
	for i := int(h) & mask; ; i = (i + 1) & mask {
		if !in.occ[i] {
			return i, false
		}
		if in.hashes[i] == h && a.Resolve(in.keys[i]) == string(b) {
			return i, true
		}
	}
}

// lookup probes for decoded, growing the table first if it is at its
// load-factor limit (growth never changes hit/miss outcome, only where
// the result lives).
func (in *interner) lookup(a *Arena, decoded []byte) (idx int, h uint64, found bool) {
	if in.len*8 >= in.cap*7 {
		in.grow(a)
	}
	h = in.hash(decoded)
	idx, found = in.probe(a, h, decoded)
	return idx, h, found
}

// commit records that the slot found by a prior lookup now holds key.
func (in *interner) commit(idx int, h uint64, key StringKey) {
	in.hashes[idx] = h
	in.keys[idx] = key
	in.occ[idx] = true
	in.len++
}

func (in *interner) grow(a *Arena) {
	oldCap, oldHashes, oldKeys, oldOcc := in.cap, in.hashes, in.keys, in.occ
	in.cap *= 2
	in.hashes = make([]uint64, in.cap)
	in.keys = make([]StringKey, in.cap)
	in.occ = make([]bool, in.cap)
	in.len = 0
	in.log.Debug("interner rehash", "old_cap", oldCap, "new_cap", in.cap)

	for i := range oldOcc {
		if !oldOcc[i] {
			continue
		}
		b := []byte(a.Resolve(oldKeys[i]))
		idx, _ := in.probe(a, oldHashes[i], b)
		in.commit(idx, oldHashes[i], oldKeys[i])
	}
}
