// Package keymutex serializes work per aggregate id. Operations on
// different aggregates run in parallel; two operations on the same id
// share one locker, so an in-memory mutation and its persistence write
// form a single unit.
package keymutex

import (
	"hash/fnv"
	"strconv"
	"sync"
)

type KeyMutex interface {
	Get(key int64) sync.Locker
}

type keyMutex struct {
	maxMutexes uint16

	mutex      sync.RWMutex
	mutexByKey map[uint16]*sync.Mutex
}

// New returns a KeyMutex backed by a fixed pool of maxMutexes mutexes.
// Distinct ids may hash to the same locker; that only costs contention,
// never correctness.
func New(maxMutexes uint16) KeyMutex {
	return &keyMutex{
		maxMutexes: maxMutexes,
		mutexByKey: make(map[uint16]*sync.Mutex, maxMutexes),
	}
}

func (k *keyMutex) Get(key int64) sync.Locker {
	slot := k.slot(key)

	k.mutex.RLock()
	locker, ok := k.mutexByKey[slot]
	k.mutex.RUnlock()
	if ok {
		return locker
	}

	k.mutex.Lock()
	defer k.mutex.Unlock()
	if locker, ok := k.mutexByKey[slot]; ok {
		return locker
	}
	locker = &sync.Mutex{}
	k.mutexByKey[slot] = locker
	return locker
}

func (k *keyMutex) slot(key int64) uint16 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(key, 10)))
	return uint16(h.Sum32() % uint32(k.maxMutexes))
}
