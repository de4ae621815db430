package keymutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_KeyMutex_Same_Key_Shares_A_Locker(t *testing.T) {
	req := require.New(t)
	km := New(64)

	req.Same(km.Get(42), km.Get(42))
}

func Test_KeyMutex_Single_Slot_Serializes_Everything(t *testing.T) {
	req := require.New(t)
	km := New(1)

	req.Same(km.Get(1), km.Get(2))
}

func Test_KeyMutex_Concurrent_Get_Is_Safe(t *testing.T) {
	km := New(8)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			locker := km.Get(id)
			locker.Lock()
			locker.Unlock()
		}(int64(i % 10))
	}
	wg.Wait()
}
