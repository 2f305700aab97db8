package csync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionedMap_SetDel 测试写入与删除均推进版本号
func TestVersionedMap_SetDel(t *testing.T) {
	t.Parallel()

	vm := NewVersionedMap[string, string]()
	require.Equal(t, uint64(0), vm.Version())

	vm.Set("width", "100px")
	require.Equal(t, uint64(1), vm.Version())
	require.Equal(t, map[string]string{"width": "100px"}, vm.Copy())

	vm.Del("width")
	require.Equal(t, uint64(2), vm.Version())
	require.Empty(t, vm.Copy())

	// 删除不存在的键同样递增版本号
	vm.Del("nonexistent")
	require.Equal(t, uint64(3), vm.Version())
}

// TestVersionedMap_CopyIsSnapshot 测试快照不随后续写入变化
func TestVersionedMap_CopyIsSnapshot(t *testing.T) {
	t.Parallel()

	vm := NewVersionedMap[string, string]()
	vm.Set("color", "#ff0000")
	snapshot := vm.Copy()

	vm.Set("color", "#00ff00")
	require.Equal(t, "#ff0000", snapshot["color"])
}

// TestVersionedMap_ConcurrentAccess 测试并发读写安全
func TestVersionedMap_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	vm := NewVersionedMap[int, int]()
	const numGoroutines = 50
	const numOperations = 50

	var wg sync.WaitGroup
	for i := range numGoroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range numOperations {
				key := id*numOperations + j
				vm.Set(key, key*2)
				vm.Del(key)
			}
		}(i)
	}
	wg.Wait()

	// 每次 Set 与 Del 各递增一次
	require.Equal(t, uint64(numGoroutines*numOperations*2), vm.Version())
	require.Empty(t, vm.Copy())
}
