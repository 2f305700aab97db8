package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStyles_Set 测试单属性写入的值语义
func TestStyles_Set(t *testing.T) {
	t.Parallel()

	t.Run("写入不修改原映射", func(t *testing.T) {
		t.Parallel()
		orig := Styles{"width": "100px"}
		next := orig.Set("height", "50px")
		assert.Equal(t, Styles{"width": "100px"}, orig)
		assert.Equal(t, "50px", next.Get("height"))
	})

	t.Run("空值等价于删除", func(t *testing.T) {
		t.Parallel()
		orig := Styles{"color": "#ff0000"}
		next := orig.Set("color", "")
		_, exists := next["color"]
		require.False(t, exists, "键必须被整体移除而不是留下空串")
		assert.False(t, next.IsSet("color"))
		// 原映射不受影响
		assert.True(t, orig.IsSet("color"))
	})

	t.Run("空白值同样删除", func(t *testing.T) {
		t.Parallel()
		next := Styles{"color": "red"}.Set("color", "   ")
		_, exists := next["color"]
		require.False(t, exists)
	})

	t.Run("写入前去除首尾空白", func(t *testing.T) {
		t.Parallel()
		next := Styles{}.Set("width", "  100px  ")
		assert.Equal(t, "100px", next.Get("width"))
	})
}

// TestStyles_SetAll 测试组写入的原子性
func TestStyles_SetAll(t *testing.T) {
	t.Parallel()

	margins := []string{"marginTop", "marginRight", "marginBottom", "marginLeft"}
	next := Styles{"margin": "4px"}.Set("margin", "10px").SetAll(margins, "10px")

	for _, key := range append([]string{"margin"}, margins...) {
		assert.Equal(t, "10px", next.Get(key), "组写入后 %s 必须一致", key)
	}
}

// TestStyles_Merge 测试浅合并语义
func TestStyles_Merge(t *testing.T) {
	t.Parallel()

	base := Styles{"width": "100px", "color": "red"}
	next := base.Merge(Styles{"color": "blue", "height": "50px", "width": ""})

	assert.Equal(t, "blue", next.Get("color"), "传入的键覆盖现有键")
	assert.Equal(t, "50px", next.Get("height"), "新键被加入")
	assert.False(t, next.IsSet("width"), "空值按删除处理")
	assert.Equal(t, Styles{"width": "100px", "color": "red"}, base, "原映射不变")
}

// TestStyles_SetKeys 测试已设置属性集合
func TestStyles_SetKeys(t *testing.T) {
	t.Parallel()

	s := Styles{"width": "100px", "height": "", "color": "red"}
	keys := s.SetKeys()
	assert.ElementsMatch(t, []string{"width", "color"}, keys)
}
