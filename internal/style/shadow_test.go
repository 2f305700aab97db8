package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseShadow 测试阴影解析
func TestParseShadow(t *testing.T) {
	t.Parallel()

	t.Run("none 映射为零值", func(t *testing.T) {
		t.Parallel()
		got := ParseShadow("none", true)
		require.Equal(t, Shadow{Color: "#000000", PickerColor: "#000000"}, got)
	})

	t.Run("transparent 映射为零值", func(t *testing.T) {
		t.Parallel()
		require.True(t, ParseShadow("transparent", false).IsZero())
	})

	t.Run("带扩散的完整 box-shadow", func(t *testing.T) {
		t.Parallel()
		got := ParseShadow("2px 4px 8px 1px #ff0000", true)
		assert.Equal(t, 2.0, got.OffsetX)
		assert.Equal(t, 4.0, got.OffsetY)
		assert.Equal(t, 8.0, got.Blur)
		assert.Equal(t, 1.0, got.Spread)
		assert.Equal(t, "#ff0000", got.Color)
		assert.Equal(t, "#ff0000", got.PickerColor)
	})

	t.Run("不带扩散的 text-shadow", func(t *testing.T) {
		t.Parallel()
		got := ParseShadow("1px 1px 2px #00ff00", false)
		assert.Equal(t, 1.0, got.OffsetX)
		assert.Equal(t, 1.0, got.OffsetY)
		assert.Equal(t, 2.0, got.Blur)
		assert.Equal(t, 0.0, got.Spread)
	})

	t.Run("rgba 颜色保留原始词元并生成近似值", func(t *testing.T) {
		t.Parallel()
		got := ParseShadow("2px 2px 4px rgba(255, 0, 0, 0.5)", false)
		assert.Equal(t, "rgba(255, 0, 0, 0.5)", got.Color)
		assert.Equal(t, "#ff0000", got.PickerColor)
		assert.Equal(t, 4.0, got.Blur)
	})

	t.Run("颜色关键字", func(t *testing.T) {
		t.Parallel()
		got := ParseShadow("0 2px 4px blue", true)
		assert.Equal(t, "blue", got.Color)
		assert.Equal(t, "#0000ff", got.PickerColor)
	})

	t.Run("缺失颜色退化为黑色", func(t *testing.T) {
		t.Parallel()
		got := ParseShadow("2px 2px 4px", true)
		assert.Equal(t, "#000000", got.Color)
	})
}

// TestFormatShadow 测试阴影格式化
func TestFormatShadow(t *testing.T) {
	t.Parallel()

	t.Run("零值折叠为 none", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "none", FormatShadow(ZeroShadow(), true))
		require.Equal(t, "none", FormatShadow(Shadow{}, false))
	})

	t.Run("省略扩散分量", func(t *testing.T) {
		t.Parallel()
		sh := Shadow{OffsetX: 1, OffsetY: 2, Blur: 3, Color: "#ffffff"}
		require.Equal(t, "1px 2px 3px #ffffff", FormatShadow(sh, false))
	})

	t.Run("包含扩散分量", func(t *testing.T) {
		t.Parallel()
		sh := Shadow{OffsetX: 1, OffsetY: 2, Blur: 3, Spread: 4, Color: "#ffffff"}
		require.Equal(t, "1px 2px 3px 4px #ffffff", FormatShadow(sh, true))
	})
}

// TestShadow_Symmetry 测试阴影编解码在自身输出上的幂等性
func TestShadow_Symmetry(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		name      string
		shadow    Shadow
		hasSpread bool
	}{
		{name: "普通阴影", shadow: Shadow{OffsetX: 2, OffsetY: 2, Blur: 4, Color: "#ff0000"}, hasSpread: false},
		{name: "带扩散", shadow: Shadow{OffsetX: 0, OffsetY: 2, Blur: 8, Spread: 1, Color: "#00ff00"}, hasSpread: true},
		{name: "rgba 颜色", shadow: Shadow{OffsetX: 1, OffsetY: 1, Blur: 1, Color: "rgba(0, 0, 0, 0.5)"}, hasSpread: false},
		{name: "零值", shadow: ZeroShadow(), hasSpread: true},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			text := FormatShadow(tt.shadow, tt.hasSpread)
			reparsed := ParseShadow(text, tt.hasSpread)
			require.Equal(t, text, FormatShadow(reparsed, tt.hasSpread))
		})
	}
}
