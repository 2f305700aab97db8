package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseGradient 测试渐变解析
func TestParseGradient(t *testing.T) {
	t.Parallel()

	t.Run("角度方向与百分比停靠点", func(t *testing.T) {
		t.Parallel()
		g := ParseGradient("linear-gradient(90deg, #fff 0%, #000 100%)")
		require.Equal(t, "90deg", g.Direction)
		require.Len(t, g.Stops, 2)
		assert.Equal(t, GradientStop{Color: "#fff", Position: "0%"}, g.Stops[0])
		assert.Equal(t, GradientStop{Color: "#000", Position: "100%"}, g.Stops[1])
	})

	t.Run("方位关键字方向", func(t *testing.T) {
		t.Parallel()
		g := ParseGradient("linear-gradient(to right, red, blue)")
		require.Equal(t, "to right", g.Direction)
		require.Len(t, g.Stops, 2)
		assert.Equal(t, "red", g.Stops[0].Color)
		assert.Empty(t, g.Stops[0].Position)
	})

	t.Run("省略方向时使用垂直默认值", func(t *testing.T) {
		t.Parallel()
		g := ParseGradient("linear-gradient(#fff, #000)")
		require.Equal(t, DefaultGradientDirection, g.Direction)
		require.Len(t, g.Stops, 2)
	})

	t.Run("rgba内部的逗号不拆分停靠点", func(t *testing.T) {
		t.Parallel()
		g := ParseGradient("linear-gradient(90deg, #fff 0%, rgba(0,0,0,0.5) 100%)")
		require.Len(t, g.Stops, 2)
		assert.Equal(t, "rgba(0,0,0,0.5)", g.Stops[1].Color)
		assert.Equal(t, "100%", g.Stops[1].Position)
	})

	t.Run("非渐变输入返回空渐变", func(t *testing.T) {
		t.Parallel()
		g := ParseGradient("#ff0000")
		assert.Empty(t, g.Stops)
		assert.Equal(t, DefaultGradientDirection, g.Direction)
	})
}

// TestGradient_RoundTrip 测试渐变往返：颜色词元逐字保留
func TestGradient_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"linear-gradient(90deg, #fff 0%, rgba(0,0,0,0.5) 100%)",
		"linear-gradient(to right, red, blue)",
		"linear-gradient(180deg, #ffffff 0%, #000000 100%)",
		"linear-gradient(45deg, rgb(255,0,0) 10%, gold 90%)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, input, FormatGradient(ParseGradient(input)))
		})
	}
}

// TestFormatGradient_DefaultDirection 测试格式化空方向时补全默认方向
func TestFormatGradient_DefaultDirection(t *testing.T) {
	t.Parallel()

	g := Gradient{Stops: []GradientStop{{Color: "#fff"}, {Color: "#000"}}}
	require.Equal(t, "linear-gradient(180deg, #fff, #000)", FormatGradient(g))
}
