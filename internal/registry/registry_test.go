package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassify 测试属性分类的优先级规则
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		property string
		want     Kind
	}{
		{name: "数值属性", property: "width", want: KindNumeric},
		{name: "颜色属性", property: "backgroundColor", want: KindColor},
		{name: "枚举属性", property: "position", want: KindEnumerated},
		{name: "简写属性", property: "padding", want: KindShorthand},
		{name: "简写优先于数值", property: "margin", want: KindShorthand},
		{name: "简写优先于颜色", property: "borderColor", want: KindShorthand},
		{name: "简写优先于枚举", property: "borderStyle", want: KindShorthand},
		{name: "自由文本", property: "fontFamily", want: KindFreeform},
		{name: "未注册属性", property: "somethingNew", want: KindFreeform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Classify(tt.property))
		})
	}
}

// TestIsColor_SubstringRule 测试未来的 *Color 属性自动按颜色处理
func TestIsColor_SubstringRule(t *testing.T) {
	t.Parallel()

	assert.True(t, IsColor("color"))
	assert.True(t, IsColor("outlineColor"), "含 color 的新属性无需更新注册表")
	assert.True(t, IsColor("textDecorationColor"))
	assert.False(t, IsColor("width"))
}

// TestNumericRange 测试数值范围按属性族区分
func TestNumericRange(t *testing.T) {
	t.Parallel()

	t.Run("尺寸比间距范围更宽", func(t *testing.T) {
		t.Parallel()
		assert.Greater(t, NumericRange("width").Max, NumericRange("paddingTop").Max)
	})

	t.Run("透明度限制在单位区间", func(t *testing.T) {
		t.Parallel()
		r := NumericRange("opacity")
		assert.Equal(t, Range{Min: 0, Max: 1, Step: 0.01}, r)
	})

	t.Run("未注册属性得到通用回退范围", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, genericRange, NumericRange("somethingNew"))
	})
}

// TestExpand 测试简写展开
func TestExpand(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"paddingTop", "paddingRight", "paddingBottom", "paddingLeft"},
		Expand("padding"))
	assert.Equal(t,
		[]string{"borderWidth", "borderStyle", "borderColor"},
		Expand("border"))
	assert.Nil(t, Expand("width"), "非简写属性没有展开")
}

// TestOptions 测试枚举选项表
func TestOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"static", "relative", "absolute", "fixed", "sticky"},
		Options("position"))
	assert.Nil(t, Options("width"))
}

// TestAll 测试属性清单的排序与完整性
func TestAll(t *testing.T) {
	t.Parallel()

	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]struct{}, len(all))
	for _, name := range all {
		_, dup := seen[name]
		require.False(t, dup, "属性清单不应有重复: %s", name)
		seen[name] = struct{}{}
	}

	// 简写展开出的具体属性都在清单中
	for _, name := range []string{"paddingTop", "marginLeft", "borderTopLeftRadius", "rowGap"} {
		assert.Contains(t, all, name)
	}
}

// TestLookup 测试完整描述符查询
func TestLookup(t *testing.T) {
	t.Parallel()

	d := Lookup("opacity")
	assert.Equal(t, KindNumeric, d.Kind)
	assert.Equal(t, 0.01, d.Range.Step)

	d = Lookup("padding")
	assert.Equal(t, KindShorthand, d.Kind)
	assert.Len(t, d.Related, 4)
	// padding 同时登记了数值范围，供简写滑块使用
	assert.Equal(t, 200.0, d.Range.Max)
}

// TestDisplayName 测试人类可读标签
func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Background Color", DisplayName("backgroundColor"))
	assert.Equal(t, "Width", DisplayName("width"))
	assert.Equal(t, "Border Top Left Radius", DisplayName("borderTopLeftRadius"))
}
