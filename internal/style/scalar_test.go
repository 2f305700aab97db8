package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseScalar 测试标量解析的基本功能
func TestParseScalar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Scalar
	}{
		{name: "像素值", input: "12px", want: Scalar{12, UnitPx}},
		{name: "无单位默认像素", input: "12", want: Scalar{12, UnitPx}},
		{name: "百分比", input: "50%", want: Scalar{50, UnitPercent}},
		{name: "em单位", input: "1.5em", want: Scalar{1.5, UnitEm}},
		{name: "rem优先于em", input: "2rem", want: Scalar{2, UnitRem}},
		{name: "视口高度", input: "100vh", want: Scalar{100, UnitVh}},
		{name: "动态视口宽度", input: "40dvw", want: Scalar{40, UnitDvw}},
		{name: "负值", input: "-4px", want: Scalar{-4, UnitPx}},
		{name: "小数", input: "0.5", want: Scalar{0.5, UnitPx}},
		{name: "首尾空白", input: "  20px  ", want: Scalar{20, UnitPx}},
		{name: "零", input: "0", want: Scalar{0, UnitPx}},
		{name: "零百分比", input: "0%", want: Scalar{0, UnitPercent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ParseScalar(tt.input))
		})
	}
}

// TestParseScalar_SoftFail 测试非法输入退化为零值而不报错
func TestParseScalar_SoftFail(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "auto", "abc", "12foo", "px", "1 2", "calc(100% - 4px)"} {
		t.Run("非法输入 "+input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, Scalar{0, UnitPx}, ParseScalar(input))
		})
	}
}

// TestScalar_String 测试标量格式化
func TestScalar_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Scalar
		want string
	}{
		{name: "像素", in: Scalar{12, UnitPx}, want: "12px"},
		{name: "像素零值折叠为裸零", in: Scalar{0, UnitPx}, want: "0"},
		{name: "百分比零值保留符号", in: Scalar{0, UnitPercent}, want: "0%"},
		{name: "em零值保留符号", in: Scalar{0, UnitEm}, want: "0em"},
		{name: "小数", in: Scalar{1.5, UnitRem}, want: "1.5rem"},
		{name: "负值", in: Scalar{-4, UnitPx}, want: "-4px"},
		{name: "空单位按像素处理", in: Scalar{3, ""}, want: "3px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.in.String())
		})
	}
}

// TestScalar_RoundTrip 测试解析与格式化的往返不变量：
// 除像素零值折叠外，parse(format(v)) == v
func TestScalar_RoundTrip(t *testing.T) {
	t.Parallel()

	allUnits := []Unit{UnitPx, UnitEm, UnitPercent, UnitDvh, UnitDvw, UnitRem, UnitVh, UnitVw}
	values := []float64{0, 1, 12, 0.5, -4, 100, 33.3}

	for _, u := range allUnits {
		for _, v := range values {
			sc := Scalar{Value: v, Unit: u}
			got := ParseScalar(sc.String())
			require.Equal(t, sc, got, "往返失败: %v", sc)
		}
	}

	// 像素零值折叠的文本必须恰好是 "0"
	require.Equal(t, "0", Scalar{0, UnitPx}.String())
}
