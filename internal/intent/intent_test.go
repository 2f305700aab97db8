package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purpose168/stylepad-cn/internal/style"
)

// TestInterpret 测试意图类别的独立求值
func TestInterpret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		want   style.Styles
	}{
		{
			name:   "背景色与内边距同时设置",
			prompt: "make background blue and set padding to 20px",
			want:   style.Styles{"backgroundColor": "#0000ff", "padding": "20px"},
		},
		{
			name:   "背景色关键字映射为十六进制",
			prompt: "background color red",
			want:   style.Styles{"backgroundColor": "#ff0000"},
		},
		{
			name:   "背景色保留十六进制原样",
			prompt: "bg #AbCdEf",
			want:   style.Styles{"backgroundColor": "#abcdef"},
		},
		{
			name:   "文字颜色",
			prompt: "text color white",
			want:   style.Styles{"color": "#ffffff"},
		},
		{
			name:   "宽度默认单位 px",
			prompt: "width 200",
			want:   style.Styles{"width": "200px"},
		},
		{
			name:   "宽度保留百分比单位",
			prompt: "set width to 50%",
			want:   style.Styles{"width": "50%"},
		},
		{
			name:   "高度",
			prompt: "height is 120px",
			want:   style.Styles{"height": "120px"},
		},
		{
			name:   "字号",
			prompt: "font size 18px",
			want:   style.Styles{"fontSize": "18px"},
		},
		{
			name:   "外边距",
			prompt: "margin 12px",
			want:   style.Styles{"margin": "12px"},
		},
		{
			name:   "带数值的圆角",
			prompt: "border radius 6px",
			want:   style.Styles{"borderRadius": "6px"},
		},
		{
			name:   "无数值的圆角使用默认值",
			prompt: "make it rounded",
			want:   style.Styles{"borderRadius": "8px"},
		},
		{
			name:   "文字居中",
			prompt: "center the text",
			want:   style.Styles{"textAlign": "center"},
		},
		{
			name:   "隐藏元素",
			prompt: "hide this element",
			want:   style.Styles{"display": "none"},
		},
		{
			name:   "竖直布局映射为 column",
			prompt: "vertical layout",
			want:   style.Styles{"flexDirection": "column"},
		},
		{
			name:   "justify 的 start 规范化",
			prompt: "justify content start",
			want:   style.Styles{"justifyContent": "flex-start"},
		},
		{
			name:   "百分比透明度换算为小数",
			prompt: "opacity 50%",
			want:   style.Styles{"opacity": "0.5"},
		},
		{
			name:   "大于一的裸数值透明度按百分比处理",
			prompt: "opacity 80",
			want:   style.Styles{"opacity": "0.8"},
		},
		{
			name:   "小数透明度保留原值",
			prompt: "opacity 0.3",
			want:   style.Styles{"opacity": "0.3"},
		},
		{
			name:   "加粗",
			prompt: "make the title bold",
			want:   style.Styles{"fontWeight": "bold"},
		},
		{
			name:   "完整边框",
			prompt: "border 2px dashed red",
			want:   style.Styles{"border": "2px dashed #ff0000"},
		},
		{
			name:   "仅提及边框时使用全部默认值",
			prompt: "add a border",
			want:   style.Styles{"border": "1px solid #000000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Interpret(tt.prompt)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestInterpret_NoMatch 测试未命中任何类别
func TestInterpret_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
	}{
		{name: "空指令", prompt: ""},
		{name: "纯空白", prompt: "   "},
		{name: "无法理解的指令", prompt: "please summon a dragon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Interpret(tt.prompt)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

// TestInterpret_CategoryShortCircuit 测试类别内首个命中模式胜出
func TestInterpret_CategoryShortCircuit(t *testing.T) {
	t.Parallel()

	// "background red" 命中背景色类别的第一个模式后，
	// 第二个模式（颜色在前的写法）不再参与
	got, ok := Interpret("background red")
	require.True(t, ok)
	assert.Equal(t, style.Styles{"backgroundColor": "#ff0000"}, got)
}

// TestInterpret_CaseInsensitive 测试指令大小写无关
func TestInterpret_CaseInsensitive(t *testing.T) {
	t.Parallel()

	upper, ok := Interpret("Background BLUE")
	require.True(t, ok)
	lower, ok2 := Interpret("background blue")
	require.True(t, ok2)
	assert.Equal(t, lower, upper)
}
