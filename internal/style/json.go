package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ParseJSON 从持久化的 JSON 文档解析样式映射。
// 非对象输入返回空映射。
func ParseJSON(doc []byte) Styles {
	out := Styles{}
	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return out
	}
	root.ForEach(func(key, value gjson.Result) bool {
		if v := value.String(); v != "" {
			out[key.String()] = v
		}
		return true
	})
	return out
}

// MergeJSON 把样式变更写回持久化的 JSON 文档。
//
// 逐键原位写入而不是整体重排，保持文档中既有字段的顺序，
// 避免用户手工维护的样式文件被无谓地重写。空值按删除处理。
func MergeJSON(doc []byte, changes Styles) ([]byte, error) {
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("样式文档不是合法的 JSON")
	}

	keys := make([]string, 0, len(changes))
	for key := range changes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var err error
	for _, key := range keys {
		value := strings.TrimSpace(changes[key])
		if value == "" {
			doc, err = sjson.DeleteBytes(doc, key)
		} else {
			doc, err = sjson.SetBytes(doc, key, value)
		}
		if err != nil {
			return nil, fmt.Errorf("写入样式键 %s: %w", key, err)
		}
	}
	return doc, nil
}
