// Package placeholder 渲染 ${name} 形式的占位符
package placeholder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var pattern = regexp.MustCompile(`\$\{([^${}]+)\}`)

// ParseJSONObject 解析 JSON 对象，数字保留原始字面量
func ParseJSONObject(data string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	var res map[string]any
	if err := dec.Decode(&res); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("不是JSON对象: %s", data)
	}
	return res, nil
}

// Render 用 vars 替换 content 中的占位符，vars 中不存在的占位符保持原样
func Render(content string, vars map[string]any) string {
	return pattern.ReplaceAllStringFunc(content, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-1])
		val, ok := vars[name]
		if !ok {
			return match
		}
		return format(val)
	})
}

// RenderJSON 用 JSON 对象渲染，data 不是合法的 JSON 对象时返回错误
func RenderJSON(content, data string) (string, error) {
	vars, err := ParseJSONObject(data)
	if err != nil {
		return "", err
	}
	return Render(content, vars), nil
}

func format(val any) string {
	switch v := val.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		// 嵌套的对象和数组输出紧凑的 JSON
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Sprint(v)
		}
		return strings.TrimSuffix(buf.String(), "\n")
	}
}
