package grading

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// AnswerKind 标准答案的存储形态
type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerLiteral
	AnswerList
	AnswerObject
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerLiteral:
		return "literal"
	case AnswerList:
		return "list"
	case AnswerObject:
		return "object"
	default:
		return "none"
	}
}

// AnswerValue 标准答案的判别值：单个字面量、可接受答案列表，或带 answer 字段的对象
type AnswerValue struct {
	Kind    AnswerKind
	Literal string
	List    []string
	Object  string
}

// Values 返回可接受的答案字面量列表，永不为 nil
func (v AnswerValue) Values() []string {
	switch v.Kind {
	case AnswerLiteral:
		return []string{v.Literal}
	case AnswerObject:
		return []string{v.Object}
	case AnswerList:
		out := make([]string, len(v.List))
		copy(out, v.List)
		return out
	default:
		return []string{}
	}
}

// ToList 将存储的标准答案转换为可接受答案列表
func ToList(v any) []string {
	return ParseAnswerValue(v).Values()
}

// ParseAnswerValue 是唯一区分标准答案存储形态的位置。
// 解析失败时退化为字面量，从不返回错误。
func ParseAnswerValue(v any) AnswerValue {
	switch val := v.(type) {
	case nil:
		return AnswerValue{Kind: AnswerNone}
	case AnswerValue:
		return val
	case datatypes.JSON:
		return parseDocument([]byte(val))
	case json.RawMessage:
		return parseDocument([]byte(val))
	case []byte:
		return parseDocument(val)
	case string:
		return parseString(val)
	case *string:
		if val == nil {
			return AnswerValue{Kind: AnswerNone}
		}
		return parseString(*val)
	case []string:
		list := make([]string, len(val))
		copy(list, val)
		return AnswerValue{Kind: AnswerList, List: list}
	case []any:
		return AnswerValue{Kind: AnswerList, List: stringifyAll(val)}
	case map[string]any:
		return fromObject(val)
	default:
		return AnswerValue{Kind: AnswerLiteral, Literal: stringify(val)}
	}
}

// parseDocument 处理数据库 JSON 列中的原始文档
func parseDocument(raw []byte) AnswerValue {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return AnswerValue{Kind: AnswerNone}
	}
	decoded, err := decodeJSON(trimmed)
	if err != nil {
		return AnswerValue{Kind: AnswerLiteral, Literal: string(raw)}
	}
	switch d := decoded.(type) {
	case nil:
		return AnswerValue{Kind: AnswerNone}
	case string:
		// JSON 字符串内部可能还是一层 JSON 编码
		return parseString(d)
	case []any:
		return AnswerValue{Kind: AnswerList, List: stringifyAll(d)}
	case map[string]any:
		return fromObject(d)
	default:
		return AnswerValue{Kind: AnswerLiteral, Literal: stringify(d)}
	}
}

func parseString(s string) AnswerValue {
	decoded, err := decodeJSON([]byte(s))
	if err != nil {
		return AnswerValue{Kind: AnswerLiteral, Literal: s}
	}
	switch d := decoded.(type) {
	case []any:
		return AnswerValue{Kind: AnswerList, List: stringifyAll(d)}
	case map[string]any:
		return fromObject(d)
	default:
		return AnswerValue{Kind: AnswerLiteral, Literal: stringify(d)}
	}
}

func fromObject(obj map[string]any) AnswerValue {
	if ans, ok := obj["answer"]; ok && ans != nil {
		return AnswerValue{Kind: AnswerObject, Object: stringify(ans)}
	}
	return AnswerValue{Kind: AnswerLiteral, Literal: stringify(obj)}
}

// decodeJSON 解码单个 JSON 值，数字保留原始文本
func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return out, nil
}

func stringifyAll(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = stringify(item)
	}
	return out
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case []any, map[string]any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// DecodeExpectedPoints 主观题评分要点：若存储为 JSON 编码的字符串则解码为其结构，
// 解码失败时原样传递字符串。
func DecodeExpectedPoints(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case datatypes.JSON:
		return decodeExpectedDocument([]byte(val))
	case json.RawMessage:
		return decodeExpectedDocument([]byte(val))
	case []byte:
		return decodeExpectedDocument(val)
	case string:
		return decodeExpectedString(val)
	default:
		return val
	}
}

func decodeExpectedDocument(raw []byte) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return string(raw)
	}
	if s, ok := decoded.(string); ok {
		return decodeExpectedString(s)
	}
	return decoded
}

func decodeExpectedString(s string) any {
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return s
	}
	return decoded
}
