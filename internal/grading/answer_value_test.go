package grading

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestToList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{name: "nil", input: nil, expected: []string{}},
		{name: "空 JSON 列", input: datatypes.JSON(nil), expected: []string{}},
		{name: "JSON null", input: datatypes.JSON("null"), expected: []string{}},
		{name: "JSON 字符串", input: datatypes.JSON(`"B"`), expected: []string{"B"}},
		{name: "JSON 列表", input: datatypes.JSON(`["sun", "the sun"]`), expected: []string{"sun", "the sun"}},
		{name: "JSON 对象带 answer", input: datatypes.JSON(`{"answer": "C", "note": "x"}`), expected: []string{"C"}},
		{name: "JSON 数字保留原文", input: datatypes.JSON(`3.50`), expected: []string{"3.50"}},
		{name: "JSON 布尔", input: datatypes.JSON(`false`), expected: []string{"false"}},
		{name: "列表里的数字", input: datatypes.JSON(`[1, "one"]`), expected: []string{"1", "one"}},
		{name: "双重编码的列表", input: datatypes.JSON(`"[\"a\", \"b\"]"`), expected: []string{"a", "b"}},
		{name: "非法 JSON 退化为字面量", input: datatypes.JSON(`not json`), expected: []string{"not json"}},
		{name: "普通字符串", input: "Paris", expected: []string{"Paris"}},
		{name: "字符串形式的列表", input: `["x","y"]`, expected: []string{"x", "y"}},
		{name: "字符串形式的对象", input: `{"answer":"z"}`, expected: []string{"z"}},
		{name: "字符串切片", input: []string{"a", "b"}, expected: []string{"a", "b"}},
		{name: "任意切片", input: []any{"a", 2, true}, expected: []string{"a", "2", "true"}},
		{name: "map 不带 answer", input: map[string]any{"k": "v"}, expected: []string{`{"k":"v"}`}},
		{name: "RawMessage", input: json.RawMessage(`["q"]`), expected: []string{"q"}},
		{name: "整数", input: 7, expected: []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToList(tt.input))
		})
	}
}

func TestParseAnswerValueKinds(t *testing.T) {
	assert.Equal(t, AnswerNone, ParseAnswerValue(nil).Kind)
	assert.Equal(t, AnswerLiteral, ParseAnswerValue(datatypes.JSON(`"x"`)).Kind)
	assert.Equal(t, AnswerList, ParseAnswerValue(datatypes.JSON(`["x"]`)).Kind)
	assert.Equal(t, AnswerObject, ParseAnswerValue(datatypes.JSON(`{"answer":"x"}`)).Kind)

	// object without answer key degrades to a literal
	v := ParseAnswerValue(datatypes.JSON(`{"points":["a"]}`))
	assert.Equal(t, AnswerLiteral, v.Kind)
	assert.Equal(t, "object", AnswerObject.String())
}

func TestValuesReturnsCopy(t *testing.T) {
	v := AnswerValue{Kind: AnswerList, List: []string{"a"}}
	out := v.Values()
	out[0] = "changed"
	assert.Equal(t, "a", v.List[0])
}

func TestDecodeExpectedPoints(t *testing.T) {
	assert.Nil(t, DecodeExpectedPoints(nil))
	assert.Nil(t, DecodeExpectedPoints(datatypes.JSON("")))
	assert.Equal(t, map[string]any{"points": []any{"a", "b"}},
		DecodeExpectedPoints(datatypes.JSON(`{"points":["a","b"]}`)))
	// JSON 编码的字符串会再解一层
	assert.Equal(t, []any{"x"}, DecodeExpectedPoints(datatypes.JSON(`"[\"x\"]"`)))
	assert.Equal(t, "plain text", DecodeExpectedPoints(datatypes.JSON(`"plain text"`)))
	assert.Equal(t, "plain text", DecodeExpectedPoints("plain text"))
	assert.Equal(t, 42, DecodeExpectedPoints(42))
}
