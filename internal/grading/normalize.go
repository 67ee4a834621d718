package grading

import (
	"strings"
	"unicode"
)

// 序数词到数字后缀形式的映射，按整词匹配
var ordinalWords = map[string]string{
	"first":       "1st",
	"second":      "2nd",
	"third":       "3rd",
	"fourth":      "4th",
	"fifth":       "5th",
	"sixth":       "6th",
	"seventh":     "7th",
	"eighth":      "8th",
	"ninth":       "9th",
	"tenth":       "10th",
	"eleventh":    "11th",
	"twelfth":     "12th",
	"thirteenth":  "13th",
	"fourteenth":  "14th",
	"fifteenth":   "15th",
	"sixteenth":   "16th",
	"seventeenth": "17th",
	"eighteenth":  "18th",
	"nineteenth":  "19th",
	"twentieth":   "20th",
	"thirtieth":   "30th",
	"fortieth":    "40th",
	"fiftieth":    "50th",
	"sixtieth":    "60th",
	"seventieth":  "70th",
	"eightieth":   "80th",
	"ninetieth":   "90th",
	"hundredth":   "100th",
}

// Normalize 将作答文本规范化，用于客观题比对：
// 小写、标点替换为空格、序数词转数字、合并空白。
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	text = strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)

	// 标点已替换为空格，按空白切分即得到整词
	words := strings.Fields(text)
	for i, w := range words {
		if repl, ok := ordinalWords[w]; ok {
			words[i] = repl
		}
	}
	return strings.Join(words, " ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
