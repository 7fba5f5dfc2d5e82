package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "value" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data; unknown placeholders are left as-is.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"unknown_enum_value": "unknown value {value} for {enum}",
		"ambiguous_union":    "more than one alternative set: {alternatives}",
		"malformed_integer":  "malformed integer {value}",
		"type_mismatch":      "expected {expected}, got {got}",
		"parse_error":        "parse error",
		"duplicate_key":      "duplicate key",
		"max_depth":          "maximum nesting depth exceeded",
		"truncated":          "input exceeds the size limit",
		"shadowed_key":       "pass-through key {key} collides with a known field",
	},
	"ja": {
		"unknown_enum_value": "{enum} に未知の値 {value} が指定されています",
		"ambiguous_union":    "複数の選択肢が同時に指定されています: {alternatives}",
		"malformed_integer":  "整数として不正な値です: {value}",
		"type_mismatch":      "型が不正です ({expected} を期待しましたが {got} でした)",
		"parse_error":        "解析エラー",
		"duplicate_key":      "キーが重複しています",
		"max_depth":          "ネストが深すぎます",
		"truncated":          "入力サイズが上限を超えています",
		"shadowed_key":       "未知キー {key} が既知のフィールドと衝突しています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
