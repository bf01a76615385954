package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	field := data["field"]
	switch t.lang {
	case "ja":
		switch code {
		case "not_an_object":
			return "要素はオブジェクトでなければなりません"
		case "not_a_list":
			return "入力" + data["encoding"] + "はリストでなければなりません"
		case "required":
			return "フィールド '" + field + "' がありません"
		case "invalid_type":
			return "フィールド '" + field + "' の型が不正です"
		case "invalid_value":
			return "フィールド '" + field + "' は空でない文字列でなければなりません"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "not_an_object":
			return "item must be an object"
		case "not_a_list":
			return "input " + data["encoding"] + " must be a list"
		case "required":
			return "missing field '" + field + "'"
		case "invalid_type":
			return "field '" + field + "' must be " + data["expected"]
		case "invalid_value":
			return "field '" + field + "' must be a non-empty string"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
