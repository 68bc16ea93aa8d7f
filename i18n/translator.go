package i18n

import "fmt"

// Translator renders localized messages for issue codes. data provides the
// metadata to embed in the message (for example, "attribute", "value" and
// "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in English Translator. Its wording mirrors the
// messages data consumers already match on.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	switch code {
	case "required":
		return fmt.Sprintf("attribute %q value is mandatory", data["attribute"])
	case "invalid_type":
		return fmt.Sprintf("attribute %q value (%s) is not a %s",
			data["attribute"], data["value"], data["expected"])
	case "invalid_enum":
		return fmt.Sprintf("attribute %q value (%s) is not in entry codes",
			data["attribute"], data["value"])
	case "not_comparable":
		return fmt.Sprintf("attribute %q value (%s) is not comparable to entry codes",
			data["attribute"], data["value"])
	}
	return code
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation; passing nil restores
// the built-in English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
