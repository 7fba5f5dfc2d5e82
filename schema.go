package chatcard

import (
	"fmt"
	"sync"

	js "github.com/reoring/chatcard/jsonschema"
)

// SchemaID is the $id of the exported message schema.
const SchemaID = "https://github.com/reoring/chatcard/cards-v2.schema.json"

// JSONSchema projects the message format into a JSON Schema (draft
// 2020-12). Enum fields list member tokens and ordinals, union holders
// reject two alternatives present at once and unknown members are allowed.
// Unlike Decode, the schema does not accept null for modelled fields.
func JSONSchema() *js.Schema {
	str := func() *js.Schema { return &js.Schema{Type: "string"} }
	boolean := func() *js.Schema { return &js.Schema{Type: "boolean"} }
	number := func() *js.Schema { return &js.Schema{Type: "number"} }
	integer := func() *js.Schema { return &js.Schema{Type: "integer"} }
	ref := js.DefRef
	list := func(name string) *js.Schema { return &js.Schema{Type: "array", Items: ref(name)} }
	obj := func(props map[string]*js.Schema) *js.Schema {
		return &js.Schema{Type: "object", Properties: props}
	}

	defs := map[string]*js.Schema{
		"CardWithID": obj(map[string]*js.Schema{"cardId": str(), "card": ref("Card")}),
		"Card": obj(map[string]*js.Schema{
			"header":         ref("CardHeader"),
			"sections":       list("Section"),
			"cardActions":    list("CardAction"),
			"name":           str(),
			"fixedFooter":    ref("CardFixedFooter"),
			"displayStyle":   enumSchema(displayStyles),
			"peekCardHeader": ref("CardHeader"),
		}),
		"CardHeader": obj(map[string]*js.Schema{
			"title":        str(),
			"subtitle":     str(),
			"imageType":    enumSchema(imageTypes),
			"imageUrl":     str(),
			"imageAltText": str(),
		}),
		"Section": obj(map[string]*js.Schema{
			"header":                    str(),
			"widgets":                   list("Widget"),
			"collapsible":               boolean(),
			"uncollapsibleWidgetsCount": integer(),
		}),
		"Widget": withNot(obj(map[string]*js.Schema{
			"textParagraph":  ref("TextParagraph"),
			"image":          ref("Image"),
			"decoratedText":  ref("DecoratedText"),
			"buttonList":     ref("ButtonList"),
			"textInput":      ref("TextInput"),
			"selectionInput": ref("SelectionInput"),
			"dateTimePicker": ref("DateTimePicker"),
			"divider":        ref("Divider"),
			"grid":           ref("Grid"),
		}), widgetAlternatives),
		"TextParagraph": obj(map[string]*js.Schema{"text": str()}),
		"Image": obj(map[string]*js.Schema{
			"imageUrl": str(),
			"onClick":  ref("OnClick"),
			"altText":  str(),
		}),
		"Divider": obj(nil),
		"DecoratedText": withNot(obj(map[string]*js.Schema{
			"icon":          ref("Icon"),
			"startIcon":     ref("Icon"),
			"topLabel":      str(),
			"text":          str(),
			"wrapText":      boolean(),
			"bottomLabel":   str(),
			"onClick":       ref("OnClick"),
			"button":        ref("Button"),
			"switchControl": ref("SwitchControl"),
			"endIcon":       ref("Icon"),
		}), controlAlternatives),
		"Icon": obj(map[string]*js.Schema{
			"altText":   str(),
			"imageType": enumSchema(imageTypes),
			"knownIcon": str(),
			"iconUrl":   str(),
		}),
		"Button": obj(map[string]*js.Schema{
			"text":     str(),
			"icon":     ref("Icon"),
			"color":    ref("Color"),
			"onClick":  ref("OnClick"),
			"disabled": boolean(),
			"altText":  str(),
		}),
		"Color": obj(map[string]*js.Schema{
			"red":   number(),
			"green": number(),
			"blue":  number(),
			"alpha": number(),
		}),
		"SwitchControl": obj(map[string]*js.Schema{
			"name":           str(),
			"value":          str(),
			"selected":       boolean(),
			"onChangeAction": ref("Action"),
			"controlType":    enumSchema(controlTypes),
		}),
		"ButtonList": obj(map[string]*js.Schema{"buttons": list("Button")}),
		"TextInput": obj(map[string]*js.Schema{
			"name":               str(),
			"label":              str(),
			"hintText":           str(),
			"value":              str(),
			"type":               enumSchema(textInputTypes),
			"onChangeAction":     ref("Action"),
			"initialSuggestions": ref("Suggestions"),
			"autoCompleteAction": ref("Action"),
		}),
		"Suggestions":    obj(map[string]*js.Schema{"items": list("SuggestionItem")}),
		"SuggestionItem": obj(map[string]*js.Schema{"text": str()}),
		"SelectionInput": obj(map[string]*js.Schema{
			"name":           str(),
			"label":          str(),
			"type":           enumSchema(selectionTypes),
			"items":          list("SelectionItem"),
			"onChangeAction": ref("Action"),
		}),
		"SelectionItem": obj(map[string]*js.Schema{
			"text":     str(),
			"value":    str(),
			"selected": boolean(),
		}),
		"DateTimePicker": obj(map[string]*js.Schema{
			"name":  str(),
			"label": str(),
			"type":  enumSchema(dateTimePickerTypes),
			"valueMsEpoch": {AnyOf: []*js.Schema{
				{Type: "string", Pattern: `^[+-]?[0-9]+$`},
				integer(),
			}},
			"timezoneOffsetDate": integer(),
			"onChangeAction":     ref("Action"),
		}),
		"Grid": obj(map[string]*js.Schema{
			"title":       str(),
			"items":       list("GridItem"),
			"borderStyle": ref("BorderStyle"),
			"columnCount": integer(),
			"onClick":     ref("OnClick"),
		}),
		"GridItem": obj(map[string]*js.Schema{
			"id":       str(),
			"image":    ref("ImageComponent"),
			"title":    str(),
			"subtitle": str(),
			"layout":   enumSchema(gridItemLayouts),
		}),
		"ImageComponent": obj(map[string]*js.Schema{
			"imageUri":    str(),
			"altText":     str(),
			"cropStyle":   ref("ImageCropStyle"),
			"borderStyle": ref("BorderStyle"),
		}),
		"ImageCropStyle": obj(map[string]*js.Schema{
			"type":        enumSchema(imageCropTypes),
			"aspectRatio": number(),
		}),
		"BorderStyle": obj(map[string]*js.Schema{
			"type":         enumSchema(borderTypes),
			"strokeColor":  ref("Color"),
			"cornerRadius": integer(),
		}),
		"OnClick": withNot(obj(map[string]*js.Schema{
			"action":                ref("Action"),
			"openLink":              ref("OpenLink"),
			"openDynamicLinkAction": ref("Action"),
			"card":                  ref("Card"),
		}), onClickAlternatives),
		"Action": obj(map[string]*js.Schema{
			"function":      str(),
			"parameters":    list("ActionParameter"),
			"loadIndicator": enumSchema(loadIndicators),
			"persistValues": boolean(),
			"interaction":   enumSchema(interactions),
		}),
		"ActionParameter": obj(map[string]*js.Schema{"key": str(), "value": str()}),
		"OpenLink": obj(map[string]*js.Schema{
			"url":     str(),
			"openAs":  enumSchema(openAsValues),
			"onClose": enumSchema(onCloseValues),
		}),
		"CardAction": obj(map[string]*js.Schema{
			"actionLabel": str(),
			"onClick":     ref("OnClick"),
		}),
		"CardFixedFooter": obj(map[string]*js.Schema{
			"primaryButton":   ref("Button"),
			"secondaryButton": ref("Button"),
		}),
	}

	root := obj(map[string]*js.Schema{"cardsV2": list("CardWithID")})
	root.Schema = js.Draft2020
	root.ID = SchemaID
	root.Title = "cardsV2 message"
	root.Defs = defs
	return root
}

func enumSchema[E ~string](s enumSet[E]) *js.Schema {
	vals := s.tokens()
	for i := range s.members {
		vals = append(vals, i)
	}
	return &js.Schema{Enum: vals}
}

func withNot(s *js.Schema, alternatives []string) *js.Schema {
	s.Not = js.AnyTwoOf(alternatives...)
	return s
}

var (
	schemaOnce     sync.Once
	schemaCompiled *js.Compiled
	schemaErr      error
)

// CheckSchema validates raw JSON against JSONSchema. It is independent of
// Decode and useful for payloads produced by other tools.
func CheckSchema(data []byte) error {
	schemaOnce.Do(func() {
		schemaCompiled, schemaErr = js.Compile(SchemaID, JSONSchema())
	})
	if schemaErr != nil {
		return fmt.Errorf("chatcard: %w", schemaErr)
	}
	return schemaCompiled.Validate(data)
}
