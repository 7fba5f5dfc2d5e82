// Package chatcard decodes, validates and encodes chat "cardsV2" messages:
// cards made of sections and widgets, sent to a chat webhook as JSON.
//
// The in-memory tree tracks presence explicitly. Optional scalars and nested
// objects are pointers, sequences distinguish nil from empty, and enum fields
// use "" for unset. Unions (a widget's body, an onClick target, a decorated
// text's control) are sealed interfaces holding at most one alternative.
// Members the codec does not model are kept in each node's Extra field and
// written back after the known fields.
//
// Errors are reported as Issues with a dotted path (sections[0].widgets[2])
// and a stable code; messages come from the i18n package.
//
// Typical usage:
//
//	msg, err := chatcard.DecodeMessage(data)
//	card, err := chatcard.Decode[chatcard.Card](chatcard.YAMLBytes(y))
//	out, err := chatcard.Encode(msg, chatcard.EncodeOpt{Indent: "  "})
//	iss := chatcard.Validate(card)
package chatcard
