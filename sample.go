package chatcard

// SampleMessage returns a contact card for a fictional engineer, the
// message used throughout the examples and tests. Each call returns a new
// tree.
func SampleMessage() *Message {
	return &Message{CardsV2: []CardWithID{{
		CardID: String("unique-card-id"),
		Card: &Card{
			Header: &CardHeader{
				Title:        String("Sasha"),
				Subtitle:     String("Software Engineer"),
				ImageURL:     String("https://developers.google.com/chat/images/quickstart-app-avatar.png"),
				ImageType:    ImageTypeCircle,
				ImageAltText: String("Avatar for Sasha"),
			},
			Sections: []Section{{
				Header:                    String("Contact Info"),
				Collapsible:               Bool(true),
				UncollapsibleWidgetsCount: Int(1),
				Widgets: []Widget{
					NewDecoratedText("EMAIL", "sasha@example.com"),
					NewDecoratedText("PERSON", `<font color="#80e27e">Online</font>`),
					NewDecoratedText("PHONE", "+1 (555) 555-1234"),
					NewButtonList(
						LinkButton("Share", "https://example.com/share"),
						ActionButton("Edit", "goToView", "viewType", "EDIT"),
					),
				},
			}},
		},
	}}}
}
