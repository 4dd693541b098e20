package core

import "strings"

// ParseText classifies raw chat text. Text starting with "/" is a command:
// "/Weather@SomeBot New York" becomes TextCommand{Name: "weather", Args: ["New", "York"]}.
func ParseText(text string, chatID int64, displayName string) Update {
	if !strings.HasPrefix(text, "/") {
		return PlainText{Text: text, ChatID: chatID}
	}

	parts := strings.Fields(text)
	name := strings.TrimPrefix(parts[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}

	return TextCommand{
		Name:            strings.ToLower(name),
		Args:            parts[1:],
		ChatID:          chatID,
		UserDisplayName: displayName,
	}
}
