package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Update
	}{
		{"plain", "hi /there", PlainText{Text: "hi /there", ChatID: 1}},
		{"empty", "", PlainText{Text: "", ChatID: 1}},
		{"command", "/time", TextCommand{Name: "time", Args: []string{}, ChatID: 1, UserDisplayName: "Ada"}},
		{"args collapse spaces", "/weather  San   Jose", TextCommand{Name: "weather", Args: []string{"San", "Jose"}, ChatID: 1, UserDisplayName: "Ada"}},
		{"mention stripped", "/HELP@assist_bot", TextCommand{Name: "help", Args: []string{}, ChatID: 1, UserDisplayName: "Ada"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseText(tt.text, 1, "Ada"))
		})
	}
}

func TestParseButtonAction(t *testing.T) {
	for _, a := range ButtonActions() {
		got, ok := ParseButtonAction(string(a))
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}

	_, ok := ParseButtonAction("Weather")
	assert.False(t, ok)
}
