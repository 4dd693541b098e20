package core

const (
	AssistName          = "AssistBot"
	AssistVersion       = "0.1.0"
	AssistUserAgent     = "AssistBot/" + AssistVersion
	AssistRepositoryURL = "https://github.com/sandevgo/assistbot"
)

// Update is a single inbound event from the chat transport.
// The set of variants is closed: TextCommand, PlainText and ButtonPress.
type Update interface {
	Chat() int64
	isUpdate()
}

type TextCommand struct {
	Name            string
	Args            []string
	ChatID          int64
	UserDisplayName string
}

type PlainText struct {
	Text   string
	ChatID int64
}

type ButtonPress struct {
	Action ButtonAction
	ChatID int64
}

func (u TextCommand) Chat() int64 { return u.ChatID }
func (u PlainText) Chat() int64   { return u.ChatID }
func (u ButtonPress) Chat() int64 { return u.ChatID }

func (TextCommand) isUpdate() {}
func (PlainText) isUpdate()   {}
func (ButtonPress) isUpdate() {}

type Format int

const (
	// FormatPlain bodies are delivered verbatim.
	FormatPlain Format = iota
	// FormatMarkdown bodies are rendered to Telegram HTML before sending.
	FormatMarkdown
)

type Button struct {
	Label  string
	Action ButtonAction
}

type OutboundMessage struct {
	ChatID  int64
	Body    string
	Format  Format
	Buttons [][]Button
}

// Text builds a plain reply without a chat id; the dispatcher stamps it.
func Text(body string) OutboundMessage {
	return OutboundMessage{Body: body, Format: FormatPlain}
}

func Markdown(body string) OutboundMessage {
	return OutboundMessage{Body: body, Format: FormatMarkdown}
}

type WeatherInfo struct {
	Description string
	TempC       float64
	Humidity    float64
	WindSpeed   float64
}

type Joke struct {
	Setup     string
	Punchline string
}

type SearchHit struct {
	Title   string
	Link    string
	Snippet string
}
