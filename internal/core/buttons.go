package core

// ButtonAction identifies an inline keyboard button. The set is closed.
type ButtonAction string

const (
	ActionWeather ButtonAction = "weather"
	ActionTime    ButtonAction = "time"
	ActionJoke    ButtonAction = "joke"
	ActionSearch  ButtonAction = "search"
)

var buttonActions = []ButtonAction{ActionWeather, ActionTime, ActionJoke, ActionSearch}

func ButtonActions() []ButtonAction {
	res := make([]ButtonAction, len(buttonActions))
	copy(res, buttonActions)
	return res
}

func ParseButtonAction(s string) (ButtonAction, bool) {
	for _, a := range buttonActions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}
