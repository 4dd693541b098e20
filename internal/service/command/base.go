package command

import "fmt"

// meta implements the descriptive half of core.Handler.
type meta struct {
	name        string
	description string
	usage       string
	minArgs     int
	// what the user forgot, e.g. "a city name"
	argHint string
}

func (m meta) Name() string        { return m.name }
func (m meta) Description() string { return m.description }
func (m meta) MinArgs() int        { return m.minArgs }

func (m meta) Usage() string {
	if m.usage == "" {
		return "/" + m.name
	}
	return m.usage
}

func (m meta) UsageHint() string {
	if m.argHint == "" {
		return fmt.Sprintf("Usage: %s", m.Usage())
	}
	return fmt.Sprintf("Please provide %s. Usage: %s", m.argHint, m.Usage())
}
