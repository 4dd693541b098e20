package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/assistbot/internal/core"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

// CommandList renders one markdown line per handler, arguments in code spans
// so placeholders like <city> survive HTML sanitizing.
func (f *ResponseFormatter) CommandList(handlers []core.Handler) string {
	var sb strings.Builder
	for _, h := range handlers {
		cmd, args, _ := strings.Cut(h.Usage(), " ")
		if args != "" {
			sb.WriteString(fmt.Sprintf("%s `%s` - %s\n", cmd, args, h.Description()))
		} else {
			sb.WriteString(fmt.Sprintf("%s - %s\n", cmd, h.Description()))
		}
	}
	return sb.String()
}

func (f *ResponseFormatter) Weather(city string, w core.WeatherInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Weather in %s:\n", city))
	sb.WriteString(fmt.Sprintf("Description: %s\n", w.Description))
	sb.WriteString(fmt.Sprintf("Temperature: %s°C\n", number(w.TempC)))
	sb.WriteString(fmt.Sprintf("Humidity: %s%%\n", number(w.Humidity)))
	sb.WriteString(fmt.Sprintf("Wind Speed: %s m/s", number(w.WindSpeed)))
	return sb.String()
}

func (f *ResponseFormatter) SearchHit(hit core.SearchHit) string {
	return fmt.Sprintf("%s\n%s\n%s", hit.Title, hit.Link, hit.Snippet)
}

// Failure picks the apology for a failed provider call.
// Only NotFound mentions the subject, every other kind gets the generic wording.
func (f *ResponseFormatter) Failure(service, subject string, err *core.ProviderError) string {
	if err != nil && err.Kind == core.ErrNotFound {
		return fmt.Sprintf("Could not find %s information for %s", service, subject)
	}
	return fmt.Sprintf("Sorry, there was an error talking to the %s service.", service)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
