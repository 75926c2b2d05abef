// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/de"
	"github.com/vorlif/humanize/locale/ru"
	"github.com/vorlif/spreak"
	"golang.org/x/text/message"

	"github.com/wneessen/gismeteo-weather/internal/config"
	"github.com/wneessen/gismeteo-weather/internal/i18n"
	"github.com/wneessen/gismeteo-weather/internal/weather"
)

const (
	TempUnit          = "°C"
	PressureUnit      = "hPa"
	WindUnit          = "m/s"
	PrecipitationUnit = "mm"
)

// ObservationView wraps the current observation with presentation-related fields.
type ObservationView struct {
	weather.Observation

	ConditionName          string
	ConditionIcon          string
	ConditionIconWithSpace string
}

// ForecastView wraps a forecast entry with presentation-related fields. Time is in the zone of
// the location.
type ForecastView struct {
	weather.ForecastEntry

	ConditionName          string
	ConditionIcon          string
	ConditionIconWithSpace string
}

type TemplateContext struct {
	Name        string
	Location    string
	Attribution string
	Mode        weather.Mode

	UpdateTime        time.Time
	TempUnit          string
	PressureUnit      string
	WindUnit          string
	PrecipitationUnit string
	HasSunTimes       bool
	SunriseTime       time.Time
	SunsetTime        time.Time
	MoonPhase         string
	MoonPhaseIcon     string

	Current   ObservationView
	Forecast  ForecastView
	Forecasts []ForecastView
}

type Presenter struct {
	TextTemplate       *template.Template
	AltTextTemplate    *template.Template
	TooltipTemplate    *template.Template
	AltTooltipTemplate *template.Template

	name      string
	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
	printer   *message.Printer
}

// New parses the configured templates and verifies that they render with a sample context.
func New(conf *config.Config, localizer *spreak.Localizer) (*Presenter, error) {
	if conf == nil {
		return nil, fmt.Errorf("config is required")
	}
	if localizer == nil {
		return nil, fmt.Errorf("localizer is required")
	}

	tag := i18n.Tag(conf.Locale)
	humanizers, err := humanize.New(humanize.WithLocale(de.New(), ru.New()))
	if err != nil {
		return nil, fmt.Errorf("failed to create humanizer: %w", err)
	}
	pres := &Presenter{
		name:      conf.Weather.Name,
		localizer: localizer,
		humanizer: humanizers.CreateHumanizer(tag),
		printer:   message.NewPrinter(tag),
	}

	templates := []struct {
		name   string
		text   string
		target **template.Template
	}{
		{"text", conf.Templates.Text, &pres.TextTemplate},
		{"alt_text", conf.Templates.AltText, &pres.AltTextTemplate},
		{"tooltip", conf.Templates.Tooltip, &pres.TooltipTemplate},
		{"alt_tooltip", conf.Templates.AltTooltip, &pres.AltTooltipTemplate},
	}
	for _, tpl := range templates {
		parsed, err := template.New(tpl.name).Funcs(pres.templateFuncMap()).Parse(tpl.text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", tpl.name, err)
		}
		*tpl.target = parsed
	}

	if _, err = pres.Render(pres.sampleContext()); err != nil {
		return nil, err
	}

	return pres, nil
}

// BuildContext assembles the template context for a weather snapshot. The forecast view is the
// first entry not before now. Zero sunrise and sunset times mark them as unavailable.
func (p *Presenter) BuildContext(data *weather.Data, now time.Time, sunrise, sunset time.Time,
	moonPhase string,
) TemplateContext {
	tplCtx := TemplateContext{
		Name:              p.name,
		TempUnit:          TempUnit,
		PressureUnit:      PressureUnit,
		WindUnit:          WindUnit,
		PrecipitationUnit: PrecipitationUnit,
		HasSunTimes:       !sunrise.IsZero() && !sunset.IsZero(),
		SunriseTime:       sunrise,
		SunsetTime:        sunset,
		MoonPhase:         moonPhase,
		MoonPhaseIcon:     MoonPhaseIcon[moonPhase],
	}
	if data == nil {
		return tplCtx
	}

	zone := weather.FixedZone(data.Location.UTCOffset)
	tplCtx.Location = data.Location.Name
	tplCtx.Attribution = data.Attribution
	tplCtx.Mode = data.Mode
	tplCtx.UpdateTime = data.GeneratedAt
	tplCtx.Current = p.viewFromObservation(data.Current)
	tplCtx.Forecasts = make([]ForecastView, 0, len(data.Forecast))
	for _, entry := range data.Forecast {
		tplCtx.Forecasts = append(tplCtx.Forecasts, p.viewFromEntry(entry, zone))
	}
	if next, ok := data.Next(now); ok {
		tplCtx.Forecast = p.viewFromEntry(next, zone)
	}

	return tplCtx
}

// Render executes all templates and returns their output keyed by template name.
func (p *Presenter) Render(tplCtx TemplateContext) (map[string]string, error) {
	templates := map[string]*template.Template{
		"text":        p.TextTemplate,
		"alt_text":    p.AltTextTemplate,
		"tooltip":     p.TooltipTemplate,
		"alt_tooltip": p.AltTooltipTemplate,
	}
	output := make(map[string]string, len(templates))
	for name, tpl := range templates {
		if tpl == nil {
			return nil, fmt.Errorf("failed to render %s template: template not set", name)
		}
		buf := bytes.NewBuffer(nil)
		if err := tpl.Execute(buf, tplCtx); err != nil {
			return nil, fmt.Errorf("failed to render %s template: %w", name, err)
		}
		output[name] = strings.TrimSpace(buf.String())
	}
	return output, nil
}

func (p *Presenter) viewFromObservation(obs weather.Observation) ObservationView {
	icon := ConditionIcons[obs.Condition]
	return ObservationView{
		Observation:            obs,
		ConditionName:          p.conditionName(obs.Condition),
		ConditionIcon:          icon,
		ConditionIconWithSpace: EmojiWithSpace(icon),
	}
}

func (p *Presenter) viewFromEntry(entry weather.ForecastEntry, zone *time.Location) ForecastView {
	icon := ConditionIcons[entry.Condition]
	entry.Time = entry.Time.In(zone)
	return ForecastView{
		ForecastEntry:          entry,
		ConditionName:          p.conditionName(entry.Condition),
		ConditionIcon:          icon,
		ConditionIconWithSpace: EmojiWithSpace(icon),
	}
}

func (p *Presenter) conditionName(condition weather.Condition) string {
	msgID, ok := ConditionNames[condition]
	if !ok {
		msgID = ConditionNames[weather.ConditionUnknown]
	}
	return p.localizer.Get(msgID)
}

// sampleContext returns a fully populated context used to validate the templates.
func (p *Presenter) sampleContext() TemplateContext {
	now := time.Now()
	data := weather.NewData(weather.ModeHourly)
	data.GeneratedAt = now
	data.Location = weather.Location{ID: "0", Name: "Sample"}
	data.Attribution = "Sample"
	data.Current = weather.Observation{Condition: weather.ConditionSunny, WindBearing: "N"}
	data.Forecast = append(data.Forecast, weather.ForecastEntry{
		Time:        now,
		Condition:   weather.ConditionCloudy,
		WindBearing: "S",
	})
	return p.BuildContext(data, now, now, now, "Full Moon")
}

// EmojiWithSpace pads an emoji with spaces according to its display width.
func EmojiWithSpace(emoji string) string {
	if emoji == "" {
		return ""
	}
	width := runewidth.StringWidth(emoji)
	return fmt.Sprintf("%s%s", emoji, strings.Repeat(" ", width+1))
}
