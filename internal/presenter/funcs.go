// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/vorlif/humanize"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat":    p.timeFormat,
		"localizedTime": p.localizedTime,
		"floatFormat":   p.floatFormat,
		"hum":           p.hum,
		"loc":           p.loc,
		"windDirIcon":   p.windDirIcon,
		"forecast":      p.forecastByOffset,
		"lc":            strings.ToLower,
		"uc":            strings.ToUpper,
	}
}

func (p *Presenter) loc(val string) string {
	key := strings.ToLower(val)
	if raw, ok := i18nVars[key]; ok {
		return p.localizer.Get(raw)
	}
	return val
}

func (p *Presenter) localizedTime(val time.Time) string {
	return p.humanizer.FormatTime(val, humanize.TimeFormat)
}

func (p *Presenter) timeFormat(val time.Time, fmt string) string {
	return val.Format(fmt)
}

func (p *Presenter) floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Trunc(val*pow)/pow)
}

// hum formats a value with one decimal and the digit grouping of the locale.
func (p *Presenter) hum(val float64) string {
	return p.printer.Sprintf("%.1f", val)
}

func (p *Presenter) windDirIcon(val string) string {
	return windDirIcons[strings.ToUpper(val)]
}

// forecastByOffset returns the forecast at the given offset (0-based).
func (p *Presenter) forecastByOffset(ctx TemplateContext, offset int) ForecastView {
	if offset < 0 || offset >= len(ctx.Forecasts) {
		return ForecastView{} // zero value; templates will see empty fields
	}
	return ctx.Forecasts[offset]
}
