// Package datepicker models a calendar that can be zoomed between day, month
// and year grids. It holds no UI; callers render the cells it produces.
package datepicker

import (
	"errors"
	"fmt"
	"time"
)

type View string

const (
	ViewDays   View = "days"
	ViewMonths View = "months"
	ViewYears  View = "years"
)

// YearsInView is the size of the year grid. Grids start at a multiple of it.
const YearsInView = 12

var (
	ErrDisabledDay  = errors.New("day is not selectable")
	ErrInvalidView  = errors.New("unknown calendar view")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Picker is the calendar state. Value and MaxDate are unset when zero.
type Picker struct {
	View     View      `json:"view"`
	ViewDate time.Time `json:"view_date"`
	Value    time.Time `json:"value"`
	MaxDate  time.Time `json:"max_date"`
}

type DayCell struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"in_month"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
	Today    bool   `json:"today"`
}

type MonthCell struct {
	Month    int    `json:"month"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type YearCell struct {
	Year     int  `json:"year"`
	Selected bool `json:"selected"`
}

// New opens a picker on the month of value, or of today when value is zero.
func New(value, maxDate, today time.Time) Picker {
	viewDate := value
	if viewDate.IsZero() {
		viewDate = today
	}
	return Picker{View: ViewDays, ViewDate: viewDate, Value: value, MaxDate: maxDate}
}

func ParseView(s string) (View, error) {
	switch View(s) {
	case "":
		return ViewDays, nil
	case ViewDays, ViewMonths, ViewYears:
		return View(s), nil
	}
	return "", ErrInvalidView
}

// Prev steps back one month, one year or one year grid depending on the view.
func (p *Picker) Prev() {
	p.step(-1)
}

func (p *Picker) Next() {
	p.step(1)
}

func (p *Picker) step(dir int) {
	switch p.View {
	case ViewDays:
		p.ViewDate = addMonths(p.ViewDate, dir)
	case ViewMonths:
		p.ViewDate = addMonths(p.ViewDate, 12*dir)
	case ViewYears:
		p.ViewDate = addMonths(p.ViewDate, 12*YearsInView*dir)
	}
}

// ZoomOut goes from days to months and from months to years.
func (p *Picker) ZoomOut() {
	switch p.View {
	case ViewDays:
		p.View = ViewMonths
	case ViewMonths:
		p.View = ViewYears
	}
}

func (p *Picker) PickYear(year int) {
	p.ViewDate = setYearMonth(p.ViewDate, year, p.ViewDate.Month())
	p.View = ViewMonths
}

func (p *Picker) PickMonth(month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	p.ViewDate = setYearMonth(p.ViewDate, p.ViewDate.Year(), time.Month(month))
	p.View = ViewDays
	return nil
}

// PickDay selects day unless its cell is disabled in the current grid.
func (p *Picker) PickDay(day time.Time) error {
	if p.dayDisabled(day) {
		return ErrDisabledDay
	}
	p.Value = day
	return nil
}

func (p Picker) Header() string {
	switch p.View {
	case ViewMonths:
		return p.ViewDate.Format("2006")
	case ViewYears:
		start := p.YearStart()
		return fmt.Sprintf("%d - %d", start, start+YearsInView-1)
	}
	return p.ViewDate.Format("January 2006")
}

func (p Picker) YearStart() int {
	y := p.ViewDate.Year()
	return y - y%YearsInView
}

func (p Picker) Weekdays() []string {
	return weekdays
}

// Days covers whole Sunday-first weeks around the viewed month.
func (p Picker) Days(today time.Time) []DayCell {
	loc := p.ViewDate.Location()
	monthStart := time.Date(p.ViewDate.Year(), p.ViewDate.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)
	start := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	end := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	var cells []DayCell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, DayCell{
			Date:     d.Format(time.DateOnly),
			Day:      d.Day(),
			InMonth:  sameMonth(d, p.ViewDate),
			Disabled: p.dayDisabled(d),
			Selected: !p.Value.IsZero() && sameDay(d, p.Value),
			Today:    sameDay(d, today),
		})
	}
	return cells
}

func (p Picker) Months() []MonthCell {
	cells := make([]MonthCell, 12)
	for i := range cells {
		m := time.Month(i + 1)
		cells[i] = MonthCell{
			Month:    i + 1,
			Label:    m.String()[:3],
			Selected: p.ViewDate.Month() == m,
		}
	}
	return cells
}

func (p Picker) Years() []YearCell {
	start := p.YearStart()
	cells := make([]YearCell, YearsInView)
	for i := range cells {
		cells[i] = YearCell{Year: start + i, Selected: p.ViewDate.Year() == start+i}
	}
	return cells
}

func (p Picker) dayDisabled(d time.Time) bool {
	if !sameMonth(d, p.ViewDate) {
		return true
	}
	return !p.MaxDate.IsZero() && d.After(p.MaxDate)
}

// addMonths clamps the day so that Jan 31 plus one month is Feb 28/29.
func addMonths(t time.Time, n int) time.Time {
	total := int(t.Month()) - 1 + n
	year := t.Year() + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	return setYearMonth(t, year, month)
}

func setYearMonth(t time.Time, year int, month time.Month) time.Time {
	day := t.Day()
	if last := daysIn(year, month, t.Location()); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func sameDay(a, b time.Time) bool {
	return sameMonth(a, b) && a.Day() == b.Day()
}
