package controller

import (
	"time"

	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/datepicker"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CalendarController struct {
	now func() time.Time
}

func CreateCalendarController(g *echo.Group) {
	c := CalendarController{now: func() time.Time { return time.Now().UTC() }}

	g.GET("/calendar", c.GetCalendar)
}

type calendarResponse struct {
	State    datepicker.Picker      `json:"state"`
	Header   string                 `json:"header"`
	Weekdays []string               `json:"weekdays,omitempty"`
	Days     []datepicker.DayCell   `json:"days,omitempty"`
	Months   []datepicker.MonthCell `json:"months,omitempty"`
	Years    []datepicker.YearCell  `json:"years,omitempty"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}

// GetCalendar applies one navigation action to the state carried in the
// query and returns the resulting grid.
func (c *CalendarController) GetCalendar(e echo.Context) error {
	query := dto.CalendarQuery{}
	if err := e.Bind(&query); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetCalendar").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	picker, err := pickerFromQuery(query, c.now())
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, err.Error())
	}

	switch query.Action {
	case "":
	case "prev":
		picker.Prev()
	case "next":
		picker.Next()
	case "zoom_out":
		picker.ZoomOut()
	case "pick_year":
		picker.PickYear(query.Year)
	case "pick_month":
		err = picker.PickMonth(query.Month)
	case "pick_day":
		var day time.Time
		if day, err = parseDate(query.Day); err == nil {
			err = picker.PickDay(day)
		}
	default:
		err = datepicker.ErrInvalidView
	}
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, err.Error())
	}

	resp := calendarResponse{State: picker, Header: picker.Header()}
	switch picker.View {
	case datepicker.ViewDays:
		resp.Weekdays = picker.Weekdays()
		resp.Days = picker.Days(c.now())
	case datepicker.ViewMonths:
		resp.Months = picker.Months()
	case datepicker.ViewYears:
		resp.Years = picker.Years()
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func pickerFromQuery(q dto.CalendarQuery, today time.Time) (datepicker.Picker, error) {
	value, err := parseDate(q.Value)
	if err != nil {
		return datepicker.Picker{}, err
	}
	maxDate, err := parseDate(q.MaxDate)
	if err != nil {
		return datepicker.Picker{}, err
	}

	picker := datepicker.New(value, maxDate, today)
	if picker.View, err = datepicker.ParseView(q.View); err != nil {
		return datepicker.Picker{}, err
	}
	if q.ViewDate != "" {
		if picker.ViewDate, err = parseDate(q.ViewDate); err != nil {
			return datepicker.Picker{}, err
		}
	}
	return picker, nil
}
