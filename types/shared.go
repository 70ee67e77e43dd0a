package types

import (
	"net/url"
	"strconv"
	"time"
)

// DateLayout is the format SendPost expects for "from" and "to" stat dates.
const DateLayout = "2006-01-02"

// ListOptions are the optional paging/search parameters
// accepted by every SendPost "get all" endpoint.
type ListOptions struct {
	Limit  int
	Offset int
	Search string
}

// Query encodes non-zero options as URL query parameters.
func (o ListOptions) Query() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

// DateRange is an inclusive [From, To] window of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// TrailingDays returns the window ending on the calendar day of now
// and starting the given number of days earlier.
func TrailingDays(now time.Time, days int) DateRange {
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateRange{
		From: to.AddDate(0, 0, -days),
		To:   to,
	}
}

func (r DateRange) FromString() string {
	return r.From.Format(DateLayout)
}

func (r DateRange) ToString() string {
	return r.To.Format(DateLayout)
}

// Query encodes the window as "from" and "to" query parameters.
func (r DateRange) Query() url.Values {
	q := url.Values{}
	q.Set("from", r.FromString())
	q.Set("to", r.ToString())
	return q
}

// ErrorResponse is the JSON body SendPost returns with a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
