package window

import "time"

// Layout renders a boundary as ISO-8601 with a numeric timezone offset,
// e.g. "2024-03-01T00:00:00+02:00".
const Layout = "2006-01-02T15:04:05-07:00"

// Window is the pair of midnight boundaries covering the previous calendar
// day: the start of yesterday and the start of today, in a single location.
type Window struct {
	YesterdayStart time.Time
	TodayStart     time.Time
}

// At derives the extraction window from the calendar date of now, in now's
// location. Both boundaries are local midnights; they are 24 hours apart on
// every day except a DST transition, where calendar-day semantics win.
func At(now time.Time) Window {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return Window{
		YesterdayStart: today.AddDate(0, 0, -1),
		TodayStart:     today,
	}
}

// From returns the formatted start-of-yesterday boundary.
func (w Window) From() string {
	return w.YesterdayStart.Format(Layout)
}

// To returns the formatted start-of-today boundary.
func (w Window) To() string {
	return w.TodayStart.Format(Layout)
}
