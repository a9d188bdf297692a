package utils

import (
	"log"
	"time"

	"github.com/scmhub/calendar"
)

// MarketCalendar reports NYSE trading status. Price resolution itself only
// needs the fetched series (missing days resolve to the prior close); the
// calendar feeds health reporting and buy-date annotations.
type MarketCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

func NewMarketCalendar() *MarketCalendar {
	// Equity histories come from US-listed symbols; xnys covers them.
	cal := calendar.GetCalendar("xnys")
	if cal == nil {
		log.Printf("WARNING: Failed to load calendar for MIC 'xnys'. Using simple fallback (Mon-Fri 09:30-16:00 NY).")
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC
		}
		return &MarketCalendar{Fallback: true, Timezone: nyLoc}
	}

	return &MarketCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (mc *MarketCalendar) IsTradingDay(date time.Time) bool {
	if mc.Timezone != nil {
		date = date.In(mc.Timezone)
	}

	if mc.Fallback {
		wd := date.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	}
	return mc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpen checks if the market is open at a specific minute.
func (mc *MarketCalendar) IsOpen(t time.Time) bool {
	if mc.Timezone != nil {
		t = t.In(mc.Timezone)
	}

	if mc.Fallback {
		if !mc.IsTradingDay(t) {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 NY Time
		return (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16
	}

	return mc.Calendar.IsOpen(t)
}
