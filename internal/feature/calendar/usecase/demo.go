package usecase

import (
	"time"

	"tradetracker/internal/feature/calendar/domain/entity"
)

// demoEvents mirrors a typical high-activity release day across the major
// currencies.
func demoEvents() []entity.Event {
	day := func(h, m int) time.Time {
		return time.Date(2024, 12, 20, h, m, 0, 0, time.UTC)
	}
	return []entity.Event{
		{ID: 1, Name: "Non-Farm Payrolls", Currency: "USD", Category: "Employment", Date: day(13, 30), Forecast: "200K", Previous: "227K", Impact: entity.ImpactHigh},
		{ID: 2, Name: "Core CPI m/m", Currency: "USD", Category: "Inflation", Date: day(13, 30), Actual: "0.3%", Forecast: "0.2%", Previous: "0.3%", Impact: entity.ImpactHigh},
		{ID: 3, Name: "Retail Sales m/m", Currency: "USD", Category: "Consumer", Date: day(13, 30), Forecast: "0.5%", Previous: "0.4%", Impact: entity.ImpactMedium},
		{ID: 4, Name: "ECB Press Conference", Currency: "EUR", Category: "Central Bank", Date: day(14, 30), Impact: entity.ImpactHigh},
		{ID: 5, Name: "German ZEW Economic Sentiment", Currency: "EUR", Category: "Economic Sentiment", Date: day(10, 0), Actual: "7.4", Forecast: "6.5", Previous: "7.0", Impact: entity.ImpactMedium},
		{ID: 6, Name: "BOE Meeting Minutes", Currency: "GBP", Category: "Central Bank", Date: day(9, 30), Impact: entity.ImpactMedium},
		{ID: 7, Name: "Canadian CPI y/y", Currency: "CAD", Category: "Inflation", Date: day(13, 30), Forecast: "2.0%", Previous: "2.0%", Impact: entity.ImpactHigh},
		{ID: 8, Name: "Australian Employment Change", Currency: "AUD", Category: "Employment", Date: day(0, 30), Actual: "35.6K", Forecast: "25.0K", Previous: "15.9K", Impact: entity.ImpactHigh},
		{ID: 9, Name: "Japanese Trade Balance", Currency: "JPY", Category: "Trade", Date: day(23, 50), Actual: "-0.46T", Forecast: "-0.68T", Previous: "-0.46T", Impact: entity.ImpactLow},
		{ID: 10, Name: "Swiss SNB Interest Rate", Currency: "CHF", Category: "Central Bank", Date: day(8, 30), Actual: "0.50%", Forecast: "0.75%", Previous: "1.00%", Impact: entity.ImpactHigh},
		{ID: 11, Name: "FOMC Statement", Currency: "USD", Category: "Central Bank", Date: day(19, 0), Impact: entity.ImpactHigh},
		{ID: 12, Name: "NZD GDP q/q", Currency: "NZD", Category: "GDP", Date: day(21, 45), Forecast: "0.3%", Previous: "-0.2%", Impact: entity.ImpactMedium},
	}
}
