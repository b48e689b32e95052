package catalog

import (
	"taxengine/internal/model"

	"github.com/shopspring/decimal"
)

func zip(code, city, state, rate string) model.ZipRateEntry {
	return model.ZipRateEntry{ZipCode: code, City: city, State: state, Rate: decimal.RequireFromString(rate)}
}

// ZipRates returns the built-in base rate table. The slice is freshly
// allocated on each call.
func ZipRates() []model.ZipRateEntry {
	return []model.ZipRateEntry{
		// Demo cities
		zip("90210", "Beverly Hills", "CA", "0.095"),
		zip("10001", "New York", "NY", "0.08875"),
		zip("33101", "Miami", "FL", "0.07"),
		zip("73301", "Austin", "TX", "0.0825"),
		zip("98101", "Seattle", "WA", "0.1025"),

		// Major metro areas
		zip("60601", "Chicago", "IL", "0.1025"),
		zip("02101", "Boston", "MA", "0.0625"),
		zip("80201", "Denver", "CO", "0.0881"),
		zip("30301", "Atlanta", "GA", "0.089"),
		zip("19101", "Philadelphia", "PA", "0.08"),
		zip("85001", "Phoenix", "AZ", "0.083"),
		zip("92101", "San Diego", "CA", "0.0775"),
		zip("75201", "Dallas", "TX", "0.0825"),
		zip("77001", "Houston", "TX", "0.0825"),

		// State capitals
		zip("36101", "Montgomery", "AL", "0.10"),
		zip("99501", "Anchorage", "AK", "0.00"),
		zip("72201", "Little Rock", "AR", "0.095"),
		zip("95814", "Sacramento", "CA", "0.0825"),
		zip("06101", "Hartford", "CT", "0.0635"),
		zip("19901", "Dover", "DE", "0.00"),
		zip("32301", "Tallahassee", "FL", "0.07"),
		zip("96801", "Honolulu", "HI", "0.045"),
		zip("83701", "Boise", "ID", "0.06"),
		zip("46201", "Indianapolis", "IN", "0.07"),
		zip("50301", "Des Moines", "IA", "0.07"),
		zip("66601", "Topeka", "KS", "0.095"),
		zip("40601", "Frankfort", "KY", "0.06"),
		zip("70801", "Baton Rouge", "LA", "0.0945"),
		zip("04330", "Augusta", "ME", "0.055"),
		zip("21401", "Annapolis", "MD", "0.06"),
		zip("48901", "Lansing", "MI", "0.06"),
		zip("55101", "St. Paul", "MN", "0.0775"),
		zip("39201", "Jackson", "MS", "0.07"),
		zip("65101", "Jefferson City", "MO", "0.0823"),
		zip("59601", "Helena", "MT", "0.00"),
		zip("68501", "Lincoln", "NE", "0.075"),
		zip("89501", "Reno", "NV", "0.0825"),
		zip("03301", "Concord", "NH", "0.00"),
		zip("08601", "Trenton", "NJ", "0.06625"),
		zip("87501", "Santa Fe", "NM", "0.0838"),
		zip("27601", "Raleigh", "NC", "0.0725"),
		zip("58501", "Bismarck", "ND", "0.07"),
		zip("43201", "Columbus", "OH", "0.0775"),
		zip("73101", "Oklahoma City", "OK", "0.0875"),
		zip("97301", "Salem", "OR", "0.00"),
		zip("02901", "Providence", "RI", "0.07"),
		zip("29201", "Columbia", "SC", "0.09"),
		zip("57501", "Pierre", "SD", "0.06"),
		zip("37201", "Nashville", "TN", "0.0975"),
		zip("84101", "Salt Lake City", "UT", "0.0725"),
		zip("05601", "Montpelier", "VT", "0.06"),
		zip("23218", "Richmond", "VA", "0.06"),
		zip("98501", "Olympia", "WA", "0.09"),
		zip("25301", "Charleston", "WV", "0.07"),
		zip("53701", "Madison", "WI", "0.055"),
		zip("82001", "Cheyenne", "WY", "0.05"),
	}
}
