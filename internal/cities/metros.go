package cities

import (
	"strconv"

	"listingprep/internal/dataset"
)

// Columns of the metro lookup frame.
const (
	MetroColumn = "metro_full"
	LatColumn   = "lat"
	LngColumn   = "lng"
)

// Metro is one canonical metro area with its coordinates.
type Metro struct {
	Name string
	Lat  float64
	Lng  float64
}

// metros is the static coordinate table for the metro areas covered by the
// listing dataset. Read-only after initialization.
var metros = []Metro{
	{"Atlanta-Sandy Springs-Roswell", 33.7490, -84.3880},
	{"Pittsburgh", 40.4406, -79.9959},
	{"Boston-Cambridge-Newton", 42.3601, -71.0589},
	{"Tampa-St. Petersburg-Clearwater", 27.9506, -82.4572},
	{"Baltimore-Columbia-Towson", 39.2904, -76.6122},
	{"Portland-Vancouver-Hillsboro", 45.5152, -122.6784},
	{"Philadelphia-Camden-Wilmington", 39.9526, -75.1652},
	{"New York-Newark-Jersey City", 40.7128, -74.0060},
	{"Chicago-Naperville-Elgin", 41.8781, -87.6298},
	{"Orlando-Kissimmee-Sanford", 28.5383, -81.3792},
	{"Seattle-Tacoma-Bellevue", 47.6062, -122.3321},
	{"San Francisco-Oakland-Fremont", 37.7749, -122.4194},
	{"San Diego-Chula Vista-Carlsbad", 32.7157, -117.1611},
	{"Austin-Round Rock-San Marcos", 30.2672, -97.7431},
	{"St. Louis", 38.6270, -90.1994},
	{"Sacramento-Roseville-Folsom", 38.5816, -121.4944},
	{"Phoenix-Mesa-Chandler", 33.4484, -112.0740},
	{"Riverside-San Bernardino-Ontario", 34.0522, -117.2898},
	{"San Antonio-New Braunfels", 29.4241, -98.4936},
	{"Detroit-Warren-Dearborn", 42.3314, -83.0458},
	{"Cincinnati", 39.1031, -84.5120},
	{"Houston-Pasadena-The Woodlands", 29.7604, -95.3698},
	{"Charlotte-Concord-Gastonia", 35.2271, -80.8431},
	{"Denver-Aurora-Centennial", 39.7392, -104.9903},
	{"Los Angeles-Long Beach-Anaheim", 34.0522, -118.2437},
	{"Washington-Arlington-Alexandria", 38.9072, -77.0369},
	{"Dallas-Fort Worth-Arlington", 32.7767, -96.7970},
	{"Minneapolis-St. Paul-Bloomington", 44.9778, -93.2650},
	{"Las Vegas-Henderson-North Las Vegas", 36.1699, -115.1398},
	{"Miami-Fort Lauderdale-West Palm Beach", 25.7617, -80.1918},
}

// MetroFrame builds a fresh lookup frame (metro_full, lat, lng) from the
// static table. Callers may mutate the returned frame freely; the underlying
// table is never modified.
func MetroFrame() *dataset.Frame {
	frame := dataset.NewFrame([]string{MetroColumn, LatColumn, LngColumn})
	for _, metro := range metros {
		frame.AppendRow([]string{
			metro.Name,
			FormatCoordinate(metro.Lat),
			FormatCoordinate(metro.Lng),
		})
	}

	return frame
}

// FormatCoordinate renders a coordinate the way it is written to CSV.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
