// Package geo resolves place names to geographic coordinates. The
// fine-tuning datasets reference named locations (cities, landmarks) and
// dataset validation uses this table to flag names the deployed tool
// server will not recognize.
package geo

// Location is a named place with its camera-target coordinates.
type Location struct {
	Name      string
	Longitude float64
	Latitude  float64
	// Heading is the preferred camera orientation in degrees
	// (0 = north, 90 = east); -1 means not set.
	Heading float64
}

var locations = []Location{
	{Name: "new york", Longitude: -74.0060, Latitude: 40.7128, Heading: -1},
	{Name: "london", Longitude: -0.1276, Latitude: 51.5072, Heading: -1},
	{Name: "paris", Longitude: 2.3522, Latitude: 48.8566, Heading: -1},
	{Name: "tokyo", Longitude: 139.6917, Latitude: 35.6895, Heading: -1},
	{Name: "sydney", Longitude: 151.2093, Latitude: -33.8688, Heading: -1},
	{Name: "san francisco", Longitude: -122.4194, Latitude: 37.7749, Heading: -1},
	{Name: "los angeles", Longitude: -118.2437, Latitude: 34.0522, Heading: -1},
	{Name: "berlin", Longitude: 13.4050, Latitude: 52.5200, Heading: -1},
	{Name: "moscow", Longitude: 37.6173, Latitude: 55.7558, Heading: -1},
	{Name: "beijing", Longitude: 116.4074, Latitude: 39.9042, Heading: -1},
	{Name: "rio de janeiro", Longitude: -43.1729, Latitude: -22.9068, Heading: -1},
	{Name: "cairo", Longitude: 31.2357, Latitude: 30.0444, Heading: -1},
	{Name: "mumbai", Longitude: 72.8777, Latitude: 19.0760, Heading: -1},
	{Name: "singapore", Longitude: 103.8198, Latitude: 1.3521, Heading: -1},
	{Name: "dubai", Longitude: 55.2708, Latitude: 25.2048, Heading: -1},
	{Name: "rome", Longitude: 12.4964, Latitude: 41.9028, Heading: -1},
	{Name: "madrid", Longitude: -3.7038, Latitude: 40.4168, Heading: -1},
	{Name: "amsterdam", Longitude: 4.9041, Latitude: 52.3676, Heading: -1},
	{Name: "toronto", Longitude: -79.3832, Latitude: 43.6532, Heading: -1},
	{Name: "mexico city", Longitude: -99.1332, Latitude: 19.4326, Heading: -1},
	{Name: "statue of liberty", Longitude: -74.0445, Latitude: 40.6892, Heading: 90},
	{Name: "eiffel tower", Longitude: 2.2945, Latitude: 48.8584, Heading: 0},
	{Name: "big ben", Longitude: -0.1246, Latitude: 51.5007, Heading: 270},
	{Name: "golden gate bridge", Longitude: -122.4783, Latitude: 37.8199, Heading: 0},
	{Name: "sydney opera house", Longitude: 151.2153, Latitude: -33.8568, Heading: 180},
	{Name: "great pyramid of giza", Longitude: 31.1342, Latitude: 29.9792, Heading: -1},
	{Name: "taj mahal", Longitude: 78.0421, Latitude: 27.1751, Heading: 0},
	{Name: "colosseum", Longitude: 12.4922, Latitude: 41.8902, Heading: -1},
	{Name: "mount everest", Longitude: 86.9250, Latitude: 27.9881, Heading: -1},
	{Name: "grand canyon", Longitude: -112.1129, Latitude: 36.1069, Heading: -1},
	{Name: "niagara falls", Longitude: -79.0742, Latitude: 43.0962, Heading: -1},
	{Name: "jfk airport", Longitude: -73.7781, Latitude: 40.6413, Heading: -1},
	{Name: "heathrow airport", Longitude: -0.4543, Latitude: 51.4700, Heading: -1},
	{Name: "the big apple", Longitude: -74.0060, Latitude: 40.7128, Heading: -1},
	{Name: "the city of light", Longitude: 2.3522, Latitude: 48.8566, Heading: -1},
}

// All returns the known locations.
func All() []Location {
	return locations
}
