package gsc

// SearchTypes is the fixed search type vocabulary supported by the
// Search Analytics API.
var SearchTypes = []string{"web", "image", "video", "news", "discover", "googleNews"}

// BaseDimensions are always available regardless of search type.
var BaseDimensions = []string{"page", "query", "country", "date"}

// DeviceOptions lists the device filter choices. "All Devices" disables the
// filter.
var DeviceOptions = []string{DeviceAll, "desktop", "mobile", "tablet"}

// DeviceAll is the filter value that keeps every device class.
const DeviceAll = "All Devices"

// IsSearchType reports whether s belongs to the supported vocabulary.
func IsSearchType(s string) bool {
	for _, t := range SearchTypes {
		if t == s {
			return true
		}
	}
	return false
}

// ResolveDimensions returns the dimensions applicable to a search type: the
// base set, widened with "device" when the type is part of the supported
// vocabulary. The rule only ever widens, and "device" is appended at most
// once.
func ResolveDimensions(searchType string) []string {
	dims := make([]string, len(BaseDimensions))
	copy(dims, BaseDimensions)
	if IsSearchType(searchType) {
		dims = append(dims, "device")
	}
	return dims
}
