package validation

import (
	"net/url"
	"strings"

	"gscdash/internal/gsc"
)

// ValidateSearchType checks a search type against the supported vocabulary.
func ValidateSearchType(searchType string) bool {
	return gsc.IsSearchType(searchType)
}

// ValidateDevice checks a device filter value against the device vocabulary.
func ValidateDevice(device string) bool {
	for _, d := range gsc.DeviceOptions {
		if d == device {
			return true
		}
	}
	return false
}

// ValidateDateRange checks a range selection against the menu options.
func ValidateDateRange(selection string) bool {
	for _, r := range gsc.DateRangeOptions {
		if r == selection {
			return true
		}
	}
	return false
}

// ValidateDimensions checks that every dimension belongs to the set resolved
// for the search type and that none repeats. Order is the caller's business;
// it determines report grouping.
func ValidateDimensions(dims []string, searchType string) bool {
	if len(dims) == 0 {
		return false
	}
	allowed := gsc.ResolveDimensions(searchType)
	seen := make(map[string]bool, len(dims))
	for _, d := range dims {
		if seen[d] {
			return false
		}
		seen[d] = true
		ok := false
		for _, a := range allowed {
			if a == d {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// ValidateProperty checks that a property identifier looks like a Search
// Console site: a http(s) URL-prefix property or a domain property
// ("sc-domain:example.com"). This prevents arbitrary strings reaching the
// API path.
func ValidateProperty(property string) (bool, string) {
	if property == "" {
		return false, "Property is required"
	}

	if strings.HasPrefix(property, "sc-domain:") {
		if len(property) == len("sc-domain:") {
			return false, "Domain property must name a domain"
		}
		return true, ""
	}

	u, err := url.Parse(property)
	if err != nil {
		return false, "Invalid property URL"
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "Property must be a http(s) URL or sc-domain: identifier"
	}
	if u.Host == "" {
		return false, "Property must have a valid host"
	}
	return true, ""
}
