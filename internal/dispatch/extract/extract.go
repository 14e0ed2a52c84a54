package extract

import (
	"context"
	"regexp"
	"strings"
)

var (
	quotedRe    = regexp.MustCompile(`['"]([^'"]+)['"]`)
	bracketedRe = regexp.MustCompile(`\[([^\]]+)\]`)

	plateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)['"]([A-Z]{2}-\d{2}-[A-Z]{0,2}-?\d{4})['"]`),
		regexp.MustCompile(`(?i)([A-Z]{2}-\d{2}-[A-Z]{0,2}-?\d{4})`),
		regexp.MustCompile(`(?i)vehicle\s+['"]?([^'"]+?)['"]?(?:\s+(?:and|or|to|with|driver)|$)`),
		regexp.MustCompile(`(?i)['"]([^'"]+)['"]`),
	}

	driverRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)driver\s+['"]?([^'"]+?)['"]?(?:\s+(?:to|from|for|with|and)|$)`),
		regexp.MustCompile(`(?i)['"]([^'"]+)['"]`),
	}

	tripRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)trip\s+['"]?([^'"\s]+(?:\s+[^'"\s]+)*)['"]?`),
		regexp.MustCompile(`(?i)['"]([^'"]+)['"]`),
		regexp.MustCompile(`(?i)from\s+['"]?([^'"]+?)['"]?(?:\s+(?:trip|route)|$)`),
	}

	pathRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)['"]([^'"]+)['"]`),
		regexp.MustCompile(`(?i)path\s+['"]?([^'"\s]+(?:\s+[^'"\s]+)*)['"]?(?:\s+(?:to|has|contains|with)|$)`),
		regexp.MustCompile(`(?i)(?:for|using|on|in)\s+(?:the\s+)?path\s+['"]?([^'"]+?)['"]?(?:\s+|$)`),
	}

	routeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)route\s+['"]?([^'"]+?(?:\s+-\s+\d{1,2}:\d{2})?)['"]?(?:\s+|$)`),
		regexp.MustCompile(`(?i)['"]([^'"]+)['"]`),
	}

	stopsPhraseRe = regexp.MustCompile(`(?i)(?:using|with)\s+(?:stops?|the following)(?:\s+[:=])?\s*['"]?([^'"]+)['"]?`)
	stopsSplitRe  = regexp.MustCompile(`[,;]|,\s+and\s+`)
	listSplitRe   = regexp.MustCompile(`[,;]`)
)

// QuotedString pulls a quoted or bracketed value from text; failing that it
// tries keyword-anchored phrases and finally a short phrase following any of
// the keywords.
func (e *Extractor) QuotedString(text string, afterKeywords ...string) string {
	if m := quotedRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bracketedRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, kw := range afterKeywords {
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(kw) +
			`\s+['"]?(\w[\w\s\-\.]*?)['"]?(?:\s+(?:from|to|at|in|for|with|and|or)|$)`)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(text); m != nil {
			value := strings.TrimSpace(m[1])
			if len(value) > 1 {
				return value
			}
		}
	}

	// Last resort: up to three words after a bare keyword occurrence.
	words := strings.Fields(text)
	for i, word := range words {
		for _, kw := range afterKeywords {
			if !strings.EqualFold(word, kw) || i+1 >= len(words) {
				continue
			}
			end := i + 4
			if end > len(words) {
				end = len(words)
			}
			value := strings.TrimSpace(strings.Join(words[i+1:end], " "))
			if len(value) > 1 {
				return strings.TrimRight(value, ".,;")
			}
		}
	}
	return ""
}

// LicensePlate extracts a vehicle plate. Plate grammar is LL-DD-LL-DDDD or
// LL-DD-DDDD; results are uppercased and must be longer than 3 characters.
func (e *Extractor) LicensePlate(ctx context.Context, text string) string {
	for _, re := range plateRes {
		if m := re.FindStringSubmatch(text); m != nil {
			plate := strings.ToUpper(strings.TrimSpace(m[1]))
			if len(plate) > 3 {
				return plate
			}
		}
	}

	vehicles, err := e.catalog.ListVehicles(ctx)
	if err != nil {
		return ""
	}
	upper := strings.ToUpper(text)
	for _, v := range vehicles {
		plate := strings.ToUpper(v.LicensePlate)
		if plate != "" && strings.Contains(upper, plate) {
			return plate
		}
	}
	return ""
}

// DriverName extracts a driver reference, falling back to containment
// against known driver names in either direction.
func (e *Extractor) DriverName(ctx context.Context, text string) string {
	for _, re := range driverRes {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if len(name) > 1 {
				return name
			}
		}
	}

	if v := e.QuotedString(text, "named", "driver"); v != "" {
		return v
	}

	drivers, err := e.catalog.ListDrivers(ctx)
	if err != nil {
		return ""
	}
	lower := strings.ToLower(text)
	for _, d := range drivers {
		name := strings.ToLower(d.Name)
		if name != "" && (strings.Contains(lower, name) || strings.Contains(name, lower)) {
			return d.Name
		}
	}
	return ""
}

// TripIdentifier extracts a trip display-name reference.
func (e *Extractor) TripIdentifier(ctx context.Context, text string) string {
	for _, re := range tripRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	trips, err := e.catalog.ListTripsWithRoutes(ctx)
	if err != nil {
		return ""
	}
	lower := strings.ToLower(text)
	for _, t := range trips {
		if t.DisplayName != "" && strings.Contains(lower, strings.ToLower(t.DisplayName)) {
			return t.DisplayName
		}
	}
	return ""
}

// PathName extracts a path reference.
func (e *Extractor) PathName(ctx context.Context, text string) string {
	for _, re := range pathRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if result := strings.TrimSpace(m[1]); result != "" {
				return result
			}
		}
	}

	paths, err := e.catalog.ListPathsWithStops(ctx)
	if err != nil {
		return ""
	}
	lower := strings.ToLower(text)
	for _, p := range paths {
		if p.Name != "" && strings.Contains(lower, strings.ToLower(p.Name)) {
			return p.Name
		}
	}
	return ""
}

// RouteName extracts a route display-name reference.
func (e *Extractor) RouteName(ctx context.Context, text string) string {
	for _, re := range routeRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}

	routes, err := e.catalog.ListRoutesWithPaths(ctx)
	if err != nil {
		return ""
	}
	lower := strings.ToLower(text)
	for _, r := range routes {
		if r.RouteDisplayName != "" && strings.Contains(lower, strings.ToLower(r.RouteDisplayName)) {
			return r.RouteDisplayName
		}
	}
	return ""
}

// StopsList extracts an ordered list of stop names from a "using/with stops"
// phrase or a bracketed list, split on commas, semicolons, or ", and".
func (e *Extractor) StopsList(text string) []string {
	if m := stopsPhraseRe.FindStringSubmatch(text); m != nil {
		return splitClean(stopsSplitRe, m[1])
	}
	if m := bracketedRe.FindStringSubmatch(text); m != nil {
		return splitClean(listSplitRe, m[1])
	}
	return nil
}

func splitClean(re *regexp.Regexp, s string) []string {
	var out []string
	for _, part := range re.Split(s, -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
