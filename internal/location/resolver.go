package location

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/paulmach/orb"

	"runmap/internal/activity"
)

// Location is the resolved geography for one activity. Fields are empty
// when the description yields no match; Coordinate is nil when no embedded
// latitude/longitude pair was found.
type Location struct {
	Country    string
	Province   string
	City       string
	Coordinate *orb.Point // [lng, lat]
}

var (
	cityPattern     = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{2,}(?:市|自治州|特别行政区|盟|地区)`)
	provincePattern = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{2,}(?:省|自治区)`)
	districtPattern = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{2,}(?:区|县)`)
	countryPattern  = regexp.MustCompile(`[\x{4e00}-\x{9fa5}].*[\x{4e00}-\x{9fa5}]`)
	coordPattern    = regexp.MustCompile(`'latitude': (-?\d+\.\d+).*?'longitude': (-?\d+\.\d+)`)
)

// Resolver derives a Location from an activity's free-text location
// description. Resolution is heuristic string matching and is memoized per
// activity id, since the repository's aggregation pass resolves every
// activity and the TUI resolves them again on demand.
type Resolver struct {
	gazetteer Gazetteer

	mu    sync.Mutex
	cache map[int64]Location
}

// NewResolver creates a Resolver backed by the given gazetteer. A nil
// gazetteer falls back to the built-in China city list.
func NewResolver(g Gazetteer) *Resolver {
	if g == nil {
		g = ChinaCities
	}
	return &Resolver{
		gazetteer: g,
		cache:     make(map[int64]Location),
	}
}

// Resolve returns the location for the given activity, computing and
// caching it on first use. It never fails: an absent or unmatchable
// description yields empty fields.
func (r *Resolver) Resolve(a *activity.Activity) Location {
	if a == nil {
		return Location{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if loc, ok := r.cache[a.RunID]; ok {
		return loc
	}

	loc := r.resolve(a.LocationCountry)
	r.cache[a.RunID] = loc
	return loc
}

func (r *Resolver) resolve(description string) Location {
	var loc Location

	if description != "" {
		cityMatches := cityPattern.FindAllString(description, -1)
		for _, known := range r.gazetteer.Cities() {
			if containsString(cityMatches, known) {
				loc.City = known
				break
			}
		}

		if province := provincePattern.FindString(description); province != "" {
			loc.Province = province
			// Some descriptions embed the geocoder's raw lat/lng pair.
			loc.Coordinate = extractCoordinate(description)
		}

		loc.Country = extractCountry(description)
	}

	// Municipality-level cities have no enclosing province: the city is
	// promoted to the province slot and the district becomes the city.
	if containsString(MunicipalityCities, loc.City) {
		loc.Province = loc.City
		if description != "" {
			districts := districtPattern.FindAllString(description, -1)
			if len(districts) > 0 {
				loc.City = districts[len(districts)-1]
			}
		}
	}

	return loc
}

// extractCountry takes the last comma-delimited segment of the
// description, falling back to the third segment when the last one holds
// no CJK run, and returns the span from the first to the last CJK
// character in it.
func extractCountry(description string) string {
	segments := strings.Split(description, ",")
	country := countryPattern.FindString(segments[len(segments)-1])
	if country == "" && len(segments) >= 3 {
		country = countryPattern.FindString(segments[2])
	}
	return country
}

func extractCoordinate(description string) *orb.Point {
	m := coordPattern.FindStringSubmatch(description)
	if m == nil {
		return nil
	}
	lat, err1 := strconv.ParseFloat(m[1], 64)
	lng, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	p := orb.Point{lng, lat}
	return &p
}

func containsString(list []string, s string) bool {
	if s == "" {
		return false
	}
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
