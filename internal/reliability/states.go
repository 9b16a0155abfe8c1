package reliability

// stateCodes maps full state names to USPS postal codes for the 50 states
// plus the District of Columbia, as used by the consolidated dataset.
var stateCodes = map[string]string{
	"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR",
	"California": "CA", "Colorado": "CO", "Connecticut": "CT", "Delaware": "DE",
	"District of Columbia": "DC", "Florida": "FL", "Georgia": "GA", "Hawaii": "HI",
	"Idaho": "ID", "Illinois": "IL", "Indiana": "IN", "Iowa": "IA", "Kansas": "KS",
	"Kentucky": "KY", "Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
	"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN", "Mississippi": "MS",
	"Missouri": "MO", "Montana": "MT", "Nebraska": "NE", "Nevada": "NV",
	"New Hampshire": "NH", "New Jersey": "NJ", "New Mexico": "NM", "New York": "NY",
	"North Carolina": "NC", "North Dakota": "ND", "Ohio": "OH", "Oklahoma": "OK",
	"Oregon": "OR", "Pennsylvania": "PA", "Rhode Island": "RI", "South Carolina": "SC",
	"South Dakota": "SD", "Tennessee": "TN", "Texas": "TX", "Utah": "UT",
	"Vermont": "VT", "Virginia": "VA", "Washington": "WA", "West Virginia": "WV",
	"Wisconsin": "WI", "Wyoming": "WY",
}

// stateNames is the reverse index, built once at init.
var stateNames = func() map[string]string {
	names := make(map[string]string, len(stateCodes))
	for name, code := range stateCodes {
		names[code] = name
	}
	return names
}()

// StateCode resolves a state identifier (full name or postal code) to its
// postal code. The second return value reports whether the state is known.
func StateCode(s string) (string, bool) {
	if code, ok := stateCodes[s]; ok {
		return code, true
	}
	if _, ok := stateNames[s]; ok {
		return s, true
	}
	return "", false
}

// StateName returns the full name for a postal code, or the code itself
// when unknown.
func StateName(code string) string {
	if name, ok := stateNames[code]; ok {
		return name
	}
	return code
}
