package normalize

import (
	"regexp"
	"strings"
)

// suffixRules maps spelled-out street types to the abbreviated USPS
// forms the appraisal feed stores. Applied on whole words only.
var suffixRules = map[string]string{
	`\bSTREET\b`:    "ST",
	`\bAVENUE\b`:    "AVE",
	`\bBOULEVARD\b`: "BLVD",
	`\bDRIVE\b`:     "DR",
	`\bROAD\b`:      "RD",
	`\bLANE\b`:      "LN",
	`\bCOURT\b`:     "CT",
	`\bCIRCLE\b`:    "CIR",
	`\bPLACE\b`:     "PL",
	`\bTRAIL\b`:     "TRL",
	`\bPARKWAY\b`:   "PKWY",
	`\bHIGHWAY\b`:   "HWY",
	`\bTERRACE\b`:   "TER",
	`\bSQUARE\b`:    "SQ",
	`\bNORTH\b`:     "N",
	`\bSOUTH\b`:     "S",
	`\bEAST\b`:      "E",
	`\bWEST\b`:      "W",
	`\bAPARTMENT\b`: "APT",
}

var (
	rePunct      = regexp.MustCompile(`[^A-Z0-9 ]+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Situs normalizes a street address into the form stored in the
// parcel table's situs_address_norm column: uppercase, punctuation
// stripped, whitespace collapsed, street types abbreviated.
func Situs(address string) string {
	out := strings.ToUpper(address)
	out = rePunct.ReplaceAllString(out, " ")
	for pattern, abbrev := range suffixRules {
		out = regexp.MustCompile(pattern).ReplaceAllString(out, abbrev)
	}
	out = reWhitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
