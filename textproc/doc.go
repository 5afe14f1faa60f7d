// Package textproc normalizes artifact text into comparable terms.
//
// Prose goes through ProcessText: letters only, camelCase and snake_case
// splitting, lowercasing, stopword removal and Snowball stemming. Source code
// goes through ProcessCode, which first scans comments and identifiers with
// ExtractCode and drops language keywords.
//
//	terms := textproc.Tokens("The flightController sends UAVs waypoints.")
//	// → [flight control send uav waypoint]
package textproc
