// Package loadsheet reads the per-flight YAML load sheet: which aircraft is
// being loaded, named weights per station, and fuel uplift in litres.
//
// Parsing rejects malformed and negative weights; Validate additionally
// checks station names against the selected profile's arm table.
package loadsheet
