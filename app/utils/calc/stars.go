package calc

// StarSplit is the display breakdown of an average rating into full,
// half and empty stars. Full + Half + Empty is always 5.
type StarSplit struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// SplitStars breaks an average rating (0..5) into star counts: a half
// star is shown when the fractional part is at least 0.5.
func SplitStars(average float64) StarSplit {
	full := int(average)
	half := 0
	if average-float64(full) >= 0.5 {
		half = 1
	}
	return StarSplit{
		Full:  full,
		Half:  half,
		Empty: 5 - full - half,
	}
}
