package processor

import "strings"

// DefaultRegion is the city-wide label used when no district keyword
// matches a title.
const DefaultRegion = "Butuan City"

// districtKeywords maps lowercase title keywords to barangay labels. Order
// is significant: a headline mentioning several districts gets the first
// match in this list.
var districtKeywords = []struct {
	Keyword  string
	District string
}{
	{"bancasi", "Bancasi"},
	{"ampayon", "Ampayon"},
	{"libertad", "Libertad"},
	{"langihan", "Langihan"},
	{"baan", "Baan"},
	{"doongan", "Doongan"},
	{"tiniwisan", "Tiniwisan"},
	{"golden ribbon", "Golden Ribbon"},
	{"bading", "Bading"},
	{"downtown", "Downtown"},
}

// DetectDistrict infers a district label from the title text alone.
func DetectDistrict(title string) string {
	text := strings.ToLower(title)
	for _, kw := range districtKeywords {
		if strings.Contains(text, kw.Keyword) {
			return kw.District
		}
	}
	return DefaultRegion
}
