package domain

import "strings"

// SportFamilyPrefix is the subject qcode prefix shared by all sport topics.
const SportFamilyPrefix = "15"

// CategoryVocabulary is one entry of the categories vocabulary.
type CategoryVocabulary struct {
	QCode    string `json:"qcode" mapstructure:"qcode" yaml:"qcode"`
	Name     string `json:"name" mapstructure:"name" yaml:"name"`
	Subject  string `json:"subject,omitempty" mapstructure:"subject" yaml:"subject"`
	IsActive bool   `json:"is_active" mapstructure:"is_active" yaml:"is_active"`
}

// IsSport reports whether the category is tied to the sport subject family.
func (c CategoryVocabulary) IsSport() bool {
	return c.IsActive && strings.HasPrefix(c.Subject, SportFamilyPrefix)
}

// TopicLocator maps a category and subject prefix to a locator that depends on
// whether the story is domestic.
type TopicLocator struct {
	Category      string
	SubjectPrefix string
	Domestic      string
	International string
}

// LocatorRules is the immutable reference data used to derive locators.
type LocatorRules struct {
	// SportFamilies maps the 5 digit sport family of a qcode (e.g. "15063") to its locator.
	SportFamilies map[string]string
	// GenericSport is used for sport categories when no specific sport is found.
	GenericSport string
	Topics       []TopicLocator
	// Categories maps an upper-case category letter to a locator.
	Categories map[string]string
	// DomesticCountry decides between the domestic and international topic locators.
	DomesticCountry string
	// DomesticPlaces are the recognized state codes of the domestic country.
	DomesticPlaces []string
}

// SportFamily returns the 5 digit family of a subject qcode, or "" when the
// qcode is not a sport topic.
func SportFamily(qcode string) string {
	if len(qcode) < 5 || !strings.HasPrefix(qcode, SportFamilyPrefix) {
		return ""
	}
	return qcode[:5]
}

// KnownLocators returns the set of every locator the rules can produce.
func (r LocatorRules) KnownLocators() map[string]struct{} {
	known := make(map[string]struct{})
	add := func(l string) {
		if l != "" {
			known[strings.ToUpper(l)] = struct{}{}
		}
	}
	for _, l := range r.SportFamilies {
		add(l)
	}
	add(r.GenericSport)
	for _, t := range r.Topics {
		add(t.Domestic)
		add(t.International)
	}
	for _, l := range r.Categories {
		add(l)
	}
	for _, p := range r.DomesticPlaces {
		add(p)
	}
	return known
}

// DefaultLocatorRules returns the desk rule tables used when no override is configured.
func DefaultLocatorRules() LocatorRules {
	return LocatorRules{
		SportFamilies: map[string]string{
			"15001": "AER",
			"15002": "ALP",
			"15003": "AFL",
			"15004": "ARC",
			"15005": "ATH",
			"15006": "BAD",
			"15007": "BASE",
			"15008": "BAS",
			"15011": "SKI",
			"15014": "BOX",
			"15015": "CAN",
			"15017": "CRI",
			"15019": "CYC",
			"15021": "DIV",
			"15022": "EQU",
			"15023": "FEN",
			"15024": "HOC",
			"15027": "GOL",
			"15028": "GYM",
			"15029": "HAN",
			"15031": "ICE",
			"15033": "JUD",
			"15039": "MBT",
			"15040": "MOT",
			"15042": "NET",
			"15043": "SKI",
			"15049": "ROW",
			"15050": "NRL",
			"15051": "RUG",
			"15052": "SAI",
			"15054": "SOC",
			"15061": "SUR",
			"15062": "SWI",
			"15063": "TTEN",
			"15065": "TEN",
			"15066": "TRI",
			"15067": "VOL",
			"15070": "WEI",
			"15072": "WRE",
		},
		GenericSport: "SPO",
		Topics: []TopicLocator{
			{Category: "C", SubjectPrefix: "10006", Domestic: "TRAVD", International: "TRAVI"},
		},
		Categories: map[string]string{
			"E": "ENT",
			"F": "FIN",
		},
		DomesticCountry: "Australia",
		DomesticPlaces:  []string{"NSW", "VIC", "QLD", "SA", "WA", "TAS", "ACT", "NT"},
	}
}

// DefaultCategories returns the categories vocabulary used when no vocabulary file is configured.
func DefaultCategories() []CategoryVocabulary {
	return []CategoryVocabulary{
		{QCode: "a", Name: "Australian General News", IsActive: true},
		{QCode: "c", Name: "Lifestyle and Travel", IsActive: true},
		{QCode: "e", Name: "Entertainment", Subject: "01000000", IsActive: true},
		{QCode: "f", Name: "Finance", Subject: "04000000", IsActive: true},
		{QCode: "i", Name: "World News", IsActive: true},
		{QCode: "r", Name: "Racing (Turf)", IsActive: true},
		{QCode: "s", Name: "Overseas Sport", Subject: "15000000", IsActive: true},
		{QCode: "t", Name: "Domestic Sport", Subject: "15000000", IsActive: true},
	}
}
