package models

// Choice is a stored value with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoiceSet is an ordered list of allowed values for a field.
type ChoiceSet []Choice

// Contains reports whether value is one of the set's values.
func (cs ChoiceSet) Contains(value string) bool {
	for _, c := range cs {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Label returns the display label of value, or value itself when unknown.
func (cs ChoiceSet) Label(value string) string {
	for _, c := range cs {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// Values returns the stored values in order.
func (cs ChoiceSet) Values() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Value
	}
	return out
}

func choices(pairs ...string) ChoiceSet {
	cs := make(ChoiceSet, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		cs = append(cs, Choice{Value: pairs[i], Label: pairs[i+1]})
	}
	return cs
}

var (
	DegreeTypes = choices(
		"BS", "Bachelor of Science",
		"MS", "Master of Science",
		"BBA", "Bachelor of Business Administration",
		"MBA", "Master of Business Administration",
		"Diploma", "Diploma",
		"PhD", "Doctor of Philosophy",
		"Other", "Other",
	)

	Designations = choices(
		"Professor", "Professor",
		"Associate Professor", "Associate Professor",
		"Assistant Professor", "Assistant Professor",
		"Lecturer", "Lecturer",
		"Instructor", "Instructor",
	)

	LabTypes = choices(
		"programming", "Programming Lab",
		"multimedia", "Multimedia Lab",
		"networking", "Networking Lab",
		"research", "Research Lab",
	)

	VisitInterests = choices(
		"Computer Labs", "Computer Labs",
		"Hostel Facilities", "Hostel Facilities",
		"Both", "Both",
		"Other Facilities", "Other Facilities",
	)

	BookCategories = choices(
		"cs", "Computer Science",
		"management", "Management",
		"engineering", "Engineering",
		"business", "Business",
		"economics", "Economics",
		"mathematics", "Mathematics",
		"fiction", "Fiction",
		"textbooks", "Textbooks",
		"history", "History",
		"biography", "Biography",
		"science", "Science",
		"arts", "Arts",
		"language", "Language",
		"reference", "Reference",
		"philosophy", "Philosophy",
		"religion", "Religion",
		"ba_economics", "BA Economics",
		"children", "Children",
		"magazines", "Magazines",
	)

	FeeDepartments = choices(
		"engineering", "Engineering",
		"business", "Business",
		"computing", "Computing",
		"management", "Management",
		"arts", "Arts",
	)

	Programs = choices(
		"ICS", "ICS",
		"Computer Science", "Computer Science",
		"I.Com", "I.Com",
		"D.Com", "D.Com",
		"DIT", "DIT",
		"Business Admin", "Business Admin",
		"FSc Pre-Engineering", "FSc Pre-Engineering",
		"Commerce", "Commerce",
		"Other", "Other",
	)
)
