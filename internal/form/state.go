package form

// State is the profile record. The zero value has every field empty.
type State struct {
	FirstName  string `yaml:"firstName" json:"firstName"`
	LastName   string `yaml:"lastName" json:"lastName"`
	Email      string `yaml:"email" json:"email"`
	Occupation string `yaml:"occupation" json:"occupation"`
	Company    string `yaml:"company" json:"company"`
	City       string `yaml:"city" json:"city"`
	Bio        string `yaml:"bio" json:"bio"`
	Website    string `yaml:"website" json:"website"`
	LinkedIn   string `yaml:"linkedin" json:"linkedin"`
}

// Get returns the value of f. Unknown fields read as empty.
func (s State) Get(f Field) string {
	switch f {
	case FirstName:
		return s.FirstName
	case LastName:
		return s.LastName
	case Email:
		return s.Email
	case Occupation:
		return s.Occupation
	case Company:
		return s.Company
	case City:
		return s.City
	case Bio:
		return s.Bio
	case Website:
		return s.Website
	case LinkedIn:
		return s.LinkedIn
	default:
		return ""
	}
}

// With returns a copy of s with f replaced by value. Unknown fields leave the
// copy unchanged; use Set for checked updates.
func (s State) With(f Field, value string) State {
	switch f {
	case FirstName:
		s.FirstName = value
	case LastName:
		s.LastName = value
	case Email:
		s.Email = value
	case Occupation:
		s.Occupation = value
	case Company:
		s.Company = value
	case City:
		s.City = value
	case Bio:
		s.Bio = value
	case Website:
		s.Website = value
	case LinkedIn:
		s.LinkedIn = value
	}
	return s
}

// Set is the string-keyed form of With. It rejects names that are not
// profile fields with ErrUnknownField.
func (s State) Set(name, value string) (State, error) {
	f, err := Lookup(name)
	if err != nil {
		return s, err
	}
	return s.With(f, value), nil
}

// IsEmpty reports whether every field is empty.
func (s State) IsEmpty() bool {
	return s == State{}
}

// FullName joins first and last name the way the review screen shows it.
func (s State) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}
