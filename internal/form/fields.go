package form

import "fmt"

// Field names one entry of the profile record.
type Field string

// Profile fields in display order.
const (
	FirstName  Field = "firstName"
	LastName   Field = "lastName"
	Email      Field = "email"
	Occupation Field = "occupation"
	Company    Field = "company"
	City       Field = "city"
	Bio        Field = "bio"
	Website    Field = "website"
	LinkedIn   Field = "linkedin"
)

// Kind is the type of value a field expects.
type Kind string

// Field kinds.
const (
	KindText      Kind = "text"
	KindEmail     Kind = "email"
	KindURL       Kind = "url"
	KindMultiline Kind = "multiline"
)

// Spec is the static description of a field.
type Spec struct {
	Name        Field
	Label       string
	Step        int
	Required    bool
	Kind        Kind
	Placeholder string
}

// specs lists every field in display order. On step 2 the optional links
// come before the bio, which is the only multiline input.
var specs = []Spec{
	{Name: FirstName, Label: "First Name", Step: 1, Required: true, Kind: KindText, Placeholder: "Ada"},
	{Name: LastName, Label: "Last Name", Step: 1, Required: true, Kind: KindText, Placeholder: "Lovelace"},
	{Name: Email, Label: "Email Address", Step: 1, Required: true, Kind: KindEmail, Placeholder: "ada@example.com"},
	{Name: Occupation, Label: "Occupation", Step: 2, Required: true, Kind: KindText, Placeholder: "Engineer"},
	{Name: Company, Label: "Company", Step: 2, Kind: KindText, Placeholder: "Analytical Engines Ltd"},
	{Name: City, Label: "City", Step: 2, Required: true, Kind: KindText, Placeholder: "London"},
	{Name: Website, Label: "Website", Step: 2, Kind: KindURL, Placeholder: "https://example.com"},
	{Name: LinkedIn, Label: "LinkedIn Profile", Step: 2, Kind: KindURL, Placeholder: "https://linkedin.com/in/..."},
	{Name: Bio, Label: "Professional Bio", Step: 2, Required: true, Kind: KindMultiline, Placeholder: "A few words about your work"},
}

var byName = func() map[Field]Spec {
	m := make(map[Field]Spec, len(specs))
	for _, s := range specs {
		m[s.Name] = s
	}
	return m
}()

// Fields returns all field specs in display order.
func Fields() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// FieldsForStep returns the specs owned by the given step, in display order.
// Steps without inputs return nil.
func FieldsForStep(step int) []Spec {
	var out []Spec
	for _, s := range specs {
		if s.Step == step {
			out = append(out, s)
		}
	}
	return out
}

// Lookup resolves a field by its canonical name.
func Lookup(name string) (Field, error) {
	f := Field(name)
	if _, ok := byName[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Describe returns the spec of a known field. Unknown fields yield a spec
// whose label is the raw name.
func Describe(f Field) Spec {
	if s, ok := byName[f]; ok {
		return s
	}
	return Spec{Name: f, Label: string(f)}
}

// Valid reports whether f is one of the profile fields.
func (f Field) Valid() bool {
	_, ok := byName[f]
	return ok
}

func (f Field) String() string {
	return string(f)
}
