package validation

// Errors maps a dot-joined field path to the messages accumulated for it, in
// the order the rules were evaluated.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}

// StringRule either normalizes the value or reports a violation message.
// A rule that fails leaves the value untouched for the rules that follow.
type StringRule func(value string) (string, string)

// Apply evaluates rules in order against value, recording every violation
// under field. Normalizations from earlier rules feed later ones.
func Apply(field, value string, errs Errors, rules ...StringRule) string {
	for _, rule := range rules {
		next, message := rule(value)
		if message != "" {
			errs.Add(field, message)
			continue
		}
		value = next
	}
	return value
}
