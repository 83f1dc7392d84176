package release

import "strings"

// Messages flattens err into the ordered, non-empty list of messages shown to the user.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	msgs := flatten(err)
	if len(msgs) == 0 {
		return []string{"release failed"}
	}
	return msgs
}

func flatten(err error) []string {
	if errs, ok := joined(err); ok {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, flatten(e)...)
		}
		return msgs
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return []string{msg}
	}
	return nil
}

// joined returns the children of an errors.Join value. An fmt.Errorf with several
// %w verbs also unwraps to a slice, but its text carries context the children lack.
func joined(err error) ([]error, bool) {
	multi, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil, false
	}

	var errs []error
	var texts []string
	for _, e := range multi.Unwrap() {
		if e != nil {
			errs = append(errs, e)
			texts = append(texts, e.Error())
		}
	}
	if len(errs) == 0 || strings.Join(texts, "\n") != err.Error() {
		return nil, false
	}
	return errs, true
}
