package prompt

// MapFormError exports mapFormError for testing.
var MapFormError = mapFormError

// SetPasswordReader replaces the terminal password reader for testing.
func (p *Prompter) SetPasswordReader(fn func() (string, error)) {
	p.readPassword = fn
}
