package model

// SessionPrefs visitor preferences kept in the cookie session
type SessionPrefs struct {
	Theme string
}

// Feature landing page feature card
type Feature struct {
	TestID      string
	Title       string
	Description string
	Href        string
	Icon        string
}

// Swatch design system colour token
type Swatch struct {
	Name     string
	Variable string
	Hex      string
}

// TypeSample design system type scale entry
type TypeSample struct {
	Label string
	Class string
	Size  string
}

// ButtonVariant design system button style
type ButtonVariant struct {
	Label string
	Class string
}
