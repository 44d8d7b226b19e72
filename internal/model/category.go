package model

// Category is an entry in the static category lookup table.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Account is an entry in the static account lookup table.
type Account struct {
	ID   string
	Name string
	Mask string // last four digits shown in the UI
	Kind string // checking, savings, credit
}
