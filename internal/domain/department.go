package domain

// Department represents an organizational unit that employees belong to.
type Department struct {
	ID   int64
	Name string
}
