package catalog

// Ref is an {id, name} pair used to populate select options.
type Ref struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
