package domain

// Category groups catalog items; subcategory names are unique per category.
type Category struct {
	ID            string   `json:"id" firestore:"-"`
	Name          string   `json:"name" firestore:"name"`
	Subcategories []string `json:"subcategories" firestore:"subcategories"`
}

// HasSubcategory reports whether the category already contains the named
// subcategory.
func (c *Category) HasSubcategory(name string) bool {
	for _, s := range c.Subcategories {
		if s == name {
			return true
		}
	}
	return false
}
