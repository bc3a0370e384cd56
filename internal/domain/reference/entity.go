package reference

// Department is org reference data used to scope reports.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Subcategory is one selectable reason under a category.
type Subcategory struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Category is one entry of the idle-reason taxonomy. Categories and their
// subcategories are ordered reference data; a submitted reason's subcategory
// must belong to its category's set.
type Category struct {
	Key           string        `json:"key"`
	Label         string        `json:"label"`
	Subcategories []Subcategory `json:"subcategories"`
}

// HasSubcategory reports whether key belongs to the category's subcategory set.
func (c Category) HasSubcategory(key string) bool {
	for _, sc := range c.Subcategories {
		if sc.Key == key {
			return true
		}
	}
	return false
}

// Taxonomy is the ordered category set for one org.
type Taxonomy []Category

// Find returns the category with the given key.
func (t Taxonomy) Find(key string) (Category, bool) {
	for _, c := range t {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
