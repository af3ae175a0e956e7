package valueobjects

import "fmt"

type Category string

const (
	CategoryBugs        Category = "bugs"
	CategoryTechSupport Category = "tech_support"
	CategoryNewFeature  Category = "new_feature"
	CategoryOthers      Category = "others"
)

var validCategories = map[Category]bool{
	CategoryBugs:        true,
	CategoryTechSupport: true,
	CategoryNewFeature:  true,
	CategoryOthers:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// AllCategories returns every valid category.
func AllCategories() []Category {
	return []Category{CategoryBugs, CategoryTechSupport, CategoryNewFeature, CategoryOthers}
}
