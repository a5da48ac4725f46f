package model

// CategoryAll is the sentinel category meaning "no category restriction".
const CategoryAll = "all"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the fixed, ordered set of categories a restaurant can reference.
type Catalog struct {
	categories []Category
	index      map[string]struct{}
}

func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{
		categories: append([]Category(nil), categories...),
		index:      make(map[string]struct{}, len(categories)),
	}
	for _, cat := range categories {
		c.index[cat.ID] = struct{}{}
	}
	return c
}

// DefaultCatalog returns the categories of the Belém islands directory.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Category{
		{ID: CategoryAll, Name: "Todos"},
		{ID: "restaurants", Name: "Restaurantes"},
		{ID: "piscina", Name: "Piscina"},
		{ID: "rio-guama", Name: "Rio Guamá"},
		{ID: "igarape-combu", Name: "Igarapé do Combu"},
		{ID: "hospedagem", Name: "Com Hospedagem"},
		{ID: "furo-paciencia", Name: "Furo da Paciência"},
		{ID: "furo-sao-benedito", Name: "Furo do São Benedito"},
		{ID: "piriquitaquara", Name: "Ig. do Piriquitaquara"},
	})
}

// All returns every category, sentinel included, in catalogue order.
func (c *Catalog) All() []Category {
	return append([]Category(nil), c.categories...)
}

// Contains reports whether id is a known category (sentinel included).
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// RecordIDs returns the ids a restaurant may list. The sentinel is excluded.
func (c *Catalog) RecordIDs() []string {
	ids := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.ID != CategoryAll {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}
