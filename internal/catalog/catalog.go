package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Question is a single trivia record. Values are immutable once the
// catalog is built.
type Question struct {
	Value  int    `json:"value"`
	Prompt string `json:"question"`
	Answer string `json:"answer"`
}

// Category groups questions under a heading. Question order is display order.
type Category struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// TileID addresses one question by its category and question index.
type TileID struct {
	Category int
	Question int
}

// String returns the stable tile identifier, e.g. "tile-0-2".
func (t TileID) String() string {
	return fmt.Sprintf("tile-%d-%d", t.Category, t.Question)
}

// ParseTileID parses the form produced by TileID.String.
func ParseTileID(s string) (TileID, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "tile-")
	if !ok {
		return TileID{}, fmt.Errorf("invalid tile id %q: missing tile- prefix", s)
	}
	cs, qs, ok := strings.Cut(rest, "-")
	if !ok {
		return TileID{}, fmt.Errorf("invalid tile id %q", s)
	}
	c, err := strconv.Atoi(cs)
	if err != nil || c < 0 {
		return TileID{}, fmt.Errorf("invalid tile id %q: bad category index", s)
	}
	q, err := strconv.Atoi(qs)
	if err != nil || q < 0 {
		return TileID{}, fmt.Errorf("invalid tile id %q: bad question index", s)
	}
	return TileID{Category: c, Question: q}, nil
}

// CategoryHeaderID returns the identifier of a category's header.
func CategoryHeaderID(index int) string {
	return fmt.Sprintf("category-%d", index)
}

// Catalog is the ordered, read-only set of categories for a game.
type Catalog struct {
	categories []Category
	total      int
}

// New builds a catalog from the given categories. The input slices are
// copied so later mutation by the caller has no effect.
func New(categories ...Category) *Catalog {
	c := &Catalog{categories: make([]Category, len(categories))}
	for i, cat := range categories {
		c.categories[i] = Category{
			Name:      cat.Name,
			Questions: slices.Clone(cat.Questions),
		}
		c.total += len(cat.Questions)
	}
	return c
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Questions: slices.Clone(cat.Questions)}
	}
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Total returns the number of questions across all categories.
func (c *Catalog) Total() int {
	return c.total
}

// MaxScore returns the score for answering every question correctly.
func (c *Catalog) MaxScore() int {
	sum := 0
	for _, cat := range c.categories {
		for _, q := range cat.Questions {
			sum += q.Value
		}
	}
	return sum
}

// Question looks up the question for a tile.
func (c *Catalog) Question(id TileID) (Question, bool) {
	if id.Category < 0 || id.Category >= len(c.categories) {
		return Question{}, false
	}
	qs := c.categories[id.Category].Questions
	if id.Question < 0 || id.Question >= len(qs) {
		return Question{}, false
	}
	return qs[id.Question], true
}

// Tiles returns every tile id in category-major order.
func (c *Catalog) Tiles() []TileID {
	ids := make([]TileID, 0, c.total)
	for ci, cat := range c.categories {
		for qi := range cat.Questions {
			ids = append(ids, TileID{Category: ci, Question: qi})
		}
	}
	return ids
}

// ValueLabel renders a point value the way tiles display it.
func ValueLabel(value int) string {
	return fmt.Sprintf("$%d", value)
}

// TileLabel returns the accessible label for a tile, e.g. "Potpourri for $200".
func (c *Catalog) TileLabel(id TileID) string {
	q, ok := c.Question(id)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s for %s", c.categories[id.Category].Name, ValueLabel(q.Value))
}
