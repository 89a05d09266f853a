package core

import (
	"sort"
	"strings"
)

// ChoiceItem is one row of a Chooser, such as a preset or a recent value.
type ChoiceItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type ChooserAction int

const (
	ChooserNone ChooserAction = iota
	ChooserMoved
	ChooserSelected
	ChooserCancelled
)

type ChooserResult struct {
	Action ChooserAction
	Item   ChoiceItem
}

// Chooser is a type-to-filter list driven by key names.
type Chooser struct {
	title    string
	items    []ChoiceItem
	filtered []ChoiceItem
	query    string
	cursor   int
}

func NewChooser(title string, items []ChoiceItem) *Chooser {
	c := &Chooser{title: strings.TrimSpace(title)}
	c.SetItems(items)
	return c
}

func (c *Chooser) Title() string { return c.title }
func (c *Chooser) Query() string { return c.query }
func (c *Chooser) Cursor() int   { return c.cursor }

func (c *Chooser) Items() []ChoiceItem {
	return append([]ChoiceItem(nil), c.filtered...)
}

func (c *Chooser) SetItems(items []ChoiceItem) {
	c.items = append([]ChoiceItem(nil), items...)
	c.refilter()
}

func (c *Chooser) SetQuery(q string) {
	c.query = q
	c.refilter()
}

func (c *Chooser) Current() (ChoiceItem, bool) {
	if len(c.filtered) == 0 {
		return ChoiceItem{}, false
	}
	return c.filtered[min(max(c.cursor, 0), len(c.filtered)-1)], true
}

func (c *Chooser) HandleKey(keyName string) ChooserResult {
	switch keyName {
	case "up", "ctrl+p":
		if c.cursor > 0 {
			c.cursor--
			return ChooserResult{Action: ChooserMoved}
		}
	case "down", "ctrl+n":
		if c.cursor < len(c.filtered)-1 {
			c.cursor++
			return ChooserResult{Action: ChooserMoved}
		}
	case "enter":
		if item, ok := c.Current(); ok {
			return ChooserResult{Action: ChooserSelected, Item: item}
		}
	case "esc":
		return ChooserResult{Action: ChooserCancelled}
	case "backspace":
		if len(c.query) > 0 {
			c.SetQuery(c.query[:len(c.query)-1])
		}
	default:
		if len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127 {
			c.SetQuery(c.query + keyName)
		}
	}
	return ChooserResult{Action: ChooserNone}
}

func (c *Chooser) refilter() {
	type scored struct {
		item  ChoiceItem
		score int
		index int
	}
	q := strings.TrimSpace(c.query)
	rows := make([]scored, 0, len(c.items))
	for idx, item := range c.items {
		search := item.Search
		if strings.TrimSpace(search) == "" {
			search = item.Label
		}
		if ok, score := subsequenceScore(search, q); ok {
			rows = append(rows, scored{item: item, score: score, index: idx})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].index < rows[j].index
	})
	c.filtered = c.filtered[:0]
	for _, r := range rows {
		c.filtered = append(c.filtered, r.item)
	}
	c.cursor = min(max(c.cursor, 0), max(len(c.filtered)-1, 0))
}

// subsequenceScore matches query letters in order, rewarding a match at the
// start and adjacent letters.
func subsequenceScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	l := strings.ToLower(label)
	q := strings.ToLower(query)
	score, from, prev := len(q), 0, -2
	for i := 0; i < len(q); i++ {
		j := strings.IndexByte(l[from:], q[i])
		if j < 0 {
			return false, 0
		}
		j += from
		if j == 0 {
			score += 10
		}
		if j == prev+1 {
			score += 3
		}
		prev, from = j, j+1
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}
