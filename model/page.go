package model

type Page struct {
	URL          string   `json:"url"`
	Id           string   `json:"id"`
	CreatedByRun Ref      `json:"created_by_run"`
	Spread       Ref      `json:"spread"`
	BookTitle    string   `json:"book_title"`
	Side         string   `json:"side"`
	Sequence     int      `json:"sequence"`
	X            *float64 `json:"x"`
	Y            *float64 `json:"y"`
	W            *float64 `json:"w"`
	H            *float64 `json:"h"`
	Rot1         *float64 `json:"rot1"`
	Rot2         *float64 `json:"rot2"`
	Image        Image    `json:"image"`
	Label        string   `json:"label"`
	Lines        []Line   `json:"lines"`
}

// SideName expands the single-letter spread side code.
func (p *Page) SideName() string {
	switch p.Side {
	case "s":
		return "single"
	case "l":
		return "left"
	case "r":
		return "right"
	default:
		return p.Side
	}
}

type Line struct {
	URL      string `json:"url"`
	Id       string `json:"id"`
	Page     Ref    `json:"page"`
	Sequence int    `json:"sequence"`
	YMin     int    `json:"y_min"`
	YMax     int    `json:"y_max"`
	Image    Image  `json:"image"`
	Label    string `json:"label"`
}

func (l *Line) Height() int {
	return l.YMax - l.YMin
}
