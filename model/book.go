package model

// Image is the IIIF rendition set the API attaches to imaged and cropped records.
type Image struct {
	Tif       string `json:"tif,omitempty"`
	IIIFBase  string `json:"iiif_base,omitempty"`
	WebURL    string `json:"web_url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	FullTif   string `json:"full_tif,omitempty"`
	Buffer    string `json:"buffer,omitempty"`
}

type Run struct {
	URL            string `json:"url"`
	Id             string `json:"id"`
	Book           Ref    `json:"book"`
	DateStarted    string `json:"date_started"`
	Label          string `json:"label"`
	ComponentCount int    `json:"component_count"`
}

type Spread struct {
	URL      string `json:"url"`
	Id       string `json:"id"`
	Label    string `json:"label"`
	Book     Ref    `json:"book"`
	Sequence int    `json:"sequence"`
	Image    Image  `json:"image"`
}

type Book struct {
	URL            string  `json:"url"`
	Id             string  `json:"id"`
	Eebo           *int    `json:"eebo"`
	Vid            *int    `json:"vid"`
	Tcp            string  `json:"tcp"`
	Estc           string  `json:"estc"`
	Prefix         string  `json:"prefix"`
	PPPublisher    string  `json:"pp_publisher"`
	PQPublisher    string  `json:"pq_publisher"`
	PQTitle        string  `json:"pq_title"`
	PQAuthor       string  `json:"pq_author"`
	PQURL          string  `json:"pq_url"`
	PQYearVerbatim string  `json:"pq_year_verbatim"`
	PQYearEarly    *int    `json:"pq_year_early"`
	PQYearLate     *int    `json:"pq_year_late"`
	TXYearEarly    *int    `json:"tx_year_early"`
	TXYearLate     *int    `json:"tx_year_late"`
	DateEarly      string  `json:"date_early"`
	DateLate       string  `json:"date_late"`
	PDF            string  `json:"pdf"`
	NSpreads       int     `json:"n_spreads"`
	CoverSpread    *Spread `json:"cover_spread"`
	Label          string  `json:"label"`
	Zipfile        string  `json:"zipfile"`
	ZipPath        string  `json:"zip_path"`
	Starred        bool    `json:"starred"`
	Ignored        bool    `json:"ignored"`
	IsEeboBook     bool    `json:"is_eebo_book"`
	Repository     string  `json:"repository"`
	PPPrinter      string  `json:"pp_printer"`
	ColloqPrinter  string  `json:"colloq_printer"`
	PPNotes        string  `json:"pp_notes"`
}

// Title prefers the cataloged title and falls back to the record label.
func (b *Book) Title() string {
	if b.PQTitle != "" {
		return b.PQTitle
	}
	if b.Label != "" {
		return b.Label
	}
	return b.Id
}

// Publisher prefers the team's assertion over the catalog's.
func (b *Book) Publisher() string {
	if b.PPPublisher != "" {
		return b.PPPublisher
	}
	return b.PQPublisher
}

type BookRuns struct {
	Pages      []Run `json:"pages"`
	Lines      []Run `json:"lines"`
	Characters []Run `json:"characters"`
}

type BookDetail struct {
	Book
	Spreads []Ref    `json:"spreads"`
	AllRuns BookRuns `json:"all_runs"`
}
