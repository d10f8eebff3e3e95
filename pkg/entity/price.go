package entity

import "github.com/flowbridge/plunet/pkg/xmltree"

// PriceLine is one line of a job or item price breakdown.
type PriceLine struct {
	PriceLineID   int
	Amount        float64
	AmountPerUnit float64
	Memo          string
	PriceUnitID   int
	Sequence      int
	TaxType       int
	TimePerUnit   float64
	UnitPrice     float64
	Extra         map[string]any
}

var priceLineFields = []string{
	"priceLineID", "amount", "amount_perUnit", "memo", "priceUnitID",
	"sequence", "taxType", "time_perUnit", "unit_price",
}

var priceLineHints = []string{"priceLineID", "amount", "unit_price", "priceUnitID"}

// ParsePriceLine locates and coerces a price line anywhere in the tree.
func ParsePriceLine(t xmltree.Tree) (*PriceLine, bool) {
	rec, ok := findRecord(t, []string{"priceLine"}, priceLineHints)
	if !ok {
		return nil, false
	}
	return priceLineFrom(rec), true
}

// ParsePriceLineList locates a list of price lines.
func ParsePriceLineList(t xmltree.Tree) []*PriceLine {
	recs := findRecordList(t, []string{"priceLine"}, priceLineHints)
	lines := make([]*PriceLine, 0, len(recs))
	for _, rec := range recs {
		lines = append(lines, priceLineFrom(rec))
	}
	return lines
}

func priceLineFrom(rec xmltree.Tree) *PriceLine {
	p := &PriceLine{Extra: extraFields(rec, priceLineFields)}
	p.PriceLineID, _ = fieldInt(rec, "priceLineID")
	p.Amount, _ = fieldNumber(rec, "amount")
	p.AmountPerUnit, _ = fieldNumber(rec, "amount_perUnit")
	p.Memo, _ = fieldText(rec, "memo")
	p.PriceUnitID, _ = fieldInt(rec, "priceUnitID")
	p.Sequence, _ = fieldInt(rec, "sequence")
	p.TaxType, _ = fieldInt(rec, "taxType")
	p.TimePerUnit, _ = fieldNumber(rec, "time_perUnit")
	p.UnitPrice, _ = fieldNumber(rec, "unit_price")
	return p
}

// priceLinesFrom coerces a raw list into price lines, skipping entries
// that do not duck-type.
func priceLinesFrom(list []any) []*PriceLine {
	var lines []*PriceLine
	for _, item := range list {
		sub, ok := item.(xmltree.Tree)
		if !ok {
			continue
		}
		if looksLike(sub, priceLineHints) {
			lines = append(lines, priceLineFrom(sub))
			continue
		}
		if rec, found := findRecord(sub, []string{"priceLine"}, priceLineHints); found {
			lines = append(lines, priceLineFrom(rec))
		}
	}
	return lines
}

// Pricelist is a parsed price list record.
type Pricelist struct {
	PricelistID     int
	Currency        string
	Memo            string
	PricelistName   string
	WithWhiteSpaces bool
	Extra           map[string]any
}

var pricelistFields = []string{
	"pricelistID", "currency", "memo", "pricelistName", "withWhiteSpaces",
}

var pricelistHints = []string{"pricelistID", "pricelistName", "currency"}

// ParsePricelist locates and coerces a price list record.
func ParsePricelist(t xmltree.Tree) (*Pricelist, bool) {
	rec, ok := findRecord(t, []string{"pricelist"}, pricelistHints)
	if !ok {
		return nil, false
	}
	return pricelistFrom(rec), true
}

// ParsePricelistList locates a list of price list records.
func ParsePricelistList(t xmltree.Tree) []*Pricelist {
	recs := findRecordList(t, []string{"pricelist"}, pricelistHints)
	lists := make([]*Pricelist, 0, len(recs))
	for _, rec := range recs {
		lists = append(lists, pricelistFrom(rec))
	}
	return lists
}

func pricelistFrom(rec xmltree.Tree) *Pricelist {
	p := &Pricelist{Extra: extraFields(rec, pricelistFields)}
	p.PricelistID, _ = fieldInt(rec, "pricelistID")
	p.Currency, _ = fieldText(rec, "currency")
	p.Memo, _ = fieldText(rec, "memo")
	p.PricelistName, _ = fieldText(rec, "pricelistName")
	if s, ok := fieldText(rec, "withWhiteSpaces"); ok {
		p.WithWhiteSpaces = s == "true" || s == "1"
	}
	return p
}
