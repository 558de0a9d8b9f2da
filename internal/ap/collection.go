package ap

import "encoding/json"

// Collection is the top-level object returned by a collection IRI. The
// first property may be a page URL or an inlined page; kept raw and
// resolved by the crawler.
type Collection struct {
	AtContext  any             `json:"@context,omitempty"`
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	TotalItems int             `json:"totalItems,omitempty"`
	First      json.RawMessage `json:"first,omitempty"`
}

// CollectionPage is one page of an ordered collection. Items may be
// IRIs or embedded objects depending on the collection.
type CollectionPage struct {
	AtContext    any               `json:"@context,omitempty"`
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	PartOf       string            `json:"partOf,omitempty"`
	OrderedItems []json.RawMessage `json:"orderedItems"`
	Next         string            `json:"next,omitempty"`
}
