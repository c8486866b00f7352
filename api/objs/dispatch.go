package objs

import (
	"github.com/beevik/etree"
)

// Summary row of a dispatch as it appears in dispatch lists. The body text is
// only available through the single-dispatch world shard.
type DispatchOverview struct {
	ID          int
	Title       string
	Author      string
	Category    string
	Subcategory string
	Created     int64
	Edited      int64
	Views       int
	Score       int
}

// A full dispatch including its body text.
type Dispatch struct {
	DispatchOverview
	Text string
}

func decodeDispatchOverview(el *etree.Element) (DispatchOverview, error) {
	id, err := attrInt(el, "id")
	if err != nil {
		return DispatchOverview{}, err
	}

	d := DispatchOverview{
		ID:          id,
		Title:       text(el, "TITLE"),
		Author:      text(el, "AUTHOR"),
		Category:    text(el, "CATEGORY"),
		Subcategory: text(el, "SUBCATEGORY"),
	}

	if raw := text(el, "CREATED"); raw != "" {
		if d.Created, err = parseInt64(raw); err != nil {
			return d, err
		}
	}
	if raw := text(el, "EDITED"); raw != "" {
		if d.Edited, err = parseInt64(raw); err != nil {
			return d, err
		}
	}
	if raw := text(el, "VIEWS"); raw != "" {
		if d.Views, err = parseInt(raw); err != nil {
			return d, err
		}
	}
	if raw := text(el, "SCORE"); raw != "" {
		if d.Score, err = parseInt(raw); err != nil {
			return d, err
		}
	}

	return d, nil
}

func decodeDispatchList(container *etree.Element) ([]DispatchOverview, error) {
	if container == nil {
		return nil, nil
	}

	dispatches := container.SelectElements("DISPATCH")
	out := make([]DispatchOverview, 0, len(dispatches))

	for _, el := range dispatches {
		d, err := decodeDispatchOverview(el)
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}

func decodeDispatch(el *etree.Element) (*Dispatch, error) {
	if el == nil {
		return nil, nil
	}

	overview, err := decodeDispatchOverview(el)
	if err != nil {
		return nil, err
	}

	return &Dispatch{
		DispatchOverview: overview,
		Text:             text(el, "TEXT"),
	}, nil
}
