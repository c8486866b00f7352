// =========================================================================
// THIS PACKAGE HOLDS THE TYPED RESPONSE OBJECTS AND THEIR DECODERS.
//
// A DECODER RECEIVES THE RESOURCE'S PARSED XML SUBTREE PLUS THE SHARD LIST
// OF THE ORIGINATING REQUEST AND POPULATES EXACTLY THE FIELDS WHOSE SHARD
// WAS REQUESTED. EVERYTHING ELSE STAYS NIL, NO DEFAULTS.
// =========================================================================

package objs

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/samber/lo"
)

// Text of the idx-th occurrence of tag under el, or "" when absent. Several
// shards share a wire tag and disambiguate purely by this index.
func textAt(el *etree.Element, tag string, idx int) string {
	children := el.SelectElements(tag)
	if idx >= len(children) {
		return ""
	}

	return strings.TrimSpace(children[idx].Text())
}

func text(el *etree.Element, tag string) string {
	return textAt(el, tag, 0)
}

// The following *Of helpers return nil when the tag is absent so decoders can
// distinguish "remote omitted the field" from a zero value.

func strOf(el *etree.Element, tag string) *string {
	c := el.SelectElement(tag)
	if c == nil {
		return nil
	}

	s := strings.TrimSpace(c.Text())
	return &s
}

func intOf(el *etree.Element, tag string) (*int, error) {
	c := el.SelectElement(tag)
	if c == nil {
		return nil, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(c.Text()))
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func int64Of(el *etree.Element, tag string) (*int64, error) {
	c := el.SelectElement(tag)
	if c == nil {
		return nil, nil
	}

	v, err := strconv.ParseInt(strings.TrimSpace(c.Text()), 10, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func floatOf(el *etree.Element, tag string) (*float64, error) {
	c := el.SelectElement(tag)
	if c == nil {
		return nil, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(c.Text()), 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// Splits the text of tag on sep into an ordered slice. A missing tag yields
// nil, an empty tag an empty slice.
func delimitedOf(el *etree.Element, tag string, sep string) []string {
	c := el.SelectElement(tag)
	if c == nil {
		return nil
	}

	raw := strings.TrimSpace(c.Text())
	if raw == "" {
		return []string{}
	}

	return strings.Split(raw, sep)
}

// Texts of all childTag elements under the container tag, in document order.
func childTexts(el *etree.Element, tag string, childTag string) []string {
	c := el.SelectElement(tag)
	if c == nil {
		return nil
	}

	return lo.Map(c.SelectElements(childTag), func(e *etree.Element, _ int) string {
		return strings.TrimSpace(e.Text())
	})
}

func attr(el *etree.Element, key string) string {
	return strings.TrimSpace(el.SelectAttrValue(key, ""))
}

func attrInt(el *etree.Element, key string) (int, error) {
	raw := attr(el, key)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
