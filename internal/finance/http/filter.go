package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/finance/internal/finance/aggregate"
	"github.com/aussiebroadwan/finance/internal/finance/domain"
)

var errStartAfterEnd = errors.New("start must not be after end")

// parseCriteria reads start, end and repeated category parameters. A
// category key with no values (?category=) selects nothing; no key at all
// selects every category in range.
func parseCriteria(q url.Values) (aggregate.Criteria, error) {
	var c aggregate.Criteria

	if s := q.Get("start"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return c, err
		}
		c.Start = d
	}
	if s := q.Get("end"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return c, err
		}
		c.End = d
	}
	if !c.Start.IsZero() && !c.End.IsZero() && c.Start.After(c.End) {
		return c, errStartAfterEnd
	}

	if values, ok := q["category"]; ok {
		c.Categories = []string{}
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				c.Categories = append(c.Categories, v)
			}
		}
	}
	return c, nil
}
