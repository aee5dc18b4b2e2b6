package repository

import (
	"strings"

	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
)

// clause is one conjunct of a WHERE predicate together with the named
// parameters it binds. Caller data only ever travels through args.
type clause struct {
	expr string
	args map[string]interface{}
}

type predicate struct {
	clauses []clause
}

func (p *predicate) and(expr string, args map[string]interface{}) {
	p.clauses = append(p.clauses, clause{expr: expr, args: args})
}

// where renders " WHERE c1 AND c2 ..." and the merged named arguments.
func (p *predicate) where() (string, map[string]interface{}) {
	args := map[string]interface{}{}
	if len(p.clauses) == 0 {
		return "", args
	}

	exprs := make([]string, 0, len(p.clauses))
	for _, c := range p.clauses {
		exprs = append(exprs, c.expr)
		for k, v := range c.args {
			args[k] = v
		}
	}
	return " WHERE " + strings.Join(exprs, " AND "), args
}

// productPredicate translates listing filters into the shared predicate of
// the count and page queries.
func productPredicate(f *dto.ProductFilters) *predicate {
	p := &predicate{}
	p.and("p.deleted = false", nil)

	if f.Search != nil && *f.Search != "" {
		p.and("(p.title ILIKE :search OR p.description ILIKE :search)", map[string]interface{}{
			"search": "%" + escapeLike(*f.Search) + "%",
		})
	}

	if len(f.Categories) > 0 {
		p.and("p.category_id IN (:category_ids)", map[string]interface{}{
			"category_ids": f.Categories,
		})
	}

	// Both bounds apply to the same variant, so a product only matches when
	// one of its variants is inside the range.
	if f.PriceMin != nil || f.PriceMax != nil {
		conds := []string{"v.product_id = p.id"}
		args := map[string]interface{}{}
		if f.PriceMin != nil {
			conds = append(conds, "COALESCE(v.offer_price, v.price) >= :price_min")
			args["price_min"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			conds = append(conds, "COALESCE(v.offer_price, v.price) <= :price_max")
			args["price_max"] = *f.PriceMax
		}
		p.and("EXISTS (SELECT 1 FROM product_variants v WHERE "+strings.Join(conds, " AND ")+")", args)
	}

	return p
}

// orderBy whitelists the listing sort orders.
func orderBy(sortBy *dto.SortBy) string {
	if sortBy != nil {
		switch *sortBy {
		case dto.SortPriceLow:
			return "COALESCE(pv.offer_price, pv.price) ASC NULLS LAST, p.id ASC"
		case dto.SortPriceHigh:
			return "COALESCE(pv.offer_price, pv.price) DESC NULLS LAST, p.id ASC"
		}
	}
	return "p.created_at DESC, p.id DESC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
