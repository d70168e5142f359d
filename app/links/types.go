package links

import (
	"errors"
)

var ErrNoURLs = errors.New("no URLs found")

type Category string

const (
	CategoryUserinfo Category = "userinfo"
	CategoryPostinfo Category = "postinfo"
	CategoryGarbage  Category = "garbage"
)

// Categories lists every category in output order.
var Categories = []Category{CategoryUserinfo, CategoryPostinfo, CategoryGarbage}

type Result struct {
	Userinfo []string
	Postinfo []string
	Garbage  []string

	Total  int // raw matches, duplicates included
	Unique int // distinct URL strings among raw matches
}

func (r *Result) Links(category Category) []string {
	switch category {
	case CategoryUserinfo:
		return r.Userinfo
	case CategoryPostinfo:
		return r.Postinfo
	case CategoryGarbage:
		return r.Garbage
	default:
		return nil
	}
}
