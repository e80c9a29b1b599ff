package models

import "sort"

const DateLayout = "2006, 01 02"

type DateGroup struct {
	Date  string             `json:"date"`
	Files map[string][]Entry `json:"files"`
}

func (g DateGroup) Keys() []string {
	keys := make([]string, 0, len(g.Files))
	for k := range g.Files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
