package model

import "strings"

// Author is a single contributor record displayed in the byline.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name"`

	// Affiliation is the author's institution.
	Affiliation string `json:"affiliation"`
}

// JoinNames concatenates all author names with ", " in input order.
func JoinNames(authors []Author) string {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// JoinAffiliations concatenates all author affiliations with "; " in
// input order.
//
// Design decision: affiliations are not de-duplicated. The byline mirrors
// the input sequence exactly, so two authors from the same institution
// list it twice, matching how the byline was originally laid out.
func JoinAffiliations(authors []Author) string {
	affiliations := make([]string, len(authors))
	for i, a := range authors {
		affiliations[i] = a.Affiliation
	}
	return strings.Join(affiliations, "; ")
}
