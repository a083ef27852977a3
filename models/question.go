// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Question is a single questionnaire item as served by GET /v1/questions.
//
// The backend returns questions as a JSON object keyed by question id, so the
// id itself is not part of the payload; [QuestionSet.Ordered] attaches it.
type Question struct {
	// ID is the key the question was served under. It is numeric in practice
	// and is sent back as a number when answers are submitted.
	ID string `json:"-"`

	// Category and Subcategory are optional taxonomy fields used to group
	// questions by life domain.
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`

	// Text is the prompt shown to the user.
	Text string `json:"text"`

	// MinLabel and MaxLabel describe the two ends of the answer scale.
	MinLabel string `json:"minLabel"`
	MaxLabel string `json:"maxLabel"`
}

// QuestionSet is the raw keyed response of GET /v1/questions.
type QuestionSet map[string]Question

// Ordered returns the questions with their ids attached, sorted by numeric id.
// Non-numeric ids sort after numeric ones, lexicographically.
func (s QuestionSet) Ordered() []Question {
	out := make([]Question, 0, len(s))
	for id, q := range s {
		q.ID = id
		out = append(out, q)
	}

	slices.SortFunc(out, func(a, b Question) int {
		an, aErr := strconv.ParseInt(a.ID, 10, 64)
		bn, bErr := strconv.ParseInt(b.ID, 10, 64)
		switch {
		case aErr == nil && bErr == nil:
			return cmp.Compare(an, bn)
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		default:
			return strings.Compare(a.ID, b.ID)
		}
	})

	return out
}
