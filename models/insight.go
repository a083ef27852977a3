// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HolisticInsightKey is the key under which the cross-dimension insight is
// stored in an [InsightSet].
const HolisticInsightKey = "holistic"

// InsightSet is the response of GET /v1/insights/llm: insight key (usually a
// dimension name) mapped to the insight serialized as a JSON string.
type InsightSet map[string]string

// Insight is a server-generated recommendation for one dimension.
type Insight struct {
	InspirationalParagraph string           `json:"inspirational_paragraph"`
	Habit                  Habit            `json:"habit"`
	Contents               []ContentElement `json:"contents"`
	AdditionalParagraph    string           `json:"additional_paragraph,omitempty"`
}

// Habit is the concrete habit an insight suggests.
type Habit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
}

// ContentElement is a recommended resource (article, video, book...).
type ContentElement struct {
	Name      string `json:"name"`
	Rationale string `json:"rationale"`
	Type      string `json:"type"`
	Link      string `json:"link"`
}

// GenerateResult is the response of GET /v1/insights/llm/generate/holistic.
type GenerateResult struct {
	Success bool `json:"success"`
}
