// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Answer scale bounds. Unanswered questions are submitted with
// DefaultAnswerValue.
const (
	MinAnswerValue     = 1
	MaxAnswerValue     = 10
	DefaultAnswerValue = 5
)

// Answer is a locally cached answer to one question.
type Answer struct {
	QuestionID string
	Value      int
	UpdatedAt  time.Time
}

// Answers maps question id to the chosen value.
type Answers map[string]int

// AnswerPayload is a single entry of [SubmitResponsesRequest].
type AnswerPayload struct {
	QuestionID int64  `json:"questionId"`
	Kind       string `json:"kind,omitempty"`
	Value      int    `json:"value"`
}

// SubmitResponsesRequest is the body of POST /v1/responses.
type SubmitResponsesRequest struct {
	UserID  string          `json:"userId"`
	Answers []AnswerPayload `json:"answers"`
}
