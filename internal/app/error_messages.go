// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// flourish client.
//
// All Msg* constants are human-readable message strings that the terminal UI
// shows inline or in its error overlay to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording throughout
// the client.
package app

const (
	// MsgServerUnavailable is shown when the backend cannot be reached
	// (connection refused, DNS failure, timeout).
	MsgServerUnavailable = "No network connection or the server is unavailable"

	// MsgSessionRejected is shown when the backend refused the session
	// cookie (401/403).
	MsgSessionRejected = "The server rejected this session"

	// MsgServerFailure is shown when the backend answered with a 5xx status.
	MsgServerFailure = "The server failed to process the request"

	// MsgRequestRejected is shown when the backend refused the request body.
	MsgRequestRejected = "The server rejected the request"

	// MsgNotFound is shown when the requested resource does not exist.
	MsgNotFound = "Not found"

	// MsgUnexpectedError prefixes errors that have no dedicated message.
	MsgUnexpectedError = "Unexpected error"

	// MsgInvalidAnswerValue is shown when an answer falls outside 1..10.
	MsgInvalidAnswerValue = "Answers must be between 1 and 10"

	// MsgInvalidQuestionID is shown when the backend served a question whose
	// id cannot be submitted.
	MsgInvalidQuestionID = "The questionnaire contains an invalid question"

	// MsgNoQuestions is shown when there is nothing to submit.
	MsgNoQuestions = "There are no questions to answer"

	// MsgUserIDUnavailable is shown when neither the backend nor the local
	// cache knows the session user.
	MsgUserIDUnavailable = "User id is not available"

	// MsgResponsesSubmitted confirms a successful questionnaire submission.
	MsgResponsesSubmitted = "Responses submitted"

	// MsgNoInsights is shown on an empty insight set.
	MsgNoInsights = "No insights yet. Answer more questions to unlock them."

	// MsgMalformedInsight is shown when an insight payload cannot be
	// decoded or misses required parts.
	MsgMalformedInsight = "This insight could not be displayed"

	// MsgHolisticUnavailable is shown when the holistic insight is opened
	// before one has been generated.
	MsgHolisticUnavailable = "The holistic insight is not available yet"

	// MsgHolisticGenerationFailed is shown when the backend reported a failed
	// generation.
	MsgHolisticGenerationFailed = "Holistic insight generation failed"

	// MsgHolisticGenerated confirms a successful generation request.
	MsgHolisticGenerated = "Holistic insight regenerated"

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "Copied to clipboard"

	// MsgNothingToCopy is shown when the user id has not been loaded.
	MsgNothingToCopy = "Nothing to copy"

	// MsgConfirmReset asks before the session is wiped.
	MsgConfirmReset = "Reset the session? All answers and insights will be lost."
)
