// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserIDResponse is the response of GET /v1/user/id.
type UserIDResponse struct {
	UID string `json:"uid"`
}
