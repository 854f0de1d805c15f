// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// StoredShadow is the persisted form of a shadow: the JSON encoded resource
// and the version pair it was last seen under.
type StoredShadow struct {
	Resource      json.RawMessage `json:"resource"`
	ServerVersion int64           `json:"server_version"`
	ClientVersion int64           `json:"client_version"`
}
