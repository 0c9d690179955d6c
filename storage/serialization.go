// Copyright 2026 Docsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"github.com/docsift/docsift/core"
)

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, core.DocumentMUS.Size(*doc))
	core.DocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	doc, _, err := core.DocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarshalProfile serializes a UserProfile to bytes.
func MarshalProfile(profile *core.UserProfile) []byte {
	buf := make([]byte, core.UserProfileMUS.Size(*profile))
	core.UserProfileMUS.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a UserProfile from bytes.
func UnmarshalProfile(data []byte) (*core.UserProfile, error) {
	profile, _, err := core.UserProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MarshalOrder serializes an Order to bytes.
func MarshalOrder(order *core.Order) []byte {
	buf := make([]byte, core.OrderMUS.Size(*order))
	core.OrderMUS.Marshal(*order, buf)
	return buf
}

// UnmarshalOrder deserializes an Order from bytes.
func UnmarshalOrder(data []byte) (*core.Order, error) {
	order, _, err := core.OrderMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
