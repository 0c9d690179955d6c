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

package badger

import "github.com/docsift/docsift/storage"

// Repositories bundles the three stores sharing one backend.
type Repositories struct {
	Documents storage.DocumentRepository
	Profiles  storage.ProfileRepository
	Orders    storage.OrderRepository

	backend *Backend
}

// NewRepositories opens a BadgerDB directory and creates the document,
// profile and order repositories on top of it. Caller must Close when done.
func NewRepositories(path string) (*Repositories, error) {
	return newRepositories(path, false)
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must Close when done.
func NewMemoryRepositories() (*Repositories, error) {
	return newRepositories("", true)
}

func newRepositories(path string, inMemory bool) (*Repositories, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, err
	}

	docs, err := NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	profiles, err := NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	orders, err := NewOrderRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Repositories{
		Documents: docs,
		Profiles:  profiles,
		Orders:    orders,
		backend:   backend,
	}, nil
}

// Close releases the repositories and the shared backend.
func (r *Repositories) Close() error {
	if err := r.Orders.Close(); err != nil {
		r.backend.Close()
		return err
	}
	return r.backend.Close()
}
