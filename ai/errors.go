// Copyright 2025 Poiesic Systems
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


package ai

import (
	"errors"
	"fmt"
)

// ErrAllProvidersExhausted is returned by the Registry when every
// provider in the cascade failed or was skipped. It deliberately
// carries no vendor error text; per-provider failures go to the log.
var ErrAllProvidersExhausted = errors.New("all providers exhausted")

// ErrorKind classifies a provider failure for cascade decisions.
type ErrorKind int

const (
	// KindUnavailable means the provider cannot serve requests at all,
	// typically missing credentials or a failed client handshake.
	KindUnavailable ErrorKind = iota + 1
	// KindTransport means the upstream call itself failed.
	KindTransport
	// KindOutputInvalid means the provider answered but the output
	// could not be decoded into the expected structure.
	KindOutputInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindTransport:
		return "transport"
	case KindOutputInvalid:
		return "output-invalid"
	default:
		return "unknown"
	}
}

// ProviderError is the typed failure every Provider method returns.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as a KindUnavailable failure.
func Unavailable(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: KindUnavailable, Err: err}
}

// Transport wraps err as a KindTransport failure.
func Transport(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: KindTransport, Err: err}
}

// OutputInvalid wraps err as a KindOutputInvalid failure.
func OutputInvalid(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: KindOutputInvalid, Err: err}
}
