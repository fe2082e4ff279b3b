/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownHDKeyID describes an error where the provided extended key
// carries a version prefix that is not registered for the network.
var ErrUnknownHDKeyID = errors.New("unknown hd extended key version bytes")

// DataLoadError is reported when a bundled resource is missing or cannot
// be parsed. It is never fatal: the affected table stays empty.
type DataLoadError struct {
	Resource string
	Err      error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("unable to load resource %q: %v", e.Resource, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// ConfigInvariantError means the static data of a profile is inconsistent.
// A profile that produced it must never become active.
type ConfigInvariantError struct {
	Profile string
	Field   string
	Reason  string
}

func (e *ConfigInvariantError) Error() string {
	if e.Profile == "" {
		return fmt.Sprintf("invalid network config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid network config %q: %s: %s", e.Profile, e.Field, e.Reason)
}

// UnknownProfileError is returned for a network name that was never registered.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown network profile %q", e.Name)
}

func invariantErr(field, format string, args ...interface{}) error {
	return &ConfigInvariantError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// withProfile stamps the profile name on a ConfigInvariantError produced by
// one of the profile's sub-tables.
func withProfile(name string, err error) error {
	var cfgErr *ConfigInvariantError
	if errors.As(err, &cfgErr) {
		if cfgErr.Profile == "" {
			cfgErr.Profile = name
		}
		return err
	}
	return errors.Wrapf(err, "network %s", name)
}
