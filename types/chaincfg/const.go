/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

const (
	// SatoshiPerAIPG is the number of base units in one coin.
	SatoshiPerAIPG = 1e8

	// DefaultNetName is selected when nothing else is configured.
	DefaultNetName = MainNetName
)
