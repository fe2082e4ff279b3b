/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"github.com/btcsuite/btcutil"
)

// BurnKind enumerates the privileged asset operations that require a burn
// output.
type BurnKind int

const (
	IssueAsset BurnKind = iota
	ReissueAsset
	IssueSubAsset
	IssueUniqueAsset
	IssueMsgChannelAsset
	IssueQualifierAsset
	IssueSubQualifierAsset
	IssueRestrictedAsset
	AddNullQualifierTag

	numBurnKinds = iota
)

var burnKindNames = [numBurnKinds]string{
	"IssueAsset",
	"ReissueAsset",
	"IssueSubAsset",
	"IssueUniqueAsset",
	"IssueMsgChannelAsset",
	"IssueQualifierAsset",
	"IssueSubQualifierAsset",
	"IssueRestrictedAsset",
	"AddNullQualifierTag",
}

// BurnKinds lists every operation kind.
func BurnKinds() []BurnKind {
	kinds := make([]BurnKind, numBurnKinds)
	for i := range kinds {
		kinds[i] = BurnKind(i)
	}
	return kinds
}

func (k BurnKind) String() string {
	if k < 0 || k >= numBurnKinds {
		return "Unknown"
	}
	return burnKindNames[k]
}

// BurnAmounts is the fee burned by each operation kind.
type BurnAmounts struct {
	IssueAsset             btcutil.Amount
	ReissueAsset           btcutil.Amount
	IssueSubAsset          btcutil.Amount
	IssueUniqueAsset       btcutil.Amount
	IssueMsgChannelAsset   btcutil.Amount
	IssueQualifierAsset    btcutil.Amount
	IssueSubQualifierAsset btcutil.Amount
	IssueRestrictedAsset   btcutil.Amount
	AddNullQualifierTag    btcutil.Amount
}

// BurnAddresses is the destination of each burn output, plus the global
// burn address that is not tied to an operation.
type BurnAddresses struct {
	IssueAsset             string
	ReissueAsset           string
	IssueSubAsset          string
	IssueUniqueAsset       string
	IssueMsgChannelAsset   string
	IssueQualifierAsset    string
	IssueSubQualifierAsset string
	IssueRestrictedAsset   string
	AddNullQualifierTag    string
	Global                 string
}

// BurnTable resolves burn amount and address per operation kind.
type BurnTable struct {
	amounts   BurnAmounts
	addresses BurnAddresses

	amountByKind  [numBurnKinds]btcutil.Amount
	addressByKind [numBurnKinds]string
}

// NewBurnTable checks that every operation kind has a non-negative amount
// and an address.
func NewBurnTable(amounts BurnAmounts, addresses BurnAddresses) (*BurnTable, error) {
	t := &BurnTable{
		amounts:   amounts,
		addresses: addresses,
		amountByKind: [numBurnKinds]btcutil.Amount{
			IssueAsset:             amounts.IssueAsset,
			ReissueAsset:           amounts.ReissueAsset,
			IssueSubAsset:          amounts.IssueSubAsset,
			IssueUniqueAsset:       amounts.IssueUniqueAsset,
			IssueMsgChannelAsset:   amounts.IssueMsgChannelAsset,
			IssueQualifierAsset:    amounts.IssueQualifierAsset,
			IssueSubQualifierAsset: amounts.IssueSubQualifierAsset,
			IssueRestrictedAsset:   amounts.IssueRestrictedAsset,
			AddNullQualifierTag:    amounts.AddNullQualifierTag,
		},
		addressByKind: [numBurnKinds]string{
			IssueAsset:             addresses.IssueAsset,
			ReissueAsset:           addresses.ReissueAsset,
			IssueSubAsset:          addresses.IssueSubAsset,
			IssueUniqueAsset:       addresses.IssueUniqueAsset,
			IssueMsgChannelAsset:   addresses.IssueMsgChannelAsset,
			IssueQualifierAsset:    addresses.IssueQualifierAsset,
			IssueSubQualifierAsset: addresses.IssueSubQualifierAsset,
			IssueRestrictedAsset:   addresses.IssueRestrictedAsset,
			AddNullQualifierTag:    addresses.AddNullQualifierTag,
		},
	}

	for _, kind := range BurnKinds() {
		if t.amountByKind[kind] < 0 {
			return nil, invariantErr("burn amounts", "%s has negative amount %v", kind, t.amountByKind[kind])
		}
		if t.addressByKind[kind] == "" {
			return nil, invariantErr("burn addresses", "%s has no address", kind)
		}
	}
	if addresses.Global == "" {
		return nil, invariantErr("burn addresses", "global burn address is empty")
	}

	return t, nil
}

// Amount returns the burn fee for kind. Kinds outside the enumeration
// return zero.
func (t *BurnTable) Amount(kind BurnKind) btcutil.Amount {
	if kind < 0 || kind >= numBurnKinds {
		return 0
	}
	return t.amountByKind[kind]
}

// Address returns the burn destination for kind, or "" for kinds outside
// the enumeration.
func (t *BurnTable) Address(kind BurnKind) string {
	if kind < 0 || kind >= numBurnKinds {
		return ""
	}
	return t.addressByKind[kind]
}

func (t *BurnTable) GlobalAddress() string    { return t.addresses.Global }
func (t *BurnTable) Amounts() BurnAmounts     { return t.amounts }
func (t *BurnTable) Addresses() BurnAddresses { return t.addresses }

// mustAmount converts a whole-coin literal. Only used for hard-coded values.
func mustAmount(coins float64) btcutil.Amount {
	a, err := btcutil.NewAmount(coins)
	if err != nil {
		panic(err)
	}
	return a
}
