/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

// TestNetName is the registry key of the test network.
const TestNetName = "testnet"

// TestNetConfig returns the data set of the AIPG test network. The test
// network has no legacy era, DGW checkpoints start at the genesis.
func TestNetConfig(l *Loader) ParamsConfig {
	return ParamsConfig{
		Name:      TestNetName,
		IsTestNet: true,

		PrivateKeyID:        239,
		PubKeyHashAddrID:    23,
		ScriptHashAddrID:    23,
		ScriptHashAddrIDAlt: 23,
		Bech32HRPSegwit:     "tc",

		Genesis: "000000f798386703ae778eeaf8a2f426dc2715eb8989b4226cddc1681b567760",

		HDPrivateKeyIDs: map[Scheme]uint32{
			SchemeStandard:   0x04358394, // tprv
			SchemeP2WPKHP2SH: 0x044a4e28, // uprv
			SchemeP2WSHP2SH:  0x024285b5, // Uprv
			SchemeP2WPKH:     0x045f18bc, // vprv
			SchemeP2WSH:      0x02575048, // Vprv
		},
		HDPublicKeyIDs: map[Scheme]uint32{
			SchemeStandard:   0x043587cf, // tpub
			SchemeP2WPKHP2SH: 0x044a5262, // upub
			SchemeP2WSHP2SH:  0x024289ef, // Upub
			SchemeP2WPKH:     0x045f1cf6, // vpub
			SchemeP2WSH:      0x02575483, // Vpub
		},
		HDCoinType: 1,

		AssetPrefix:      []byte("aipg"),
		CoinbaseMaturity: 60,
		Forks: ForkSchedule{
			X16Rv2ActivationTime:   1688764800,
			KawpowActivationTime:   1688764800,
			KawpowActivationHeight: 1,
			DGWActivationHeight:    1,
		},

		DefaultPorts:   ServerPorts{"t": "51001", "s": "51002"},
		DefaultServers: l.Servers(ResServersTest),
		ShortName:      "tAIPG",
		LongName:       "AIPG",
		MultisigAssets: false,
		LNRealmByte:    0,

		DGWCheckpoints:     l.Checkpoints(ResCheckpointsDGWTest),
		DGWCheckpointStart: 0,
		DGWCheckpointSpace: 2016,

		BurnAmounts: BurnAmounts{
			IssueAsset:             mustAmount(50),
			ReissueAsset:           mustAmount(10),
			IssueSubAsset:          mustAmount(10),
			IssueUniqueAsset:       mustAmount(0.5),
			IssueMsgChannelAsset:   mustAmount(10),
			IssueQualifierAsset:    mustAmount(100),
			IssueSubQualifierAsset: mustAmount(10),
			IssueRestrictedAsset:   mustAmount(150),
			AddNullQualifierTag:    mustAmount(0.01),
		},
		BurnAddresses: BurnAddresses{
			IssueAsset:             "n1issueAssetXXXXXXXXXXXXXXXXWdnemQ",
			ReissueAsset:           "n1ReissueAssetXXXXXXXXXXXXXXWG9NLd",
			IssueSubAsset:          "n1issueSubAssetXXXXXXXXXXXXXbNiH6v",
			IssueUniqueAsset:       "n1issueUniqueAssetXXXXXXXXXXS4695i",
			IssueMsgChannelAsset:   "n1issueMsgChanneLAssetXXXXXXT2PBdD",
			IssueQualifierAsset:    "n1issueQuaLifierXXXXXXXXXXXXUysLTj",
			IssueSubQualifierAsset: "n1issueSubQuaLifierXXXXXXXXXYffPLh",
			IssueRestrictedAsset:   "n1issueRestrictedXXXXXXXXXXXXZVT9V",
			AddNullQualifierTag:    "n1addTagBurnXXXXXXXXXXXXXXXXX5oLMH",
			Global:                 "AcYHNBj8C6nCFSpu1ANsJxturWp31W32cd",
		},
	}
}
