/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

// MainNetName is the registry key of the main network.
const MainNetName = "mainnet"

const (
	mainNetDGWCheckpointSpacing = 2016
	// DGW itself activates at 338778; checkpoints switch at the preceding
	// legacy window boundary.
	mainNetDGWCheckpointStart = 168 * mainNetDGWCheckpointSpacing
)

// MainNetConfig returns the data set of the AIPG main network. Checkpoints
// and the server directory come from resources read through l.
func MainNetConfig(l *Loader) ParamsConfig {
	dgw := l.Checkpoints(ResCheckpointsDGW)
	legacy := l.LegacyCheckpoints(ResCheckpoints, len(dgw),
		mainNetDGWCheckpointStart, mainNetDGWCheckpointSpacing)

	return ParamsConfig{
		Name:      MainNetName,
		IsTestNet: false,

		PrivateKeyID:        128,
		PubKeyHashAddrID:    23, // starts with A
		ScriptHashAddrID:    23,
		ScriptHashAddrIDAlt: 23,
		Bech32HRPSegwit:     "rc",

		Genesis: "000000fe8c99a7aacc5aff074278a8378e625c0d02e4894db8f09bab185f4eb6",

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyIDs: map[Scheme]uint32{
			SchemeStandard:   0x0488ade4, // xprv
			SchemeP2WPKHP2SH: 0x049d7878, // yprv
			SchemeP2WSHP2SH:  0x0295b005, // Yprv
			SchemeP2WPKH:     0x04b2430c, // zprv
			SchemeP2WSH:      0x02aa7a99, // Zprv
		},
		HDPublicKeyIDs: map[Scheme]uint32{
			SchemeStandard:   0x0488b21e, // xpub
			SchemeP2WPKHP2SH: 0x049d7cb2, // ypub
			SchemeP2WSHP2SH:  0x0295b43f, // Ypub
			SchemeP2WPKH:     0x04b24746, // zpub
			SchemeP2WSH:      0x02aa7ed3, // Zpub
		},
		HDCoinType: 2686,

		AssetPrefix:      []byte("aipg"),
		CoinbaseMaturity: 60,
		Forks: ForkSchedule{
			X16Rv2ActivationTime:   1688764800,
			KawpowActivationTime:   1688764800,
			KawpowActivationHeight: 1,
			DGWActivationHeight:    1,
		},

		DefaultPorts:    ServerPorts{"t": "50001", "s": "50002"},
		DefaultServers:  l.Servers(ResServers),
		MessageChannels: []string{"ELECTRUM_AIPG~notification"},
		ShortName:       "AIPG",
		LongName:        "AIPG",
		MultisigAssets:  false,

		LegacyCheckpoints:  legacy,
		DGWCheckpoints:     dgw,
		DGWCheckpointStart: mainNetDGWCheckpointStart,
		DGWCheckpointSpace: mainNetDGWCheckpointSpacing,

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
			IssueAsset:             "AIissueAssetXXXXXXXXXXXXXXXXXhhZGt",
			ReissueAsset:           "AIReissueAssetXXXXXXXXXXXXXXVEFAWu",
			IssueSubAsset:          "AIissueSubAssetXXXXXXXXXXXXXWcwhwL",
			IssueUniqueAsset:       "AIissueUniqueAssetXXXXXXXXXXWEAe58",
			IssueMsgChannelAsset:   "AIissueMsgChanneLAssetXXXXXXSjHvAY",
			IssueQualifierAsset:    "AIissueQuaLifierXXXXXXXXXXXXUgEDbC",
			IssueSubQualifierAsset: "AIissueSubQuaLifierXXXXXXXXXVTzvv5",
			IssueRestrictedAsset:   "AIissueRestrictedXXXXXXXXXXXXzJZ1q",
			AddNullQualifierTag:    "AIaddTagBurnXXXXXXXXXXXXXXXXZQm5ya",
			Global:                 "AIBurnXXXXXXXXXXXXXXXXXXXXXXWUo9FV",
		},
	}
}
