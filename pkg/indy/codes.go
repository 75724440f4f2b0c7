package indy

import "strconv"

// Code is a native libindy response code. Zero is success; every other
// value identifies one condition from a closed, versioned enumeration. A
// nonzero code outside this enumeration means the installed library and
// this wrapper disagree about the ABI.
type Code int32

const (
	Success Code = 0

	// Caller errors common to all commands.
	CommonInvalidParam1    Code = 100
	CommonInvalidParam2    Code = 101
	CommonInvalidParam3    Code = 102
	CommonInvalidParam4    Code = 103
	CommonInvalidParam5    Code = 104
	CommonInvalidParam6    Code = 105
	CommonInvalidParam7    Code = 106
	CommonInvalidParam8    Code = 107
	CommonInvalidParam9    Code = 108
	CommonInvalidParam10   Code = 109
	CommonInvalidParam11   Code = 110
	CommonInvalidParam12   Code = 111
	CommonInvalidState     Code = 112
	CommonInvalidStructure Code = 113
	CommonIOError          Code = 114

	// Wallet service.
	WalletInvalidHandle         Code = 200
	WalletUnknownType           Code = 201
	WalletTypeAlreadyRegistered Code = 202
	WalletAlreadyExists         Code = 203
	WalletNotFound              Code = 204
	WalletIncompatiblePool      Code = 205
	WalletAlreadyOpened         Code = 206
	WalletAccessFailed          Code = 207
	WalletInputError            Code = 208
	WalletDecodingError         Code = 209
	WalletStorageError          Code = 210
	WalletEncryptionError       Code = 211
	WalletItemNotFound          Code = 212
	WalletItemAlreadyExists     Code = 213
	WalletQueryError            Code = 214

	// Pool ledger.
	PoolLedgerNotCreated            Code = 300
	PoolLedgerInvalidHandle         Code = 301
	PoolLedgerTerminated            Code = 302
	LedgerNoConsensus               Code = 303
	LedgerInvalidTransaction        Code = 304
	LedgerSecurityError             Code = 305
	PoolLedgerConfigAlreadyExists   Code = 306
	PoolLedgerTimeout               Code = 307
	PoolIncompatibleProtocolVersion Code = 308
	PoolLedgerNotFound              Code = 309

	// Anoncreds.
	AnoncredsRevocationRegistryFull    Code = 400
	AnoncredsInvalidUserRevocID        Code = 401
	AnoncredsMasterSecretDuplicateName Code = 404
	AnoncredsProofRejected             Code = 405
	AnoncredsCredentialRevoked         Code = 406
	AnoncredsCredDefAlreadyExists      Code = 407

	// Crypto.
	UnknownCryptoType Code = 500

	// DID.
	DIDAlreadyExists Code = 600

	// Payments.
	PaymentUnknownMethod         Code = 700
	PaymentIncompatibleMethods   Code = 701
	PaymentInsufficientFunds     Code = 702
	PaymentSourceDoesNotExist    Code = 703
	PaymentOperationNotSupported Code = 704
	PaymentExtraFunds            Code = 705
	TransactionNotAllowed        Code = 706
)

var codeNames = map[Code]string{
	Success:                            "Success",
	CommonInvalidParam1:                "CommonInvalidParam1",
	CommonInvalidParam2:                "CommonInvalidParam2",
	CommonInvalidParam3:                "CommonInvalidParam3",
	CommonInvalidParam4:                "CommonInvalidParam4",
	CommonInvalidParam5:                "CommonInvalidParam5",
	CommonInvalidParam6:                "CommonInvalidParam6",
	CommonInvalidParam7:                "CommonInvalidParam7",
	CommonInvalidParam8:                "CommonInvalidParam8",
	CommonInvalidParam9:                "CommonInvalidParam9",
	CommonInvalidParam10:               "CommonInvalidParam10",
	CommonInvalidParam11:               "CommonInvalidParam11",
	CommonInvalidParam12:               "CommonInvalidParam12",
	CommonInvalidState:                 "CommonInvalidState",
	CommonInvalidStructure:             "CommonInvalidStructure",
	CommonIOError:                      "CommonIOError",
	WalletInvalidHandle:                "WalletInvalidHandle",
	WalletUnknownType:                  "WalletUnknownType",
	WalletTypeAlreadyRegistered:        "WalletTypeAlreadyRegistered",
	WalletAlreadyExists:                "WalletAlreadyExists",
	WalletNotFound:                     "WalletNotFound",
	WalletIncompatiblePool:             "WalletIncompatiblePool",
	WalletAlreadyOpened:                "WalletAlreadyOpened",
	WalletAccessFailed:                 "WalletAccessFailed",
	WalletInputError:                   "WalletInputError",
	WalletDecodingError:                "WalletDecodingError",
	WalletStorageError:                 "WalletStorageError",
	WalletEncryptionError:              "WalletEncryptionError",
	WalletItemNotFound:                 "WalletItemNotFound",
	WalletItemAlreadyExists:            "WalletItemAlreadyExists",
	WalletQueryError:                   "WalletQueryError",
	PoolLedgerNotCreated:               "PoolLedgerNotCreated",
	PoolLedgerInvalidHandle:            "PoolLedgerInvalidHandle",
	PoolLedgerTerminated:               "PoolLedgerTerminated",
	LedgerNoConsensus:                  "LedgerNoConsensus",
	LedgerInvalidTransaction:           "LedgerInvalidTransaction",
	LedgerSecurityError:                "LedgerSecurityError",
	PoolLedgerConfigAlreadyExists:      "PoolLedgerConfigAlreadyExists",
	PoolLedgerTimeout:                  "PoolLedgerTimeout",
	PoolIncompatibleProtocolVersion:    "PoolIncompatibleProtocolVersion",
	PoolLedgerNotFound:                 "PoolLedgerNotFound",
	AnoncredsRevocationRegistryFull:    "AnoncredsRevocationRegistryFull",
	AnoncredsInvalidUserRevocID:        "AnoncredsInvalidUserRevocID",
	AnoncredsMasterSecretDuplicateName: "AnoncredsMasterSecretDuplicateName",
	AnoncredsProofRejected:             "AnoncredsProofRejected",
	AnoncredsCredentialRevoked:         "AnoncredsCredentialRevoked",
	AnoncredsCredDefAlreadyExists:      "AnoncredsCredDefAlreadyExists",
	UnknownCryptoType:                  "UnknownCryptoType",
	DIDAlreadyExists:                   "DIDAlreadyExists",
	PaymentUnknownMethod:               "PaymentUnknownMethod",
	PaymentIncompatibleMethods:         "PaymentIncompatibleMethods",
	PaymentInsufficientFunds:           "PaymentInsufficientFunds",
	PaymentSourceDoesNotExist:          "PaymentSourceDoesNotExist",
	PaymentOperationNotSupported:       "PaymentOperationNotSupported",
	PaymentExtraFunds:                  "PaymentExtraFunds",
	TransactionNotAllowed:              "TransactionNotAllowed",
}

// Known reports whether c is part of the enumeration this wrapper was
// built against.
func (c Code) Known() bool {
	_, ok := codeNames[c]
	return ok
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}
