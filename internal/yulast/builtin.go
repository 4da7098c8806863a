package yulast

// Builtin enumerates the Yul standard-library mnemonics recognized by the
// default dialect. This is the closed set the parser resolves call names
// against and the dialect's standard-definitions table keys off of; any call whose name does
// not match one of these mnemonics is a user-defined call.
type Builtin int

const (
	Stop Builtin = iota
	Add
	Sub
	Mul
	Div
	Sdiv
	Mod
	Smod
	Exp
	Not
	Lt
	Gt
	Slt
	Sgt
	Eq
	Iszero
	And
	Or
	Xor
	Byte
	Shl
	Shr
	Sar
	Addmod
	Mulmod
	Signextend
	Keccak256
	Pop
	Mload
	Mstore
	Mstore8
	Sload
	Sstore
	Tload
	Tstore
	Msize
	Gas
	Address
	Balance
	Selfbalance
	Caller
	Callvalue
	Calldataload
	Calldatasize
	Calldatacopy
	Codesize
	Codecopy
	Extcodesize
	Extcodecopy
	Returndatasize
	Returndatacopy
	Extcodehash
	Mcopy
	Create
	Create2
	Call
	Callcode
	Delegatecall
	Staticcall
	Return
	Revert
	Selfdestruct
	Invalid
	Log0
	Log1
	Log2
	Log3
	Log4
	Chainid
	Basefee
	Blobbasefee
	Blobhash
	Origin
	Gasprice
	Blockhash
	Coinbase
	Timestamp
	Number
	Difficulty
	Prevrandao
	Gaslimit
)

var builtinMnemonics = map[Builtin]string{
	Stop:           "stop",
	Add:            "add",
	Sub:            "sub",
	Mul:            "mul",
	Div:            "div",
	Sdiv:           "sdiv",
	Mod:            "mod",
	Smod:           "smod",
	Exp:            "exp",
	Not:            "not",
	Lt:             "lt",
	Gt:             "gt",
	Slt:            "slt",
	Sgt:            "sgt",
	Eq:             "eq",
	Iszero:         "iszero",
	And:            "and",
	Or:             "or",
	Xor:            "xor",
	Byte:           "byte",
	Shl:            "shl",
	Shr:            "shr",
	Sar:            "sar",
	Addmod:         "addmod",
	Mulmod:         "mulmod",
	Signextend:     "signextend",
	Keccak256:      "keccak256",
	Pop:            "pop",
	Mload:          "mload",
	Mstore:         "mstore",
	Mstore8:        "mstore8",
	Sload:          "sload",
	Sstore:         "sstore",
	Tload:          "tload",
	Tstore:         "tstore",
	Msize:          "msize",
	Gas:            "gas",
	Address:        "address",
	Balance:        "balance",
	Selfbalance:    "selfbalance",
	Caller:         "caller",
	Callvalue:      "callvalue",
	Calldataload:   "calldataload",
	Calldatasize:   "calldatasize",
	Calldatacopy:   "calldatacopy",
	Codesize:       "codesize",
	Codecopy:       "codecopy",
	Extcodesize:    "extcodesize",
	Extcodecopy:    "extcodecopy",
	Returndatasize: "returndatasize",
	Returndatacopy: "returndatacopy",
	Extcodehash:    "extcodehash",
	Mcopy:          "mcopy",
	Create:         "create",
	Create2:        "create2",
	Call:           "call",
	Callcode:       "callcode",
	Delegatecall:   "delegatecall",
	Staticcall:     "staticcall",
	Return:         "return",
	Revert:         "revert",
	Selfdestruct:   "selfdestruct",
	Invalid:        "invalid",
	Log0:           "log0",
	Log1:           "log1",
	Log2:           "log2",
	Log3:           "log3",
	Log4:           "log4",
	Chainid:        "chainid",
	Basefee:        "basefee",
	Blobbasefee:    "blobbasefee",
	Blobhash:       "blobhash",
	Origin:         "origin",
	Gasprice:       "gasprice",
	Blockhash:      "blockhash",
	Coinbase:       "coinbase",
	Timestamp:      "timestamp",
	Number:         "number",
	Difficulty:     "difficulty",
	Prevrandao:     "prevrandao",
	Gaslimit:       "gaslimit",
}

var mnemonicToBuiltin = func() map[string]Builtin {
	m := make(map[string]Builtin, len(builtinMnemonics))
	for b, s := range builtinMnemonics {
		m[s] = b
	}
	return m
}()

func (b Builtin) String() string {
	if s, ok := builtinMnemonics[b]; ok {
		return s
	}
	return "<unknown builtin>"
}

// LookupBuiltin returns the Builtin matching a mnemonic, if any.
func LookupBuiltin(mnemonic string) (Builtin, bool) {
	b, ok := mnemonicToBuiltin[mnemonic]
	return b, ok
}
