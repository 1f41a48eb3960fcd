package convert

// typeWrappers are the type and variant names the debug printer emits as
// structural tags in Content dumps. They carry no data and are erased by the
// rewrite pipeline. Order matters: longer names that contain shorter ones as
// a prefix (e.g. AnyRpcTransaction vs. AnyRpc) must be erased first.
var typeWrappers = []string{
	"TxpoolContent", "AnyRpcTransaction", "WithOtherFields", "Transaction",
	"Recovered", "Ethereum", "Eip1559", "Signed", "TxEip1559", "Call",
	"OnceLock", "PrimitiveSignature", "AccessList", "OtherFields", "AnyRpc",
	"Tx", "Legacy", "TxLegacy", "Eip2930", "TxEip2930", "Eip4844", "TxEip4844",
	"DepositReceipt", "DepositTransaction", "OpDepositReceipt", "SequentialReceipt",
	"Create", "AccessListItem", "TxEip7702", "Eip7702", "Authorization",
}

// fieldNames are the known record member names appearing in Content dumps.
// Only these ever become object keys; lines with other identifiers are left
// for the cleanup passes to discard.
var fieldNames = []string{
	"pending", "queued", "inner", "signer", "to", "value", "input",
	"signature", "y_parity", "r", "s", "hash", "block_hash", "block_number",
	"transaction_index", "effective_gas_price", "other", "chain_id", "nonce",
	"gas_limit", "max_fee_per_gas", "max_priority_fee_per_gas", "tx",
	"access_list", "gas", "gas_price", "from", "data", "type", "v",
	"address", "storage_keys", "blob_versioned_hashes", "max_fee_per_blob_gas",
	"authorization_list",
}
