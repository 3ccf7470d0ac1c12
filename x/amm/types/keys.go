package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// MaxFeeBps is the upper bound for any basis-point fee rate (100%).
	MaxFeeBps = 10000

	// PoolsRangeWindow bounds how many pools a single range query may return.
	PoolsRangeWindow = 5

	// PricePrecision scales spot prices so fractional rates survive
	// integer division.
	PricePrecision = 1_000_000
)
