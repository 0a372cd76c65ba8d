package main

import "daoforge/sdk"

////////////////////////////////////////////////////////////////////////////////
// Organization state persistence
////////////////////////////////////////////////////////////////////////////////

// saveDao writes the encoded record and keeps the registry index current.
func saveDao(d *Dao) {
	sdk.StateSetObject(daoKey(d.ID), string(EncodeDao(d)))
}

// loadDao returns nil when the handle was never issued.
func loadDao(id uint64) *Dao {
	ptr := sdk.StateGetObject(daoKey(id))
	if ptr == nil {
		return nil
	}
	d, err := DecodeDao([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt organization record " + UInt64ToString(id))
	}
	return d
}

// mustLoadDao reverts with not_found so entrypoints dont repeat the check.
func mustLoadDao(id uint64) *Dao {
	d := loadDao(id)
	if d == nil {
		sdk.Revert("organization "+UInt64ToString(id)+" not found", symNotFound)
	}
	return d
}

// registerDao appends the fresh handle to the global registry index.
func registerDao(id uint64) {
	AddIDToIndex(idxDaos, id)
}

// listDaoIDs walks the registry chunks.
func listDaoIDs() []uint64 {
	return GetIDsFromIndex(idxDaos)
}

// saveContractConfig persists the deployment owner record.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(contractConfigKey, string(EncodeContractConfig(cfg)))
}

// loadContractConfig returns nil before contract_init ran.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(contractConfigKey)
	if ptr == nil {
		return nil
	}
	cfg, err := DecodeContractConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt contract config")
	}
	return cfg
}

// isContractInitialized is the cheap guard used by contract_init.
func isContractInitialized() bool {
	return sdk.StateGetObject(contractConfigKey) != nil
}
