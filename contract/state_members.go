package main

import "daoforge/sdk"

////////////////////////////////////////////////////////////////////////////////
// Member state persistence
////////////////////////////////////////////////////////////////////////////////

// saveMember writes one seat record, keyed by organization id plus address.
func saveMember(daoID uint64, m *DaoMember) {
	sdk.StateSetObject(memberKey(daoID, m.Address), string(EncodeMember(m)))
}

// loadMember returns nil when the address holds no seat.
func loadMember(daoID uint64, addr sdk.Address) *DaoMember {
	ptr := sdk.StateGetObject(memberKey(daoID, addr))
	if ptr == nil {
		return nil
	}
	m, err := DecodeMember([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt member record")
	}
	return m
}

// deleteMember drops the seat entirely. Callers adjust the member counter.
func deleteMember(daoID uint64, addr sdk.Address) {
	sdk.StateDeleteObject(memberKey(daoID, addr))
}

// isMember is the quick existence probe used by gates and weight checks.
func isMember(daoID uint64, addr sdk.Address) bool {
	return sdk.StateGetObject(memberKey(daoID, addr)) != nil
}
