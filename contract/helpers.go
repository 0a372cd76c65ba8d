package main

import (
	"strconv"
	"strings"

	"daoforge/sdk"
)

// strptr is a tiny helper for entrypoints that return literal result strings.
func strptr(s string) *string { return &s }

// UInt64ToString turns an id back into decimal text for logs or result building.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// daoHandleAddress renders an organization handle as an action target address.
// Example payload: daoHandleAddress(3) -> "dao:3"
func daoHandleAddress(daoID uint64) sdk.Address {
	return sdk.Address("dao:" + strconv.FormatUint(daoID, 10))
}

// parseDaoHandle extracts the id from a dao:<id> target, second return is
// false when the address is not an organization handle at all.
func parseDaoHandle(target sdk.Address) (uint64, bool) {
	s := target.String()
	if !strings.HasPrefix(s, "dao:") {
		return 0, false
	}
	id, err := strconv.ParseUint(s[len("dao:"):], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// validateTitle keeps names and titles inside storage friendly bounds.
func validateTitle(title string) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		sdk.Revert("title must not be empty", symInvalidPayload)
	}
	if len(trimmed) > MaxTitleLength {
		sdk.Revert("title too long", symInvalidPayload)
	}
}

// validateAddress rejects obviously broken address strings early.
func validateAddress(addr sdk.Address, what string) {
	if !addr.IsValid() {
		sdk.Revert("invalid "+what+" address: "+addr.String(), symInvalidPayload)
	}
}
