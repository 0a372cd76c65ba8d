package main

import "daoforge/sdk"

// contractConfigKey holds the one-off ContractConfig blob.
const contractConfigKey = "contract:cfg"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU32LEInline mirrors the 64-bit helper but for smaller action indexes.
func packU32LEInline(x uint32, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// daoKey builds a storage key string for an organization by ID.
func daoKey(id uint64) string {
	var buf [9]byte
	buf[0] = kDaoMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// memberKey mixes organization id plus address bytes to avoid nested maps in host storage.
func memberKey(daoID uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kDaoMember)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// treasuryKey tracks the flat native deposit of one depositor.
func treasuryKey(daoID uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kDaoTreasury)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// assetBalanceKey aggregates asset deposits per depositor+asset combo.
func assetBalanceKey(daoID uint64, addr sdk.Address, asset sdk.Asset) string {
	addrStr := addr.String()
	assetStr := asset.String()
	buf := make([]byte, 0, 1+8+len(addrStr)+1+len(assetStr))
	buf = append(buf, kDaoAssetBalance)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	buf = append(buf, ':')
	buf = append(buf, assetStr...)
	return string(buf)
}

// depositLogKey points at one deposit history entry, idx counts from zero.
func depositLogKey(daoID uint64, addr sdk.Address, asset sdk.Asset, idx uint64) string {
	addrStr := addr.String()
	assetStr := asset.String()
	buf := make([]byte, 0, 1+8+len(addrStr)+1+len(assetStr)+1+8)
	buf = append(buf, kDaoDepositLog)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	buf = append(buf, ':')
	buf = append(buf, assetStr...)
	buf = append(buf, ':')
	buf = packU64LE(idx, buf)
	return string(buf)
}

// depositCountKey counts the deposit log entries of a depositor+asset.
func depositCountKey(daoID uint64, addr sdk.Address, asset sdk.Asset) string {
	addrStr := addr.String()
	assetStr := asset.String()
	buf := make([]byte, 0, 1+8+len(addrStr)+1+len(assetStr))
	buf = append(buf, kDaoDepositCount)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	buf = append(buf, ':')
	buf = append(buf, assetStr...)
	return string(buf)
}

// assetTotalKey is the organization wide running balance per asset.
func assetTotalKey(daoID uint64, asset sdk.Asset) string {
	assetStr := asset.String()
	buf := make([]byte, 0, 1+8+len(assetStr))
	buf = append(buf, kDaoAssetTotal)
	buf = packU64LE(daoID, buf)
	buf = append(buf, assetStr...)
	return string(buf)
}

// proposalKey encodes id under the 0x10 prefix keeping metadata lumps contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposalMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// proposalActionKey stores batch entries sequentially under 0x11.
func proposalActionKey(id uint64, idx uint32) string {
	var buf [13]byte
	buf[0] = kProposalAction
	packU64LEInline(id, buf[1:])
	packU32LEInline(idx, buf[9:])
	return string(buf[:])
}

// voteReceiptKey pins one ballot per proposal+voter.
func voteReceiptKey(proposalID uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(proposalID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// tokenKey builds a storage key string for a governance token by ID.
func tokenKey(id uint64) string {
	var buf [9]byte
	buf[0] = kTokenMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// tokenAccountKey stores the balance+delegation state of one holder.
func tokenAccountKey(tokenID uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kTokenAccount)
	buf = packU64LE(tokenID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// tokenCheckpointKey addresses one voting unit snapshot by increment.
func tokenCheckpointKey(tokenID uint64, addr sdk.Address, increment uint64) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr)+1+8)
	buf = append(buf, kTokenCheckpoint)
	buf = packU64LE(tokenID, buf)
	buf = append(buf, addrStr...)
	buf = append(buf, ':')
	buf = packU64LE(increment, buf)
	return string(buf)
}
