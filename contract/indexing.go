package main

// maintaining index keys for querying data in various ways

import (
	"encoding/json"
	"strconv"

	"daoforge/sdk"
)

// index key prefixes
const (
	maxChunkSize    = 2500         // all indexes are split into chunks of X entries to avoid overflowing the max size of a key/value in the contract state
	idxDaos         = "daos"       // holds all organization ids
	idxDaoProposals = "dao:props:" // + daoId, holds all proposal ids of an organization
)

// chunkCounterKey stores number of chunks for a base index.
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

// getChunkCount reads the number of chunks for an index.
func getChunkCount(baseKey string) int {
	ptr := sdk.StateGetObject(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

// setChunkCount persists the number of chunks.
func setChunkCount(baseKey string, n int) {
	sdk.StateSetObject(chunkCounterKey(baseKey), strconv.Itoa(n))
}

// AddIDToIndex ensures id exists across all chunks (no duplicates).
func AddIDToIndex(baseKey string, id uint64) {
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		var ids []uint64
		if ptr != nil && *ptr != "" {
			if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
				sdk.Abort("unmarshal index " + key)
			}
			for _, e := range ids {
				if e == id {
					return // already present
				}
			}
			if len(ids) < maxChunkSize {
				ids = append(ids, id)
				b, err := json.Marshal(ids)
				if err != nil {
					sdk.Abort("marshal index " + key)
				}
				sdk.StateSetObject(key, string(b))
				return
			}
		}
	}
	// not found / no space -> create new chunk
	key := chunkKey(baseKey, chunks)
	ids := []uint64{id}
	b, err := json.Marshal(ids)
	if err != nil {
		sdk.Abort("marshal index " + key)
	}
	sdk.StateSetObject(key, string(b))
	setChunkCount(baseKey, chunks+1)
}

// GetIDsFromIndex collects all IDs across all chunks.
func GetIDsFromIndex(baseKey string) []uint64 {
	all := []uint64{}
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		var ids []uint64
		if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
			sdk.Abort("unmarshal index " + key)
			return nil
		}
		all = append(all, ids...)
	}
	return all
}

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextID bumps the counter and returns the fresh handle (ids start at 1).
func nextID(counterKey string) uint64 {
	n := getCount(counterKey) + 1
	setCount(counterKey, n)
	return n
}
