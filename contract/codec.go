package main

import (
	"bytes"
	"encoding/binary"
	"errors"

	"daoforge/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount handling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress goes through the string path, addresses are plain text anyway.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds an Amount using the int64 path.
func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// readAddress mirrors writeAddress.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.AddressNone, err
	}
	return sdk.Address(s), nil
}

// ------------------------------------------------------------------
// Record encoders/decoders
// ------------------------------------------------------------------

// EncodeDao serializes the entire organization record into deterministic bytes.
// Example payload: EncodeDao(&Dao{ID: 7, Settings: DaoSettings{Name: "Tiny Coop"}})
func EncodeDao(d *Dao) []byte {
	w := newWriter()
	w.writeUint64(d.ID)
	w.writeString(d.Settings.Name)
	w.writeString(d.Settings.Data)
	w.buf.WriteByte(byte(d.Mode))
	w.writeUint64(d.TokenID)
	w.writeAmount(d.MinimumRequirement)
	w.writeBool(d.Policy.TokenGated)
	w.writeAmount(d.Policy.MinimumHolding)
	w.writeUint64(d.MemberCount)
	w.writeAddress(d.Creator)
	w.writeInt64(d.CreatedAt)
	w.writeString(d.Tx)
	return w.bytes()
}

// DecodeDao lets queries and tests read stored organizations back.
// Example payload: DecodeDao(EncodeDao(&Dao{ID: 42}))
func DecodeDao(data []byte) (*Dao, error) {
	r := newReader(data)
	d := &Dao{}
	var err error
	if d.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.Settings.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if d.Settings.Data, err = r.readString(); err != nil {
		return nil, err
	}
	modeByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	d.Mode = VotingMode(modeByte)
	if d.TokenID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.MinimumRequirement, err = r.readAmount(); err != nil {
		return nil, err
	}
	if d.Policy.TokenGated, err = r.readBool(); err != nil {
		return nil, err
	}
	if d.Policy.MinimumHolding, err = r.readAmount(); err != nil {
		return nil, err
	}
	if d.MemberCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if d.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return d, nil
}

// EncodeMember packs a DaoMember so storage stays lean and no json noise leaks.
// Example payload: EncodeMember(&DaoMember{Address: sdk.Address("hive:alice"), Deposit: 500})
func EncodeMember(m *DaoMember) []byte {
	w := newWriter()
	w.writeAddress(m.Address)
	w.writeAmount(m.Deposit)
	w.writeInt64(m.JoinedAt)
	return w.bytes()
}

// DecodeMember is handy for reads that need to inspect stored members quickly.
// Example payload: DecodeMember(EncodeMember(&DaoMember{Address: sdk.Address("hive:tester")}))
func DecodeMember(data []byte) (*DaoMember, error) {
	r := newReader(data)
	m := &DaoMember{}
	var err error
	if m.Address, err = r.readAddress(); err != nil {
		return nil, err
	}
	if m.Deposit, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.JoinedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeToken serializes a governance token record.
// Example payload: EncodeToken(&Token{ID: 1, Symbol: "GOV", TotalSupply: 1000})
func EncodeToken(t *Token) []byte {
	w := newWriter()
	w.writeUint64(t.ID)
	w.writeString(t.Name)
	w.writeString(t.Symbol)
	w.writeAddress(t.Owner)
	w.writeAmount(t.TotalSupply)
	w.writeInt64(t.CreatedAt)
	return w.bytes()
}

// DecodeToken reverses EncodeToken field by field.
// Example payload: DecodeToken(EncodeToken(&Token{ID: 1}))
func DecodeToken(data []byte) (*Token, error) {
	r := newReader(data)
	t := &Token{}
	var err error
	if t.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if t.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if t.Symbol, err = r.readString(); err != nil {
		return nil, err
	}
	if t.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if t.TotalSupply, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return t, nil
}

// EncodeTokenAccount packs balance, live units, delegate and checkpoint counter.
func EncodeTokenAccount(a *TokenAccount) []byte {
	w := newWriter()
	w.writeAmount(a.Balance)
	w.writeAmount(a.Units)
	w.writeAddress(a.Delegate)
	w.writeUint64(a.CheckpointCount)
	return w.bytes()
}

// DecodeTokenAccount restores the holder state written above.
func DecodeTokenAccount(data []byte) (*TokenAccount, error) {
	r := newReader(data)
	a := &TokenAccount{}
	var err error
	if a.Balance, err = r.readAmount(); err != nil {
		return nil, err
	}
	if a.Units, err = r.readAmount(); err != nil {
		return nil, err
	}
	if a.Delegate, err = r.readAddress(); err != nil {
		return nil, err
	}
	if a.CheckpointCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeProposal turns a Proposal into bytes so we can persist tallies without json overhead.
// Example payload: EncodeProposal(&Proposal{ID: 3, DaoID: 1, Title: "rename"})
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeUint64(p.DaoID)
	w.writeAddress(p.Creator)
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.buf.WriteByte(byte(p.Mode))
	w.writeInt64(p.StartTime)
	w.writeInt64(p.EndTime)
	w.writeAmount(p.SnapshotTotal)
	w.writeAmount(p.YesWeight)
	w.writeAmount(p.NoWeight)
	w.writeAmount(p.AbstainWeight)
	w.writeUint64(p.VoterCount)
	w.writeBool(p.Approved)
	w.writeBool(p.Executed)
	w.writeUint64(p.ActionID)
	w.writeVarUint(uint64(p.ActionCount))
	w.writeString(p.Tx)
	return w.bytes()
}

// DecodeProposal lets governance tooling inspect stored proposals with one helper call.
// Example payload: DecodeProposal(EncodeProposal(&Proposal{ID: 11, DaoID: 2}))
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	p := &Proposal{}
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.DaoID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	modeByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	p.Mode = VotingMode(modeByte)
	if p.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.SnapshotTotal, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.YesWeight, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.NoWeight, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.AbstainWeight, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.VoterCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Approved, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.ActionID, err = r.readUint64(); err != nil {
		return nil, err
	}
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	p.ActionCount = uint32(count)
	if p.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeAction serializes a single batch entry so actions live outside the proposal blob.
// Example payload: EncodeAction(&Action{Target: sdk.Address("dao:1"), Payload: `{"method":"update_settings"}`})
func EncodeAction(a *Action) []byte {
	w := newWriter()
	w.writeAddress(a.Target)
	w.writeAmount(a.Value)
	w.writeString(a.Payload)
	return w.bytes()
}

// DecodeAction restores one batch entry.
// Example payload: DecodeAction(EncodeAction(&Action{Target: sdk.Address("dao:1")}))
func DecodeAction(data []byte) (*Action, error) {
	r := newReader(data)
	a := &Action{}
	var err error
	if a.Target, err = r.readAddress(); err != nil {
		return nil, err
	}
	if a.Value, err = r.readAmount(); err != nil {
		return nil, err
	}
	if a.Payload, err = r.readString(); err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeVoteReceipt packs choice, weight and cast time into a tiny blob.
func EncodeVoteReceipt(v *VoteReceipt) []byte {
	w := newWriter()
	w.buf.WriteByte(byte(v.Choice))
	w.writeAmount(v.Weight)
	w.writeInt64(v.Timestamp)
	return w.bytes()
}

// DecodeVoteReceipt restores a stored ballot.
func DecodeVoteReceipt(data []byte) (*VoteReceipt, error) {
	r := newReader(data)
	v := &VoteReceipt{}
	choiceByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	v.Choice = VoteChoice(choiceByte)
	if v.Weight, err = r.readAmount(); err != nil {
		return nil, err
	}
	if v.Timestamp, err = r.readInt64(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeContractConfig keeps the init record compact.
func EncodeContractConfig(cfg *ContractConfig) []byte {
	w := newWriter()
	w.writeAddress(cfg.Owner)
	return w.bytes()
}

// DecodeContractConfig reverses the above.
func DecodeContractConfig(data []byte) (*ContractConfig, error) {
	r := newReader(data)
	cfg := &ContractConfig{}
	var err error
	if cfg.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	return cfg, nil
}
