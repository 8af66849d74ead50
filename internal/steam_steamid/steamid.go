package steam_steamid

import (
	"fmt"
	"strconv"
)

// SteamID is a decoded 64-bit Steam account identifier.
type SteamID struct {
	Universe  int
	Type      int
	Instance  int
	AccountID uint32
}

const (
	UniverseInvalid = iota
	UniversePublic
	UniverseBeta
	UniverseInternal
	UniverseDev
)

const (
	TypeInvalid = iota
	TypeIndividual
	TypeMultiseat
	TypeGameServer
	TypeAnonGameServer
	TypePending
	TypeContentServer
	TypeClan
	TypeChat
	TypeP2PSuperSeeder
	TypeAnonUser
)

const (
	InstanceAll = iota
	InstanceDesktop
	InstanceConsole
	InstanceWeb = 4
)

const (
	accountIDMask = 0xFFFFFFFF
	instanceMask  = 0x000FFFFF
)

var typeChars = map[int]string{
	TypeInvalid:        "I",
	TypeIndividual:     "U",
	TypeMultiseat:      "M",
	TypeGameServer:     "G",
	TypeAnonGameServer: "A",
	TypePending:        "P",
	TypeContentServer:  "C",
	TypeClan:           "g",
	TypeChat:           "T",
	TypeAnonUser:       "a",
}

// Parse decodes a SteamID64 given in decimal.
func Parse(input string) (*SteamID, error) {
	v, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unknown steam id %q: %w", input, err)
	}
	return FromUint64(v), nil
}

// FromUint64 splits a SteamID64 into its bit fields.
func FromUint64(v uint64) *SteamID {
	return &SteamID{
		AccountID: uint32(v & accountIDMask),
		Instance:  int((v >> 32) & instanceMask),
		Type:      int((v >> 52) & 0xF),
		Universe:  int((v >> 56) & 0xFF),
	}
}

// Steam3 renders the bracketed form, e.g. [U:1:22202].
func (sid *SteamID) Steam3() string {
	typeChar, ok := typeChars[sid.Type]
	if !ok {
		typeChar = "i"
	}
	if sid.Type == TypeAnonGameServer || sid.Type == TypeMultiseat ||
		(sid.Type == TypeIndividual && sid.Instance != InstanceDesktop) {
		return fmt.Sprintf("[%s:%d:%d:%d]", typeChar, sid.Universe, sid.AccountID, sid.Instance)
	}
	return fmt.Sprintf("[%s:%d:%d]", typeChar, sid.Universe, sid.AccountID)
}

// IsValid reports whether the fields describe an ID Steam would issue.
func (sid *SteamID) IsValid() bool {
	if sid.Type <= TypeInvalid || sid.Type > TypeAnonUser {
		return false
	}
	if sid.Universe <= UniverseInvalid || sid.Universe > UniverseDev {
		return false
	}
	switch sid.Type {
	case TypeIndividual:
		return sid.AccountID != 0 && sid.Instance <= InstanceWeb
	case TypeClan:
		return sid.AccountID != 0 && sid.Instance == InstanceAll
	case TypeGameServer:
		return sid.AccountID != 0
	}
	return true
}
