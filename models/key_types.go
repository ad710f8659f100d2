package models

// KeyType is the enumerated tag of a device key. The backend recognises a
// fixed small set of types; the type decides whether the record must carry
// an initialization vector.
type KeyType string

const (
	TypeApp1    KeyType = "App1"
	TypeApp2    KeyType = "App2"
	TypeQRMoKey KeyType = "qr_mokey"
	TypeQRMoLV  KeyType = "qrmolv"
	TypeQRPPley KeyType = "qrppley"
	TypeQRPPIV  KeyType = "qrppIV"
)

// KeyTypes lists every recognised device-key type in display order.
// The first entry is the default selection in the add form.
var KeyTypes = []KeyType{
	TypeApp1,
	TypeApp2,
	TypeQRMoKey,
	TypeQRMoLV,
	TypeQRPPley,
	TypeQRPPIV,
}

// ivRequiredTypes is the subset of types whose records must carry an IV.
// Driven by data rather than hardcoded checks so the set can follow the
// backend contract without touching validation or form logic.
var ivRequiredTypes = map[KeyType]struct{}{
	TypeQRMoLV: {},
	TypeQRPPIV: {},
}

// IsValidKeyType reports whether t is one of the recognised KeyType values.
func IsValidKeyType(t KeyType) bool {
	for _, known := range KeyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// RequiresIV reports whether device keys of type t must carry an
// initialization vector.
func RequiresIV(t KeyType) bool {
	_, ok := ivRequiredTypes[t]
	return ok
}
