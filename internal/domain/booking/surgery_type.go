package booking

import "fmt"

// SurgeryType is the clinic system category stamped onto each booking.
// It is derived from the patient's clinic at creation time, never supplied
// by the caller.
type SurgeryType int

const (
	SurgeryTypeSystemOne SurgeryType = 1
	SurgeryTypeSystemTwo SurgeryType = 2
)

var surgeryTypeNames = map[SurgeryType]string{
	SurgeryTypeSystemOne: "SystemOne",
	SurgeryTypeSystemTwo: "SystemTwo",
}

// IsValid returns true if the value is a recognized surgery type.
func (s SurgeryType) IsValid() bool {
	_, exists := surgeryTypeNames[s]
	return exists
}

// String returns the human-readable name of the surgery type.
func (s SurgeryType) String() string {
	if name, ok := surgeryTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SurgeryType(%d)", int(s))
}

// ParseSurgeryType converts a raw integer to a SurgeryType, returning an
// error if the value is not a recognized type.
func ParseSurgeryType(v int) (SurgeryType, error) {
	st := SurgeryType(v)
	if !st.IsValid() {
		return 0, fmt.Errorf("invalid surgery type: %d", v)
	}
	return st, nil
}
