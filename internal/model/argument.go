package model

// Argument is one decoded event parameter. Value is a string for address,
// uint256, bytes32, and unsupported types, and a bool for bool.
type Argument struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}
