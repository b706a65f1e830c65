package domain

type ModState string

const (
	StateEnabled  ModState = "enabled"
	StateDisabled ModState = "disabled"
)
