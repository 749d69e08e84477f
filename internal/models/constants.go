package models

// Default account labels.
const (
	AccountBank      = "Itau"
	AccountProcessor = "PagSeguro"
	AccountCash      = "Dinheiro"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReport     = 0644
)
