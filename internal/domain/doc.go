// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/task,
// domain/event). This root package holds sentinel errors, validation types,
// and the three-state Optional used by partial-update payloads.
package domain
