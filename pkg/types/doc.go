// Package types defines the public data model for Group Policy Registry
// Preferences (PReg) documents: registry value types, the typed payload
// union, instructions, and the document container, plus the typed error
// taxonomy shared by every codec layer.
//
// A File owns its Body, a Body owns its Instructions, and each Instruction
// owns its key, value name, and Data payload. There is no shared ownership
// and no back-references; values compare structurally via the Equal methods.
//
// The Data union keeps the on-wire type tag and the in-memory payload shape
// in lock-step: RegType.Kind() names the payload shape each type carries,
// and the codec rejects any instruction where the two disagree.
package types
