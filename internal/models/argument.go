package models

import "github.com/toyz/roast/internal/naming"

// Argument is one entry of a method's parameter list.
//
// The set of implementations is closed: SelfBorrow, SelfOwned and Captured.
// Consumers switch over all three; a fourth case is a programming error.
type Argument interface {
	isArgument()
}

// SelfBorrow is a by-reference receiver (&self, &mut self)
type SelfBorrow struct {
	Mutable bool `yaml:"mutable"`
}

// SelfOwned is a by-value receiver (self, mut self)
type SelfOwned struct {
	Mutable bool `yaml:"mutable"`
}

// Captured is any non-receiver argument
type Captured struct {
	Name string `yaml:"name"` // declared identifier
	Type string `yaml:"type"` // raw Rust type text, e.g. "i32" or "Vec<u8>"
}

func (SelfBorrow) isArgument() {}
func (SelfOwned) isArgument()  {}
func (Captured) isArgument()   {}

// HostName returns the argument name in the host naming convention
func (c Captured) HostName() string {
	return naming.CamelCase(c.Name)
}

// IsReceiver reports whether the argument is a self receiver
func IsReceiver(arg Argument) bool {
	switch arg.(type) {
	case SelfBorrow, SelfOwned:
		return true
	case Captured:
		return false
	default:
		panic("models: unknown argument variant")
	}
}

// DescribeArgument renders an argument the way it appears in Rust source
func DescribeArgument(arg Argument) string {
	switch a := arg.(type) {
	case SelfBorrow:
		if a.Mutable {
			return "&mut self"
		}
		return "&self"
	case SelfOwned:
		if a.Mutable {
			return "mut self"
		}
		return "self"
	case Captured:
		return a.Name + ": " + a.Type
	default:
		panic("models: unknown argument variant")
	}
}
