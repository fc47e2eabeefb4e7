package models

import (
	"fmt"

	"github.com/toyz/roast/internal/naming"
)

// SourceLocation points at the declaration a method was discovered from
type SourceLocation struct {
	File string `yaml:"file,omitempty"`
	Line int    `yaml:"line,omitempty"`
}

// Method represents one public method bound across the native boundary
type Method struct {
	Name       string         // name as declared in Rust
	ReturnType string         // raw return type text; empty means no value is returned
	Args       []Argument     // declaration order, receiver first if present
	Location   SourceLocation // where the method was declared
}

// NewMethod creates a method record
func NewMethod(name, returnType string, args ...Argument) Method {
	return Method{
		Name:       name,
		ReturnType: returnType,
		Args:       args,
	}
}

// IsStatic reports whether the method has no self receiver
func (m Method) IsStatic() bool {
	for _, arg := range m.Args {
		if IsReceiver(arg) {
			return false
		}
	}
	return true
}

// ReturnsValue reports whether the method declares a return type
func (m Method) ReturnsValue() bool {
	return m.ReturnType != ""
}

// HostName returns the camelCase method name used by both artifacts
func (m Method) HostName() string {
	return naming.CamelCase(m.Name)
}

// Captured returns the non-receiver arguments in declaration order
func (m Method) Captured() []Captured {
	var captured []Captured
	for _, arg := range m.Args {
		switch a := arg.(type) {
		case Captured:
			captured = append(captured, a)
		case SelfBorrow, SelfOwned:
		default:
			panic("models: unknown argument variant")
		}
	}
	return captured
}

// Validate checks the receiver invariant: at most one, and only in first position
func (m Method) Validate() error {
	for i, arg := range m.Args {
		if IsReceiver(arg) && i != 0 {
			return fmt.Errorf("method %s: receiver %q must be the first argument", m.Name, DescribeArgument(arg))
		}
	}
	return nil
}

// Signature renders the method roughly as written in Rust, for diagnostics
func (m Method) Signature() string {
	sig := "fn " + m.Name + "("
	for i, arg := range m.Args {
		if i > 0 {
			sig += ", "
		}
		sig += DescribeArgument(arg)
	}
	sig += ")"
	if m.ReturnsValue() {
		sig += " -> " + m.ReturnType
	}
	return sig
}
