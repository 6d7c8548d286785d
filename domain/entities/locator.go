package entities

import (
	"fmt"
	"strings"
)

// LocatorKind is the symbolic name of an element lookup strategy
type LocatorKind string

const (
	LocatorID        LocatorKind = "id"
	LocatorName      LocatorKind = "name"
	LocatorClassName LocatorKind = "class_name"
	LocatorLinkText  LocatorKind = "link_text"
	LocatorXPath     LocatorKind = "xpath"
	LocatorCSS       LocatorKind = "css"
)

// LocatorKinds lists every supported kind
var LocatorKinds = []LocatorKind{
	LocatorID,
	LocatorName,
	LocatorClassName,
	LocatorLinkText,
	LocatorXPath,
	LocatorCSS,
}

// Normalize returns the lower-cased form of the kind
func (k LocatorKind) Normalize() LocatorKind {
	return LocatorKind(strings.ToLower(string(k)))
}

// Valid reports whether the kind is one of LocatorKinds, ignoring case
func (k LocatorKind) Valid() bool {
	n := k.Normalize()
	for _, kind := range LocatorKinds {
		if kind == n {
			return true
		}
	}
	return false
}

// ParseLocatorKind - converts a symbolic kind name into a LocatorKind
func ParseLocatorKind(name string) (LocatorKind, error) {
	kind := LocatorKind(name).Normalize()
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidLocatorKind, name)
	}
	return kind, nil
}

// Locator identifies a UI element by kind and value
type Locator struct {
	Kind  LocatorKind `json:"kind"`
	Value string      `json:"value"`
}

// NewLocator - builds a locator from a symbolic kind, validating the kind
func NewLocator(kind, value string) (Locator, error) {
	k, err := ParseLocatorKind(kind)
	if err != nil {
		return Locator{}, err
	}
	return Locator{Kind: k, Value: value}, nil
}

func ByID(value string) Locator        { return Locator{Kind: LocatorID, Value: value} }
func ByName(value string) Locator      { return Locator{Kind: LocatorName, Value: value} }
func ByClassName(value string) Locator { return Locator{Kind: LocatorClassName, Value: value} }
func ByLinkText(value string) Locator  { return Locator{Kind: LocatorLinkText, Value: value} }
func ByXPath(value string) Locator     { return Locator{Kind: LocatorXPath, Value: value} }
func ByCSS(value string) Locator       { return Locator{Kind: LocatorCSS, Value: value} }

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Kind, l.Value)
}
