// Package abstractfactory demonstrates the Abstract Factory pattern: a
// family of related products (buttons) is created through one factory
// interface, so client code never names a concrete platform type.
//
//	f, err := abstractfactory.ForPlatform("linux")
//	if err != nil {
//	    return err
//	}
//	b, err := f.CreateButton(abstractfactory.Send)
//
// Errors:
//
//   - ErrUnknownPlatform: ForPlatform has no factory for the name.
//   - ErrUnsupportedButton: the ButtonType is not part of the family.
package abstractfactory
