package extman

// Registry holds registered extensions in insertion order and rejects
// malformed or duplicate registrations. A rejected Add leaves the
// registry's state untouched.
type Registry struct {
	byName  map[string]Extension
	inOrder []Extension
}

func newRegistry() *Registry {
	return &Registry{byName: make(map[string]Extension)}
}

// Add validates ext and appends it to the registry. Each validation
// failure is a distinct *RegistrationError; the duplicate-name case is
// reported the same way, since it is a programming mistake rather than
// a negotiation-time condition.
//
// The Extension interface's RSV1()/RSV2()/RSV3() bool signatures rule
// out a non-boolean RSV claim by construction, so there's no separate
// check for it here.
func (r *Registry) Add(ext Extension) error {
	if ext == nil {
		return newRegistrationError("extension must not be nil")
	}
	name := ext.Name()
	if name == "" {
		return newRegistrationError("extension name must be a non-empty string")
	}
	if ext.Type() != TypePerMessage {
		return newRegistrationError("extension %q: type must be %q, got %q", name, TypePerMessage, ext.Type())
	}
	if _, exists := r.byName[name]; exists {
		return newRegistrationError("extension %q is already registered", name)
	}
	r.byName[name] = ext
	r.inOrder = append(r.inOrder, ext)
	return nil
}

// InOrder returns the registered extensions in registration order.
func (r *Registry) InOrder() []Extension {
	out := make([]Extension, len(r.inOrder))
	copy(out, r.inOrder)
	return out
}

// Get returns the extension registered under name, if any.
func (r *Registry) Get(name string) (Extension, bool) {
	ext, ok := r.byName[name]
	return ext, ok
}
